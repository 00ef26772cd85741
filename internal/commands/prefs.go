package commands

import (
	"github.com/giantswarm/shellkit/internal/console"
	"github.com/giantswarm/shellkit/internal/preferences"
	pkgstrings "github.com/giantswarm/shellkit/pkg/strings"
)

// Prefs inspects and changes preferences.
func Prefs() console.Command {
	prefParam := console.Param{Name: "pref", Kind: console.ParamPreference, Description: "preference id"}

	return console.NewActionCommand(
		console.Meta{
			Name:        "prefs",
			Aliases:     []string{"preferences"},
			Type:        TypeSettings,
			Description: "Show and change preferences",
		},
		&console.Action{
			Name:        "list",
			Description: "List every preference with its value",
			Params:      []console.Param{{Name: "out", Kind: console.ParamWriter}},
			Run:         listPrefs,
		},
		&console.Action{
			Name:        "get",
			Description: "Show one preference",
			Params:      []console.Param{{Name: "out", Kind: console.ParamWriter}, prefParam},
			Run: func(args *console.Args) (any, error) {
				printPref(args.Out(), args.Preference("pref"))
				return nil, nil
			},
		},
		&console.Action{
			Name:        "set",
			Description: "Change a preference",
			Params: []console.Param{
				{Name: "out", Kind: console.ParamWriter},
				prefParam,
				{Name: "value", Kind: console.ParamRawLine, Description: "new value", Suggest: suggestPrefValue},
			},
			Run: func(args *console.Args) (any, error) {
				p := args.Preference("pref")
				if err := p.Set(args.String("value")); err != nil {
					return nil, console.WrapError(console.KindConversion, err, "cannot set %s", p.ID())
				}
				printPref(args.Out(), p)
				return nil, nil
			},
		},
		&console.Action{
			Name:        "reset",
			Description: "Restore a preference's default",
			Params:      []console.Param{{Name: "out", Kind: console.ParamWriter}, prefParam},
			Run: func(args *console.Args) (any, error) {
				p := args.Preference("pref")
				if err := p.Reset(); err != nil {
					return nil, err
				}
				printPref(args.Out(), p)
				return nil, nil
			},
		},
	).WithDefault("list").AllowRedirect()
}

func listPrefs(args *console.Args) (any, error) {
	w := args.Out()
	prefs := args.Context().Console.Preferences().List()
	if len(prefs) == 0 {
		printEmpty(w, "No preferences registered")
		return nil, nil
	}

	t := newTable(w, "ID", "TYPE", "VALUE", "DEFAULT", "DESCRIPTION")
	for _, p := range prefs {
		value := p.Input()
		if !p.IsDefault() {
			value = w.Styled("highlight", value)
		}
		spec := p.Spec()
		t.AppendRow([]any{
			p.ID(),
			spec.Type.String(),
			value,
			spec.Default,
			pkgstrings.TruncateDescription(spec.Description, pkgstrings.DefaultDescriptionMaxLen),
		})
	}
	t.Render()
	return nil, nil
}

func printPref(w *console.Writer, p *preferences.Preference) {
	w.Printf("%s = %s\n", w.Styled("command", p.ID()), w.Styled("value", p.Input()))
}

// suggestPrefValue offers the values of flags. ctx.Args is "set <id> <partial>".
func suggestPrefValue(ctx *console.Context, partial string) []console.Suggestion {
	if len(ctx.Args) < 2 {
		return nil
	}
	p, ok := ctx.Console.Preferences().Find(ctx.Args[1])
	if !ok {
		return nil
	}
	if p.Spec().Type == preferences.Flag {
		return []console.Suggestion{
			{Value: "on", Group: p.ID(), Complete: true},
			{Value: "off", Group: p.ID(), Complete: true},
		}
	}
	return []console.Suggestion{{Value: p.Input(), Description: "current value", Group: p.ID(), Complete: true}}
}
