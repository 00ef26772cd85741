package commands

import (
	"github.com/giantswarm/shellkit/internal/console"
	"github.com/giantswarm/shellkit/internal/theme"
)

const previewText = "The quick brown fox"

// Theme inspects and edits the active theme tables.
func Theme() console.Command {
	out := console.Param{Name: "out", Kind: console.ParamWriter}
	value := console.Param{Name: "value", Kind: console.ParamRawLine, Description: "value or alias"}

	return console.NewActionCommand(
		console.Meta{
			Name:        "theme",
			Type:        TypeSettings,
			Description: "Show and edit colors, icons and styles",
		},
		&console.Action{
			Name:        "colors",
			Description: "List the color table",
			Params:      []console.Param{out},
			Run: func(args *console.Args) (any, error) {
				w := args.Out()
				th := w.Renderer().Theme()
				t := newTable(w, "NAME", "VALUE", "RESOLVED", "SAMPLE")
				for _, name := range th.Colors.Names() {
					raw, _ := th.Colors.Lookup(name)
					t.AppendRow([]any{name, raw, th.Color(name), w.Styled(name+"/", previewText)})
				}
				t.Render()
				return nil, nil
			},
		},
		&console.Action{
			Name:        "icons",
			Description: "List the icon table",
			Params:      []console.Param{out},
			Run: func(args *console.Args) (any, error) {
				w := args.Out()
				th := w.Renderer().Theme()
				t := newTable(w, "NAME", "VALUE", "GLYPH")
				for _, name := range th.Icons.Names() {
					raw, _ := th.Icons.Lookup(name)
					t.AppendRow([]any{name, raw, th.Icon(name)})
				}
				t.Render()
				return nil, nil
			},
		},
		&console.Action{
			Name:        "styles",
			Description: "List the style table",
			Params:      []console.Param{out},
			Run: func(args *console.Args) (any, error) {
				w := args.Out()
				th := w.Renderer().Theme()
				t := newTable(w, "NAME", "VALUE", "RESOLVED", "SAMPLE")
				for _, name := range th.Styles.Names() {
					raw, _ := th.Styles.Lookup(name)
					t.AppendRow([]any{name, raw, th.WithStyle(name).String(), w.Styled(name, previewText)})
				}
				t.Render()
				return nil, nil
			},
		},
		&console.Action{
			Name:        "set-color",
			Description: "Set a color to a hex value, an ANSI index or another color's name",
			Params:      []console.Param{out, nameParam(colorNames), value},
			Run: func(args *console.Args) (any, error) {
				return putEntry(args, args.Out().Renderer().Theme().Colors.Put)
			},
		},
		&console.Action{
			Name:        "set-icon",
			Description: "Set an icon to a glyph or another icon's name",
			Params:      []console.Param{out, nameParam(iconNames), value},
			Run: func(args *console.Args) (any, error) {
				return putEntry(args, args.Out().Renderer().Theme().Icons.Put)
			},
		},
		&console.Action{
			Name:        "set-style",
			Description: "Set a style to a fg/bg/attrs descriptor or another style's name",
			Params:      []console.Param{out, nameParam(styleNames), value},
			Run: func(args *console.Args) (any, error) {
				return putEntry(args, args.Out().Renderer().Theme().Styles.Put)
			},
		},
		&console.Action{
			Name:        "preview",
			Description: "Print sample text in a named or raw style",
			Params: []console.Param{
				out,
				{Name: "style", Kind: console.ParamString, Suggest: styleNameSuggestions},
				{Name: "text", Kind: console.ParamRawLine, Optional: true},
			},
			Run: func(args *console.Args) (any, error) {
				text := args.String("text")
				if text == "" {
					text = previewText
				}
				w := args.Out()
				style := w.Renderer().Theme().WithStyle(args.String("style"))
				w.Printf("%s  %s\n", w.Renderer().Render(style, text), w.Styled("muted", style.String()))
				return nil, nil
			},
		},
	).WithDefault("styles").AllowRedirect()
}

func putEntry(args *console.Args, put func(name, value string)) (any, error) {
	put(args.String("name"), args.String("value"))
	w := args.Out()
	w.Printf("%s = %s\n", w.Styled("command", args.String("name")), w.Styled("value", args.String("value")))
	return nil, nil
}

func nameParam(names func(*theme.Theme) []string) console.Param {
	return console.Param{
		Name: "name",
		Kind: console.ParamString,
		Suggest: func(ctx *console.Context, _ string) []console.Suggestion {
			var out []console.Suggestion
			for _, n := range names(ctx.Console.Theme()) {
				out = append(out, console.Suggestion{Value: n, Group: "name", Complete: true})
			}
			return out
		},
	}
}

func colorNames(t *theme.Theme) []string { return t.Colors.Names() }
func iconNames(t *theme.Theme) []string  { return t.Icons.Names() }
func styleNames(t *theme.Theme) []string { return t.Styles.Names() }

func styleNameSuggestions(ctx *console.Context, partial string) []console.Suggestion {
	return nameParam(styleNames).Suggest(ctx, partial)
}
