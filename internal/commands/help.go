package commands

import (
	"sort"
	"strings"

	"github.com/giantswarm/shellkit/internal/console"
	pkgstrings "github.com/giantswarm/shellkit/pkg/strings"
)

// Help lists the registered commands, or describes one of them.
func Help() console.Command {
	return &console.Func{
		Info: console.Meta{
			Name:        "help",
			Aliases:     []string{"?"},
			Type:        TypeBuiltin,
			Description: "List commands or describe one",
		},
		Redirects: true,
		Run:       runHelp,
		Complete: func(ctx *console.Context) []console.Suggestion {
			if len(ctx.Args) != 1 {
				return nil
			}
			var out []console.Suggestion
			for _, cmd := range ctx.Console.Registry().Commands() {
				meta := cmd.Meta()
				out = append(out, console.Suggestion{Value: meta.Name, Description: meta.Description, Group: meta.Type, Complete: true})
			}
			return console.FilterSuggestions(ctx.Args[0], out)
		},
	}
}

func runHelp(ctx *console.Context) (any, error) {
	if len(ctx.Args) > 0 {
		return nil, describeCommand(ctx, ctx.Args[0])
	}

	cmds := ctx.Console.Registry().Commands()
	sort.SliceStable(cmds, func(i, j int) bool {
		a, b := cmds[i].Meta(), cmds[j].Meta()
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.Name < b.Name
	})

	w := ctx.Out
	t := newTable(w, "TYPE", "COMMAND", "ALIASES", "DESCRIPTION")
	for _, cmd := range cmds {
		meta := cmd.Meta()
		t.AppendRow([]any{
			meta.Type,
			w.Styled("command", meta.Name),
			strings.Join(meta.Aliases, ", "),
			pkgstrings.TruncateDescription(meta.Description, pkgstrings.DefaultDescriptionMaxLen),
		})
	}
	t.Render()
	w.PrintStyled("muted", "Type 'help <command>' for details. Append '> file' to redirect output.")
	return nil, nil
}

func describeCommand(ctx *console.Context, name string) error {
	cmd, ok := ctx.Console.Registry().Get(name)
	if !ok {
		return console.Errorf(console.KindUnknownCommand, "unknown command: %s. Type 'help' for available commands", name)
	}

	w := ctx.Out
	meta := cmd.Meta()
	w.Printf("%s  %s\n", w.Styled("command", meta.Name), w.Styled("description", meta.Description))
	if len(meta.Aliases) > 0 {
		w.Printf("Aliases: %s\n", strings.Join(meta.Aliases, ", "))
	}
	if r, ok := cmd.(console.Redirectable); ok && r.Redirectable() {
		w.PrintStyled("muted", "Output can be redirected with '> file'.")
	}

	ac, ok := cmd.(*console.ActionCommand)
	if !ok {
		return nil
	}
	store := ctx.Console.Preferences()
	t := newTable(w, "ACTION", "USAGE", "DESCRIPTION")
	for _, a := range ac.Actions() {
		t.AppendRow([]any{
			w.Styled("command", a.Name),
			meta.Name + " " + a.Usage(store),
			a.Description,
		})
	}
	t.Render()
	return nil
}
