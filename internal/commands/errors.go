package commands

import (
	"errors"
	"strconv"
	"time"

	"github.com/giantswarm/shellkit/internal/console"
	pkgstrings "github.com/giantswarm/shellkit/pkg/strings"
)

// Errors browses the errors reported during the session.
func Errors() console.Command {
	out := console.Param{Name: "out", Kind: console.ParamWriter}

	return console.NewActionCommand(
		console.Meta{
			Name:        "errors",
			Type:        TypeSession,
			Description: "Browse errors reported in this session",
		},
		&console.Action{
			Name:        "list",
			Description: "List recorded errors",
			Params:      []console.Param{out},
			Run:         listErrors,
		},
		&console.Action{
			Name:        "show",
			Description: "Show one error with its causes and mark it viewed",
			Params:      []console.Param{out, {Name: "n", Kind: console.ParamInt, Description: "position in the list"}},
			Run:         showError,
		},
		&console.Action{
			Name:        "clear",
			Description: "Forget every recorded error",
			Params:      []console.Param{out},
			Run: func(args *console.Args) (any, error) {
				args.Context().Console.Bus().Errors().Clear()
				args.Out().PrintStyled("success", args.Out().Icon("ok")+" errors cleared")
				return nil, nil
			},
		},
	).WithDefault("list").AllowRedirect()
}

func listErrors(args *console.Args) (any, error) {
	w := args.Out()
	records := args.Context().Console.Bus().Errors().List()
	if len(records) == 0 {
		printEmpty(w, "No errors recorded")
		return nil, nil
	}

	t := newTable(w, "#", "TIME", "STATUS", "ERROR")
	for i, rec := range records {
		status := w.Styled("warning", "new")
		if rec.Viewed {
			status = w.Styled("muted", "viewed")
		}
		t.AppendRow([]any{
			strconv.Itoa(i + 1),
			rec.Time.Format(time.TimeOnly),
			status,
			pkgstrings.TruncateDescription(rec.Err.Error(), pkgstrings.DefaultDescriptionMaxLen),
		})
	}
	t.Render()
	return nil, nil
}

func showError(args *console.Args) (any, error) {
	n := args.Int("n")
	rec, ok := args.Context().Console.Bus().Errors().Get(n)
	if !ok {
		return nil, console.Errorf(console.KindMissingInput, "no error #%d", n)
	}

	w := args.Out()
	w.Printf("%s %s\n", w.Styled("header", "Error #"+strconv.Itoa(n)), w.Styled("muted", rec.ID))
	w.Printf("Time:  %s\n", rec.Time.Format(time.RFC3339))
	if kind := console.KindOf(rec.Err); kind != 0 {
		w.Printf("Kind:  %s\n", kind)
	}
	w.PrintError(rec.Err)
	for cause := errors.Unwrap(rec.Err); cause != nil; cause = errors.Unwrap(cause) {
		w.Printf("  caused by: %s\n", cause)
	}
	return nil, nil
}
