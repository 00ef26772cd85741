package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/giantswarm/shellkit/internal/console"
)

// newTable creates a table rendering to w with themed headers.
func newTable(w *console.Writer, headers ...string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault

	row := make(table.Row, len(headers))
	for i, h := range headers {
		row[i] = w.Styled("header", h)
	}
	t.AppendHeader(row)
	return t
}

// printEmpty writes the message shown instead of an empty table.
func printEmpty(w *console.Writer, message string) {
	w.PrintStyled("muted", w.Icon("bell")+" "+message)
}
