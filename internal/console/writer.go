package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/giantswarm/shellkit/internal/terminal"
	"github.com/giantswarm/shellkit/internal/theme"
)

// Writer is the output sink handed to commands. It knows how to style text and
// whether a human is reading it. Write errors are sticky: after the first one
// every write fails and Err reports it.
type Writer struct {
	out         io.Writer
	renderer    *theme.Renderer
	interactive bool
	width       func() int
	err         error
}

// NewWriter wraps out. Interactive writers may page; files never do.
func NewWriter(out io.Writer, r *theme.Renderer, interactive bool) *Writer {
	return &Writer{out: out, renderer: r, interactive: interactive}
}

// WithWidth sets the function used to query the output width.
func (w *Writer) WithWidth(fn func() int) *Writer {
	w.width = fn
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.out.Write(p)
	if err != nil {
		w.err = err
	}
	return n, err
}

// Print writes the operands without a trailing newline.
func (w *Writer) Print(a ...any) {
	_, _ = fmt.Fprint(w, a...)
}

// Println writes the operands followed by a newline.
func (w *Writer) Println(a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

// Printf writes formatted output.
func (w *Writer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(w, format, a...)
}

// Styled returns text drawn in the named or raw style.
func (w *Writer) Styled(style, text string) string {
	return w.renderer.Sprint(style, text)
}

// PrintStyled writes one line of text in the named or raw style.
func (w *Writer) PrintStyled(style, text string) {
	w.Println(w.Styled(style, text))
}

// Icon resolves an icon name.
func (w *Writer) Icon(name string) string {
	return w.renderer.Icon(name)
}

// PrintError writes err as a styled error line.
func (w *Writer) PrintError(err error) {
	msg := strings.TrimSpace(err.Error())
	w.Println(w.Styled("error", w.Icon("fail")+" "+msg))
}

// Renderer returns the style renderer matching this output.
func (w *Writer) Renderer() *theme.Renderer {
	return w.renderer
}

// Interactive reports whether a human reads this output.
func (w *Writer) Interactive() bool {
	return w.interactive
}

// Width returns the output width in columns.
func (w *Writer) Width() int {
	if w.width != nil {
		if n := w.width(); n > 0 {
			return n
		}
	}
	return terminal.DefaultWidth
}

// Err returns the first write error.
func (w *Writer) Err() error {
	return w.err
}
