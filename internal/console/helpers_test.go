package console

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/muesli/termenv"

	"github.com/giantswarm/shellkit/internal/terminal"
	"github.com/giantswarm/shellkit/internal/theme"
)

type scriptedLine struct {
	line string
	err  error
}

// fakeTerminal replays lines and keys and records prompts.
type fakeTerminal struct {
	lines       []scriptedLine
	keys        []terminal.Key
	out         bytes.Buffer
	interactive bool
	completer   readline.AutoCompleter
	prompts     []string
	reads       int
}

func (f *fakeTerminal) ReadLine(left, right string) (string, error) {
	f.prompts = append(f.prompts, left+"|"+right)
	if f.reads >= len(f.lines) {
		return "", io.EOF
	}
	l := f.lines[f.reads]
	f.reads++
	return l.line, l.err
}

func (f *fakeTerminal) ReadKey() (terminal.Key, error) {
	if len(f.keys) == 0 {
		return terminal.Key{}, io.EOF
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, nil
}

func (f *fakeTerminal) Width() int                            { return 100 }
func (f *fakeTerminal) Output() io.Writer                     { return &f.out }
func (f *fakeTerminal) Interactive() bool                     { return f.interactive }
func (f *fakeTerminal) SetCompleter(c readline.AutoCompleter) { f.completer = c }
func (f *fakeTerminal) Close() error                          { return nil }

func lines(ls ...string) []scriptedLine {
	out := make([]scriptedLine, len(ls))
	for i, l := range ls {
		out[i] = scriptedLine{line: l}
	}
	return out
}

func newTestConsole(t *testing.T, term *fakeTerminal) (*Console, *bytes.Buffer) {
	t.Helper()
	if term == nil {
		term = &fakeTerminal{}
	}
	ascii := termenv.Ascii
	c := New(Options{Terminal: term, Theme: theme.Default(), Profile: &ascii})
	return c, &term.out
}

// counter is a command that counts its invocations.
type counter struct {
	meta     Meta
	calls    int
	lastArgs []string
	result   any
	err      error
	redirect bool
}

func (c *counter) Meta() Meta { return c.meta }

func (c *counter) Execute(ctx *Context) (any, error) {
	c.calls++
	c.lastArgs = ctx.Args
	return c.result, c.err
}

func (c *counter) Suggest(*Context) []Suggestion { return nil }

func (c *counter) Redirectable() bool { return c.redirect }

func contextWithCancel(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithCancel(t.Context())
}
