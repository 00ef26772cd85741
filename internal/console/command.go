package console

import (
	"context"
	"fmt"

	"github.com/giantswarm/shellkit/internal/pager"
)

// Meta identifies a command and describes it for help and completion.
type Meta struct {
	// Name is the primary registry key.
	Name string
	// Aliases are secondary registry keys.
	Aliases []string
	// Type groups commands in completion listings.
	Type string
	// Description is a one-line summary.
	Description string
}

// Command is a console command. Commands are created once at startup and are
// immutable afterwards.
type Command interface {
	// Meta returns the command's identity.
	Meta() Meta

	// Execute runs the command. The result is printed by the console.
	Execute(ctx *Context) (any, error)

	// Suggest returns completion candidates for ctx.Args, whose last element is
	// the word being completed.
	Suggest(ctx *Context) []Suggestion
}

// Redirectable is implemented by commands whose output may be sent to a file
// with a trailing "> path".
type Redirectable interface {
	Redirectable() bool
}

// Displayable results render themselves.
type Displayable interface {
	Display(w *Writer) error
}

// Paged results are printed through the pager.
type Paged interface {
	Items() []any
}

// PagedList is a ready-made Paged result.
type PagedList []any

// Items implements Paged.
func (l PagedList) Items() []any {
	return l
}

// PagedLines turns lines into a Paged result.
func PagedLines(lines []string) PagedList {
	out := make(PagedList, len(lines))
	for i, l := range lines {
		out[i] = l
	}
	return out
}

// Suggestion is one completion candidate.
type Suggestion struct {
	// Value is the text to insert.
	Value string
	// Description explains the value in completion listings.
	Description string
	// Group is the category the value is listed under.
	Group string
	// Complete means a separator is appended after insertion. Hierarchical
	// values such as directory paths leave it false.
	Complete bool
}

// Context is the per-invocation state passed to a command.
type Context struct {
	// Ctx is cancelled when the console shuts down.
	Ctx context.Context
	// Command is the command being run.
	Command Command
	// Args holds the tokens after the command name, minus any redirect.
	Args []string
	// Out is the active writer, possibly a redirect file.
	Out *Writer
	// Console allows re-entrant execution.
	Console *Console
	// Interactive is false when output goes to a file.
	Interactive bool
}

// Pager returns a pager bound to this invocation's output.
func (c *Context) Pager() *pager.Pager {
	return c.Console.newPager(c)
}

// Context returns the std context, never nil.
func (c *Context) Context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

// Func is a single-action command built from functions.
type Func struct {
	Info      Meta
	Run       func(ctx *Context) (any, error)
	Complete  func(ctx *Context) []Suggestion
	Redirects bool
}

// Meta implements Command.
func (f *Func) Meta() Meta {
	return f.Info
}

// Execute implements Command.
func (f *Func) Execute(ctx *Context) (any, error) {
	if f.Run == nil {
		return nil, fmt.Errorf("command %s has no implementation", f.Info.Name)
	}
	return f.Run(ctx)
}

// Suggest implements Command.
func (f *Func) Suggest(ctx *Context) []Suggestion {
	if f.Complete == nil {
		return nil
	}
	return f.Complete(ctx)
}

// Redirectable implements Redirectable.
func (f *Func) Redirectable() bool {
	return f.Redirects
}
