// Package console is the command console engine: it owns the command
// registry, turns input lines into command invocations with bound parameters,
// prints results and drives the interactive read loop.
//
// A line is processed as follows:
//
//  1. it is split into words with shell quoting rules,
//  2. the first word selects a command by name or alias,
//  3. a trailing "> path" redirects output to a file for redirectable commands,
//  4. the command runs with the remaining words and its result is printed,
//     through the pager when it is a Paged result.
//
// Errors never end the session: they are reported on the lifecycle bus,
// printed as a styled line and the loop continues.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/giantswarm/shellkit/internal/lifecycle"
	"github.com/giantswarm/shellkit/internal/pager"
	"github.com/giantswarm/shellkit/internal/preferences"
	"github.com/giantswarm/shellkit/internal/prompt"
	"github.com/giantswarm/shellkit/internal/terminal"
	"github.com/giantswarm/shellkit/internal/theme"
	"github.com/giantswarm/shellkit/pkg/logging"
)

// MaxDepth bounds re-entrant execution, for example macros sourcing themselves.
const MaxDepth = 16

// CompletionSpec toggles tab completion.
var CompletionSpec = preferences.Spec{
	ID:          "completion",
	Description: "Offer completions on TAB",
	Type:        preferences.Flag,
	Default:     "true",
}

// Options configures a Console. Every field is optional.
type Options struct {
	// Terminal reads lines and keys. Without one, Run fails and paging is off.
	Terminal terminal.Terminal
	// Output overrides the terminal's output.
	Output io.Writer
	// Theme defaults to theme.Default().
	Theme *theme.Theme
	// Profile is the color profile of the output. Defaults to detection on Output.
	Profile *termenv.Profile
	// Preferences defaults to an empty store.
	Preferences *preferences.Store
	// Bus defaults to a bus with a fresh error registry.
	Bus *lifecycle.Bus
	// Prompt defaults to an empty prompt renderer.
	Prompt *prompt.Renderer
	// Binder defaults to a binder without a fallback resolver.
	Binder *Binder
}

// Console dispatches input lines to registered commands.
type Console struct {
	term       terminal.Terminal
	registry   *Registry
	prefs      *preferences.Store
	bus        *lifecycle.Bus
	renderer   *theme.Renderer
	prompt     *prompt.Renderer
	binder     *Binder
	out        *Writer
	completion *preferences.Preference
	depth      int
}

// New creates a Console.
func New(opts Options) *Console {
	out := opts.Output
	if out == nil && opts.Terminal != nil {
		out = opts.Terminal.Output()
	}
	if out == nil {
		out = io.Discard
	}
	if opts.Theme == nil {
		opts.Theme = theme.Default()
	}
	profile := theme.ProfileFor(out, false)
	if opts.Profile != nil {
		profile = *opts.Profile
	}
	if opts.Preferences == nil {
		opts.Preferences = preferences.NewStore()
	}
	if opts.Bus == nil {
		opts.Bus = lifecycle.NewBus(nil)
	}
	renderer := theme.NewRenderer(opts.Theme, profile)
	if opts.Prompt == nil {
		opts.Prompt = prompt.NewRenderer(renderer)
	}
	if opts.Binder == nil {
		opts.Binder = &Binder{}
	}

	interactive := opts.Terminal != nil && opts.Terminal.Interactive()
	c := &Console{
		term:       opts.Terminal,
		registry:   NewRegistry(),
		prefs:      opts.Preferences,
		bus:        opts.Bus,
		renderer:   renderer,
		prompt:     opts.Prompt,
		binder:     opts.Binder,
		out:        NewWriter(out, renderer, interactive),
		completion: opts.Preferences.Register(CompletionSpec),
	}
	if opts.Terminal != nil {
		c.out.WithWidth(opts.Terminal.Width)
	}
	opts.Preferences.Register(pager.PagingSpec)
	opts.Preferences.Register(pager.ResultsPerPageSpec)
	return c
}

// Register adds commands to the registry.
func (c *Console) Register(cmds ...Command) {
	for _, cmd := range cmds {
		c.registry.Register(cmd)
		logging.Debug("Console", "registered command %s (aliases %v)", cmd.Meta().Name, cmd.Meta().Aliases)
	}
}

// Registry returns the command registry.
func (c *Console) Registry() *Registry { return c.registry }

// Preferences returns the preference store.
func (c *Console) Preferences() *preferences.Store { return c.prefs }

// Bus returns the lifecycle bus.
func (c *Console) Bus() *lifecycle.Bus { return c.bus }

// Renderer returns the style renderer of the session output.
func (c *Console) Renderer() *theme.Renderer { return c.renderer }

// Theme returns the active theme.
func (c *Console) Theme() *theme.Theme { return c.renderer.Theme() }

// Prompt returns the prompt renderer.
func (c *Console) Prompt() *prompt.Renderer { return c.prompt }

// Out returns the session writer.
func (c *Console) Out() *Writer { return c.out }

// Terminal returns the terminal, nil when the console has none.
func (c *Console) Terminal() terminal.Terminal { return c.term }

// Bind resolves params for an invocation.
func (c *Console) Bind(ctx *Context, params []Param, tokens []string) (*Args, error) {
	return c.binder.Bind(ctx, params, tokens)
}

func (c *Console) newPager(ctx *Context) *pager.Pager {
	var keys terminal.KeyReader
	if c.term != nil {
		keys = c.term
	}
	return pager.New(pager.Options{
		Out:         ctx.Out,
		Keys:        keys,
		Renderer:    ctx.Out.Renderer(),
		Preferences: c.prefs,
		Interactive: ctx.Interactive,
		Print: func(_ io.Writer, item any) error {
			return c.displayItem(ctx.Out, item)
		},
	})
}

// Execute runs one line, reporting any error before returning it.
func (c *Console) Execute(w *Writer, line string) error {
	return c.ExecuteContext(context.Background(), w, line)
}

// ExecuteContext is Execute with a context passed on to the command.
func (c *Console) ExecuteContext(ctx context.Context, w *Writer, line string) error {
	err := c.dispatch(ctx, w, line)
	if err != nil && !errors.Is(err, ErrExit) {
		c.report(w, err)
	}
	return err
}

// ExecuteBatch runs each non-empty line in order between one start and one
// done notification. A failing line does not stop the batch; every failure is
// returned joined. The exit command stops the batch.
func (c *Console) ExecuteBatch(w *Writer, lines ...string) error {
	return c.ExecuteBatchContext(context.Background(), w, lines...)
}

// ExecuteBatchContext is ExecuteBatch with a context passed on to the commands.
func (c *Console) ExecuteBatchContext(ctx context.Context, w *Writer, lines ...string) error {
	c.bus.NotifyStart()
	defer c.bus.NotifyDone()

	var errs []error
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := c.ExecuteContext(ctx, w, line); err != nil {
			errs = append(errs, err)
			if errors.Is(err, ErrExit) {
				break
			}
		}
	}
	return errors.Join(errs...)
}

// dispatch tokenizes, resolves and runs a line.
func (c *Console) dispatch(stdctx context.Context, w *Writer, line string) (err error) {
	if c.depth >= MaxDepth {
		return Errorf(KindIO, "nested execution deeper than %d", MaxDepth)
	}
	c.depth++
	defer func() { c.depth-- }()

	tokens, err := Tokenize(line)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}

	cmd, ok := c.registry.Get(tokens[0])
	if !ok {
		return Errorf(KindUnknownCommand, "unknown command: %s. Type 'help' for available commands", tokens[0])
	}

	ctx := &Context{
		Ctx:         stdctx,
		Command:     cmd,
		Args:        tokens[1:],
		Out:         w,
		Console:     c,
		Interactive: w.Interactive(),
	}

	if r, ok := cmd.(Redirectable); ok && r.Redirectable() {
		if rest, path, found := splitRedirect(ctx.Args); found {
			rw, closeFn, err := openRedirect(path, w)
			if err != nil {
				return err
			}
			ctx.Args = rest
			ctx.Out = rw
			ctx.Interactive = false
			defer func() {
				if cerr := closeFn(); cerr != nil {
					cerr = WrapError(KindIO, cerr, "failed to write %s", path)
					if err == nil {
						err = cerr
					} else {
						c.report(w, cerr)
					}
				}
			}()
		}
	}

	logging.Debug("Console", "executing %s with %d args", cmd.Meta().Name, len(ctx.Args))
	result, err := invoke(cmd, ctx)
	if err != nil {
		return err
	}
	return c.display(ctx, result)
}

// invoke runs the command, turning a panic into an error.
func invoke(cmd Command, ctx *Context) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("Console", fmt.Errorf("%v", r), "command %s panicked", cmd.Meta().Name)
			err = Errorf(KindPanic, "%s: %v", cmd.Meta().Name, r)
		}
	}()
	return cmd.Execute(ctx)
}

// report publishes err on the bus and prints it.
func (c *Console) report(w *Writer, err error) {
	c.bus.NotifyError(err)
	w.PrintError(err)
}

// display prints a command result.
func (c *Console) display(ctx *Context, result any) error {
	if p, ok := result.(Paged); ok {
		if _, err := ctx.Pager().Page(p.Items()); err != nil {
			return WrapError(KindIO, err, "paging failed")
		}
		return ctx.Out.Err()
	}
	if err := c.displayItem(ctx.Out, result); err != nil {
		return err
	}
	return ctx.Out.Err()
}

func (c *Console) displayItem(w *Writer, item any) error {
	switch v := item.(type) {
	case nil:
	case Displayable:
		return v.Display(w)
	case string:
		w.Println(v)
	case fmt.Stringer:
		w.Println(v.String())
	case []string:
		for _, s := range v {
			w.Println(s)
		}
	case []any:
		for _, e := range v {
			if err := c.displayItem(w, e); err != nil {
				return err
			}
		}
	case error:
		w.PrintError(v)
	default:
		w.Println(v)
	}
	return nil
}
