package console

import (
	"sort"
	"strings"

	"github.com/giantswarm/shellkit/internal/preferences"
)

// Action is one verb of an ActionCommand.
type Action struct {
	Name        string
	Description string
	Params      []Param
	Run         func(args *Args) (any, error)
}

// Usage returns the action name followed by the parameters that read tokens.
func (a *Action) Usage(store *preferences.Store) string {
	parts := []string{a.Name}
	for _, p := range a.Params {
		if !consumesToken(p, store) {
			continue
		}
		name := p.Name
		if p.Kind == ParamRawArray || p.Kind == ParamRawLine {
			name += "..."
		}
		if p.Optional {
			parts = append(parts, "["+name+"]")
		} else {
			parts = append(parts, "<"+name+">")
		}
	}
	return strings.Join(parts, " ")
}

// ActionCommand is a command made of named actions, such as "prefs set".
type ActionCommand struct {
	meta          Meta
	actions       []*Action
	byName        map[string]*Action
	defaultAction string
	redirect      bool
}

// NewActionCommand creates a command from its actions.
func NewActionCommand(meta Meta, actions ...*Action) *ActionCommand {
	c := &ActionCommand{meta: meta, byName: make(map[string]*Action, len(actions))}
	for _, a := range actions {
		c.actions = append(c.actions, a)
		c.byName[strings.ToLower(a.Name)] = a
	}
	return c
}

// WithDefault makes the named action run when the first token names no action.
func (c *ActionCommand) WithDefault(name string) *ActionCommand {
	c.defaultAction = name
	return c
}

// AllowRedirect lets the command's output be redirected to a file.
func (c *ActionCommand) AllowRedirect() *ActionCommand {
	c.redirect = true
	return c
}

// Meta implements Command.
func (c *ActionCommand) Meta() Meta {
	return c.meta
}

// Redirectable implements Redirectable.
func (c *ActionCommand) Redirectable() bool {
	return c.redirect
}

// Actions returns the actions in declaration order.
func (c *ActionCommand) Actions() []*Action {
	return c.actions
}

// Action looks an action up by name, case-insensitively.
func (c *ActionCommand) Action(name string) (*Action, bool) {
	a, ok := c.byName[strings.ToLower(name)]
	return a, ok
}

// ActionNames returns the sorted action names.
func (c *ActionCommand) ActionNames() []string {
	names := make([]string, 0, len(c.actions))
	for _, a := range c.actions {
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return names
}

// Execute implements Command.
func (c *ActionCommand) Execute(ctx *Context) (any, error) {
	action, rest, err := c.selectAction(ctx.Args)
	if err != nil {
		return nil, err
	}
	args, err := ctx.Console.Bind(ctx, action.Params, rest)
	if err != nil {
		return nil, err
	}
	return action.Run(args)
}

func (c *ActionCommand) selectAction(tokens []string) (*Action, []string, error) {
	if len(tokens) > 0 {
		if a, ok := c.Action(tokens[0]); ok {
			return a, tokens[1:], nil
		}
	}
	if c.defaultAction != "" {
		if a, ok := c.Action(c.defaultAction); ok {
			return a, tokens, nil
		}
	}
	if len(tokens) == 0 {
		return nil, nil, Errorf(KindMissingInput, "%s: missing action, expected one of %s",
			c.meta.Name, strings.Join(c.ActionNames(), ", "))
	}
	return nil, nil, Errorf(KindUnknownAction, "%s: unknown action %q, expected one of %s",
		c.meta.Name, tokens[0], strings.Join(c.ActionNames(), ", "))
}

// Suggest implements Command. While the action word is being typed the action
// names are offered; afterwards the parameter under the cursor completes,
// with the last token parameter absorbing any further words.
func (c *ActionCommand) Suggest(ctx *Context) []Suggestion {
	words := ctx.Args
	if len(words) == 0 {
		words = []string{""}
	}

	if len(words) == 1 {
		var out []Suggestion
		for _, a := range c.actions {
			out = append(out, Suggestion{Value: a.Name, Description: a.Description, Group: "action", Complete: true})
		}
		if a, ok := c.Action(c.defaultAction); ok {
			out = append(out, c.suggestParam(ctx, a, words)...)
		}
		return FilterSuggestions(words[0], out)
	}

	a, ok := c.Action(words[0])
	if !ok {
		return nil
	}
	return FilterSuggestions(words[len(words)-1], c.suggestParam(ctx, a, words[1:]))
}

// suggestParam completes the last of words against a's token parameters.
func (c *ActionCommand) suggestParam(ctx *Context, a *Action, words []string) []Suggestion {
	store := ctx.Console.Preferences()
	var inputs []Param
	for _, p := range a.Params {
		if consumesToken(p, store) {
			inputs = append(inputs, p)
		}
	}
	if len(inputs) == 0 || len(words) == 0 {
		return nil
	}

	idx := min(len(words)-1, len(inputs)-1)
	p := inputs[idx]
	partial := words[len(words)-1]

	switch {
	case p.Suggest != nil:
		return p.Suggest(ctx, partial)
	case p.Kind == ParamEnum:
		out := make([]Suggestion, len(p.Enum))
		for i, v := range p.Enum {
			out[i] = Suggestion{Value: strings.ToLower(v), Group: p.Name, Complete: true}
		}
		return out
	case p.Kind == ParamPreference:
		var out []Suggestion
		for _, pref := range store.List() {
			out = append(out, Suggestion{Value: pref.ID(), Description: pref.Spec().Description, Group: "preference", Complete: true})
		}
		return out
	}
	return nil
}

// FilterSuggestions keeps the suggestions whose value starts with partial,
// ignoring case.
func FilterSuggestions(partial string, in []Suggestion) []Suggestion {
	if partial == "" {
		return in
	}
	lower := strings.ToLower(partial)
	var out []Suggestion
	for _, s := range in {
		if strings.HasPrefix(strings.ToLower(s.Value), lower) {
			out = append(out, s)
		}
	}
	return out
}
