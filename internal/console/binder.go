package console

import (
	"strconv"
	"strings"

	"github.com/giantswarm/shellkit/internal/pager"
	"github.com/giantswarm/shellkit/internal/preferences"
)

// ParamKind selects how a parameter gets its value. Kinds are resolved in the
// order they are declared here.
type ParamKind int

const (
	// ParamContext binds the invocation Context.
	ParamContext ParamKind = iota
	// ParamWriter binds the active Writer.
	ParamWriter
	// ParamPreference binds the preference whose id is the kebab-cased
	// parameter name, or else the preference named by the next token.
	ParamPreference
	// ParamPreferenceByID binds the preference named by Param.Preference.
	ParamPreferenceByID
	// ParamRemaining binds the number of tokens not consumed yet.
	ParamRemaining
	// ParamToken binds the next raw token.
	ParamToken
	// ParamRawLine binds every remaining token joined by single spaces.
	ParamRawLine
	// ParamRawArray binds every remaining token as a []string.
	ParamRawArray
	// ParamPager binds a Pager for the invocation's output.
	ParamPager
	// ParamString binds the next token as a string.
	ParamString
	// ParamInt binds the next token converted to an int.
	ParamInt
	// ParamEnum binds the next token matched against Param.Enum, ignoring
	// case and treating - and _ alike.
	ParamEnum
	// ParamCustom binds the next token converted by Param.Parse.
	ParamCustom
)

// Param declares one input of an action.
type Param struct {
	Name        string
	Kind        ParamKind
	Description string

	// Optional parameters fall back to Default when no token is left.
	Optional bool
	Default  string

	// Enum lists the accepted values of a ParamEnum.
	Enum []string
	// Preference is the id bound by ParamPreferenceByID.
	Preference string
	// Parse converts the token of a ParamCustom.
	Parse func(token string) (any, error)
	// Suggest completes the token for this parameter.
	Suggest func(ctx *Context, partial string) []Suggestion
}

// Resolver binds parameters no built-in kind handles. It may consume tokens from in.
type Resolver func(ctx *Context, p Param, in *Input) (any, error)

// Binder resolves declared parameters against an invocation.
type Binder struct {
	// Default handles parameter kinds outside the built-in set.
	Default Resolver
}

// Input is the token cursor parameters consume from.
type Input struct {
	tokens []string
	pos    int
}

// NewInput creates a cursor over tokens.
func NewInput(tokens []string) *Input {
	return &Input{tokens: tokens}
}

// Next consumes and returns the next token.
func (in *Input) Next() (string, bool) {
	if in.pos >= len(in.tokens) {
		return "", false
	}
	t := in.tokens[in.pos]
	in.pos++
	return t, true
}

// Rest consumes and returns every remaining token.
func (in *Input) Rest() []string {
	rest := append([]string(nil), in.tokens[in.pos:]...)
	in.pos = len(in.tokens)
	return rest
}

// Remaining returns how many tokens are left.
func (in *Input) Remaining() int {
	return len(in.tokens) - in.pos
}

// Bind resolves params in order, consuming tokens as they go.
func (b *Binder) Bind(ctx *Context, params []Param, tokens []string) (*Args, error) {
	in := NewInput(tokens)
	args := &Args{ctx: ctx, values: make(map[string]any, len(params))}

	for _, p := range params {
		v, err := b.resolve(ctx, p, in)
		if err != nil {
			return nil, err
		}
		args.values[p.Name] = v
	}
	if in.Remaining() > 0 {
		args.extra = in.Rest()
	}
	return args, nil
}

func (b *Binder) resolve(ctx *Context, p Param, in *Input) (any, error) {
	switch p.Kind {
	case ParamContext:
		return ctx, nil
	case ParamWriter:
		return ctx.Out, nil
	case ParamPreference:
		return resolvePreference(ctx, p, in)
	case ParamPreferenceByID:
		if pref, ok := ctx.Console.Preferences().Find(p.Preference); ok {
			return pref, nil
		}
		return nil, Errorf(KindUnresolvedParameter, "no preference %q for parameter %s", p.Preference, p.Name)
	case ParamRemaining:
		return in.Remaining(), nil
	case ParamToken:
		return nextToken(p, in)
	case ParamRawLine:
		rest := in.Rest()
		if len(rest) == 0 && !p.Optional {
			return nil, Errorf(KindMissingInput, "missing %s", p.Name)
		}
		return strings.Join(rest, " "), nil
	case ParamRawArray:
		rest := in.Rest()
		if len(rest) == 0 && !p.Optional {
			return nil, Errorf(KindMissingInput, "missing %s", p.Name)
		}
		return rest, nil
	case ParamPager:
		return ctx.Pager(), nil
	case ParamString:
		tok, err := nextToken(p, in)
		if err != nil {
			return nil, err
		}
		return strings.TrimSpace(tok), nil
	case ParamInt:
		return convertNext(p, in, func(tok string) (any, error) {
			n, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil {
				return nil, WrapError(KindConversion, err, "%s: %q is not a number", p.Name, tok)
			}
			return n, nil
		})
	case ParamEnum:
		return convertNext(p, in, func(tok string) (any, error) {
			return matchEnum(p, tok)
		})
	case ParamCustom:
		if p.Parse == nil {
			return nil, Errorf(KindUnresolvedParameter, "parameter %s has no parser", p.Name)
		}
		return convertNext(p, in, func(tok string) (any, error) {
			v, err := p.Parse(tok)
			if err != nil {
				return nil, WrapError(KindConversion, err, "%s: cannot convert %q", p.Name, tok)
			}
			return v, nil
		})
	}

	if b.Default != nil {
		return b.Default(ctx, p, in)
	}
	return nil, Errorf(KindUnresolvedParameter, "cannot resolve parameter %s", p.Name)
}

func resolvePreference(ctx *Context, p Param, in *Input) (any, error) {
	store := ctx.Console.Preferences()
	if pref, ok := store.Find(preferences.IDFromName(p.Name)); ok {
		return pref, nil
	}

	id, ok := in.Next()
	if !ok {
		if p.Optional {
			return nil, nil
		}
		return nil, Errorf(KindMissingInput, "missing preference id")
	}
	if pref, ok := store.Find(id); ok {
		return pref, nil
	}
	return nil, Errorf(KindUnresolvedParameter, "unknown preference %q", id)
}

// consumesToken reports whether p reads tokens, given the preference store
// for ParamPreference parameters that may fall back to a token.
func consumesToken(p Param, store *preferences.Store) bool {
	switch p.Kind {
	case ParamToken, ParamRawLine, ParamRawArray, ParamString, ParamInt, ParamEnum, ParamCustom:
		return true
	case ParamPreference:
		_, named := store.Find(preferences.IDFromName(p.Name))
		return !named
	}
	return false
}

func nextToken(p Param, in *Input) (string, error) {
	tok, ok := in.Next()
	if ok {
		return tok, nil
	}
	if p.Optional {
		return p.Default, nil
	}
	return "", Errorf(KindMissingInput, "missing %s", p.Name)
}

func convertNext(p Param, in *Input, convert func(string) (any, error)) (any, error) {
	tok, ok := in.Next()
	if !ok {
		if !p.Optional {
			return nil, Errorf(KindMissingInput, "missing %s", p.Name)
		}
		if p.Default == "" {
			return nil, nil
		}
		tok = p.Default
	}
	return convert(tok)
}

// normalizeEnum folds case and treats - like _.
func normalizeEnum(s string) string {
	return strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
}

func matchEnum(p Param, tok string) (string, error) {
	want := normalizeEnum(tok)
	for _, v := range p.Enum {
		if normalizeEnum(v) == want {
			return v, nil
		}
	}
	return "", Errorf(KindConversion, "%s: %q is not one of %s", p.Name, tok, strings.Join(p.Enum, ", "))
}

// Args holds the values bound for one invocation.
type Args struct {
	ctx    *Context
	values map[string]any
	extra  []string
}

// Context returns the invocation context.
func (a *Args) Context() *Context {
	return a.ctx
}

// Out returns the active writer.
func (a *Args) Out() *Writer {
	return a.ctx.Out
}

// Has reports whether name was bound to a non-nil value.
func (a *Args) Has(name string) bool {
	v, ok := a.values[name]
	return ok && v != nil
}

// Value returns the raw bound value.
func (a *Args) Value(name string) any {
	return a.values[name]
}

// String returns a string parameter, "" when unset.
func (a *Args) String(name string) string {
	s, _ := a.values[name].(string)
	return s
}

// Int returns an int parameter, 0 when unset.
func (a *Args) Int(name string) int {
	n, _ := a.values[name].(int)
	return n
}

// Strings returns a raw array parameter.
func (a *Args) Strings(name string) []string {
	s, _ := a.values[name].([]string)
	return s
}

// Preference returns a preference parameter, nil when unset.
func (a *Args) Preference(name string) *preferences.Preference {
	p, _ := a.values[name].(*preferences.Preference)
	return p
}

// Pager returns a pager parameter.
func (a *Args) Pager(name string) *pager.Pager {
	p, _ := a.values[name].(*pager.Pager)
	return p
}

// Extra returns tokens no parameter consumed.
func (a *Args) Extra() []string {
	return a.extra
}
