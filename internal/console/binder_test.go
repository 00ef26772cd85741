package console

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/shellkit/internal/preferences"
)

func bindContext(t *testing.T) (*Console, *Context) {
	t.Helper()
	c, _ := newTestConsole(t, nil)
	return c, &Context{Console: c, Out: c.Out()}
}

func TestBind_PreferenceByKebabName(t *testing.T) {
	c, ctx := bindContext(t)

	args, err := c.Bind(ctx, []Param{{Name: "resultsPerPage", Kind: ParamPreference}}, nil)

	require.NoError(t, err)
	pref := args.Preference("resultsPerPage")
	require.NotNil(t, pref)
	assert.Equal(t, "results-per-page", pref.ID())
	assert.Equal(t, 25, pref.Int())
}

func TestBind_PreferenceFromToken(t *testing.T) {
	c, ctx := bindContext(t)
	params := []Param{
		{Name: "pref", Kind: ParamPreference},
		{Name: "value", Kind: ParamString},
	}

	args, err := c.Bind(ctx, params, []string{"paging", "off"})
	require.NoError(t, err)
	assert.Equal(t, "paging", args.Preference("pref").ID())
	assert.Equal(t, "off", args.String("value"))

	_, err = c.Bind(ctx, params, []string{"nope", "off"})
	assert.ErrorIs(t, err, ErrUnresolvedParameter)

	_, err = c.Bind(ctx, params[:1], nil)
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestBind_PreferenceByID(t *testing.T) {
	c, ctx := bindContext(t)

	args, err := c.Bind(ctx, []Param{{Name: "p", Kind: ParamPreferenceByID, Preference: "completion"}}, nil)
	require.NoError(t, err)
	assert.True(t, args.Preference("p").Bool())

	_, err = c.Bind(ctx, []Param{{Name: "p", Kind: ParamPreferenceByID, Preference: "missing"}}, nil)
	assert.ErrorIs(t, err, ErrUnresolvedParameter)
}

func TestBind_ContextWriterAndRemaining(t *testing.T) {
	c, ctx := bindContext(t)
	params := []Param{
		{Name: "ctx", Kind: ParamContext},
		{Name: "out", Kind: ParamWriter},
		{Name: "first", Kind: ParamToken},
		{Name: "left", Kind: ParamRemaining},
		{Name: "pager", Kind: ParamPager},
	}

	args, err := c.Bind(ctx, params, []string{"a", "b", "c"})

	require.NoError(t, err)
	assert.Same(t, ctx, args.Value("ctx"))
	assert.Same(t, c.Out(), args.Value("out"))
	assert.Equal(t, "a", args.String("first"))
	assert.Equal(t, 2, args.Int("left"))
	assert.NotNil(t, args.Pager("pager"))
	assert.Equal(t, []string{"b", "c"}, args.Extra())
}

func TestBind_RawLineAndArray(t *testing.T) {
	c, ctx := bindContext(t)

	args, err := c.Bind(ctx, []Param{{Name: "text", Kind: ParamRawLine}}, []string{"hello", "big", "world"})
	require.NoError(t, err)
	assert.Equal(t, "hello big world", args.String("text"))

	args, err = c.Bind(ctx, []Param{{Name: "words", Kind: ParamRawArray}}, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, args.Strings("words"))
	assert.Empty(t, args.Extra())

	_, err = c.Bind(ctx, []Param{{Name: "text", Kind: ParamRawLine}}, nil)
	assert.ErrorIs(t, err, ErrMissingInput)

	args, err = c.Bind(ctx, []Param{{Name: "text", Kind: ParamRawLine, Optional: true}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "", args.String("text"))
}

func TestBind_IntConversion(t *testing.T) {
	c, ctx := bindContext(t)
	params := []Param{{Name: "count", Kind: ParamInt}}

	args, err := c.Bind(ctx, params, []string{"42"})
	require.NoError(t, err)
	assert.Equal(t, 42, args.Int("count"))

	_, err = c.Bind(ctx, params, []string{"many"})
	require.ErrorIs(t, err, ErrConversion)
	assert.Contains(t, err.Error(), `"many"`)

	args, err = c.Bind(ctx, []Param{{Name: "count", Kind: ParamInt, Optional: true, Default: "7"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, args.Int("count"))

	args, err = c.Bind(ctx, []Param{{Name: "count", Kind: ParamInt, Optional: true}}, nil)
	require.NoError(t, err)
	assert.False(t, args.Has("count"))
}

func TestBind_EnumNormalization(t *testing.T) {
	c, ctx := bindContext(t)
	params := []Param{{Name: "mode", Kind: ParamEnum, Enum: []string{"FAST", "VERY_SLOW"}}}

	tests := []struct {
		token string
		want  string
	}{
		{"fast", "FAST"},
		{"Fast", "FAST"},
		{"very-slow", "VERY_SLOW"},
		{"very_slow", "VERY_SLOW"},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			args, err := c.Bind(ctx, params, []string{tt.token})
			require.NoError(t, err)
			assert.Equal(t, tt.want, args.String("mode"))
		})
	}

	_, err := c.Bind(ctx, params, []string{"medium"})
	require.ErrorIs(t, err, ErrConversion)
	assert.Contains(t, err.Error(), "FAST, VERY_SLOW")
}

func TestBind_Custom(t *testing.T) {
	c, ctx := bindContext(t)
	upper := Param{Name: "word", Kind: ParamCustom, Parse: func(tok string) (any, error) {
		if tok == "" {
			return nil, errors.New("empty")
		}
		return strings.ToUpper(tok), nil
	}}

	args, err := c.Bind(ctx, []Param{upper}, []string{"abc"})
	require.NoError(t, err)
	assert.Equal(t, "ABC", args.Value("word"))

	_, err = c.Bind(ctx, []Param{upper}, []string{""})
	assert.ErrorIs(t, err, ErrConversion)

	_, err = c.Bind(ctx, []Param{{Name: "word", Kind: ParamCustom}}, []string{"abc"})
	assert.ErrorIs(t, err, ErrUnresolvedParameter)
}

func TestBind_DefaultResolver(t *testing.T) {
	const ParamShout ParamKind = 100
	_, ctx := bindContext(t)

	plain := &Binder{}
	_, err := plain.Bind(ctx, []Param{{Name: "x", Kind: ParamShout}}, nil)
	assert.ErrorIs(t, err, ErrUnresolvedParameter)

	custom := &Binder{Default: func(_ *Context, p Param, in *Input) (any, error) {
		tok, _ := in.Next()
		return p.Name + "=" + strings.ToUpper(tok), nil
	}}
	args, err := custom.Bind(ctx, []Param{{Name: "x", Kind: ParamShout}}, []string{"hi"})
	require.NoError(t, err)
	assert.Equal(t, "x=HI", args.String("x"))
}

func TestBind_MissingToken(t *testing.T) {
	c, ctx := bindContext(t)

	_, err := c.Bind(ctx, []Param{{Name: "name", Kind: ParamString}}, nil)
	require.ErrorIs(t, err, ErrMissingInput)
	assert.Contains(t, err.Error(), "name")

	args, err := c.Bind(ctx, []Param{{Name: "name", Kind: ParamString, Optional: true, Default: "anon"}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "anon", args.String("name"))
}

func TestAction_Usage(t *testing.T) {
	store := preferences.NewStore()
	store.Register(preferences.Spec{ID: "results-per-page", Type: preferences.Number, Default: "25"})

	a := &Action{Name: "set", Params: []Param{
		{Name: "out", Kind: ParamWriter},
		{Name: "resultsPerPage", Kind: ParamPreference},
		{Name: "pref", Kind: ParamPreference},
		{Name: "value", Kind: ParamRawLine},
		{Name: "extra", Kind: ParamString, Optional: true},
	}}

	assert.Equal(t, "set <pref> <value...> [extra]", a.Usage(store))
}
