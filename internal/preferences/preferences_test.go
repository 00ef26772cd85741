package preferences

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pagingSpec  = Spec{ID: "paging", Description: "Page long results", Type: Flag, Default: "true"}
	perPageSpec = Spec{ID: "results-per-page", Description: "Results per page", Type: Number, Default: "25"}
	editorSpec  = Spec{ID: "editor", Description: "Editor command", Type: Text, Default: "vi"}
)

func TestType_Convert(t *testing.T) {
	tests := []struct {
		name     string
		typ      Type
		input    string
		expected any
		wantErr  bool
	}{
		{"flag true", Flag, "true", true, false},
		{"flag on", Flag, "on", true, false},
		{"flag no", Flag, "NO", false, false},
		{"flag invalid", Flag, "maybe", nil, true},
		{"number", Number, " 42 ", 42, false},
		{"number invalid", Number, "many", nil, true},
		{"text keeps input", Text, " spaced ", " spaced ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.typ.Convert(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range []Type{Flag, Text, Number} {
		parsed, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
	_, err := ParseType("color")
	assert.Error(t, err)
}

func TestIDFromName(t *testing.T) {
	tests := map[string]string{
		"resultsPerPage": "results-per-page",
		"paging":         "paging",
		"showHTTP":       "show-h-t-t-p",
		"Editor":         "editor",
		"":               "",
	}
	for in, want := range tests {
		assert.Equal(t, want, IDFromName(in), in)
	}
}

func TestSpec_Validate(t *testing.T) {
	assert.NoError(t, pagingSpec.Validate())
	assert.Error(t, Spec{Type: Text}.Validate())

	err := Spec{ID: "broken", Type: Number, Default: "x"}.Validate()
	var convErr *ConversionError
	require.True(t, errors.As(err, &convErr))
	assert.Equal(t, "broken", convErr.ID)
}

func TestPreference_ResetRoundTrip(t *testing.T) {
	store := NewStore()

	for _, spec := range []Spec{pagingSpec, perPageSpec, editorSpec} {
		t.Run(spec.ID, func(t *testing.T) {
			p := store.Get(spec)
			require.NoError(t, p.Set(map[Type]string{Flag: "false", Number: "7", Text: "emacs"}[spec.Type]))
			require.NoError(t, p.Reset())

			want, err := spec.Type.Convert(spec.Default)
			require.NoError(t, err)
			assert.Equal(t, want, p.Value())
			assert.Equal(t, spec.Default, p.Input())
			assert.True(t, p.IsDefault())
		})
	}
}

func TestPreference_SetInvalidKeepsValue(t *testing.T) {
	p := NewStore().Get(perPageSpec)

	err := p.Set("lots")

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "results-per-page", convErr.ID)
	assert.Equal(t, 25, p.Int())
	assert.Equal(t, "25", p.Input())
}

func TestPreference_TypedAccessors(t *testing.T) {
	store := NewStore()

	assert.True(t, store.Get(pagingSpec).Bool())
	assert.Equal(t, 25, store.Get(perPageSpec).Int())
	assert.Equal(t, "vi", store.Get(editorSpec).String())
	assert.Equal(t, "25", store.Get(perPageSpec).String())
	assert.Equal(t, 0, store.Get(editorSpec).Int())
}

func TestPreference_ListenReplaysCurrentValue(t *testing.T) {
	p := NewStore().Get(perPageSpec)
	require.NoError(t, p.Set("10"))

	var seen []any
	p.Listen(func(v any) { seen = append(seen, v) })

	assert.Equal(t, []any{10}, seen, "listener sees the current value at subscribe time")

	require.NoError(t, p.Set("12"))
	assert.Equal(t, []any{10, 12}, seen)
}

func TestPreference_ListenersAreSynchronousAndOrdered(t *testing.T) {
	p := NewStore().Get(editorSpec)

	var order []string
	p.Listen(func(any) { order = append(order, "first") })
	p.Listen(func(any) { order = append(order, "second") })
	order = nil

	require.NoError(t, p.Set("nano"))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestStore_RegisterIsIdempotent(t *testing.T) {
	store := NewStore()
	first := store.Register(perPageSpec)
	require.NoError(t, first.Set("5"))

	again := store.Register(Spec{ID: "results-per-page", Type: Number, Default: "99"})

	assert.Same(t, first, again)
	assert.Equal(t, 5, again.Int())
	assert.Equal(t, "25", again.Spec().Default)
}

func TestStore_DeferredUnknownPreference(t *testing.T) {
	store := NewStore()

	require.NoError(t, store.Load(map[string]string{"unknown-id": "5"}))
	assert.Equal(t, map[string]string{"unknown-id": "5"}, store.Unknown())

	p := store.Register(Spec{ID: "unknown-id", Type: Number, Default: "1"})

	assert.Equal(t, 5, p.Int())
	assert.Equal(t, "5", p.Input())
	assert.Empty(t, store.Unknown())
}

func TestStore_DeferredInvalidValueFallsBackToDefault(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Load(map[string]string{"results-per-page": "lots"}))

	p := store.Register(perPageSpec)

	assert.Equal(t, 25, p.Int())
	assert.Empty(t, store.Unknown())
}

func TestStore_LoadRegistered(t *testing.T) {
	store := NewStore()
	paging := store.Register(pagingSpec)
	perPage := store.Register(perPageSpec)

	var notified int
	perPage.Listen(func(any) { notified++ })
	notified = 0

	err := store.Load(map[string]string{
		"paging":           "off",
		"results-per-page": "25",
	})

	require.NoError(t, err)
	assert.False(t, paging.Bool())
	assert.Zero(t, notified, "unchanged input does not notify")
}

func TestStore_LoadCollectsErrors(t *testing.T) {
	store := NewStore()
	store.Register(pagingSpec)
	store.Register(perPageSpec)
	editor := store.Register(editorSpec)

	err := store.Load(map[string]string{
		"paging":           "maybe",
		"results-per-page": "lots",
		"editor":           "nano",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "paging")
	assert.Contains(t, err.Error(), "results-per-page")
	assert.Equal(t, "nano", editor.String(), "valid entries still apply")
}

func TestStore_FindAndList(t *testing.T) {
	store := NewStore()
	store.Register(perPageSpec)
	store.Register(editorSpec)
	store.Register(pagingSpec)

	p, ok := store.Find("editor")
	require.True(t, ok)
	assert.Equal(t, "editor", p.ID())

	_, ok = store.Find("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"editor", "paging", "results-per-page"}, store.IDs())
	assert.Len(t, store.List(), 3)
}
