package pager

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/shellkit/internal/preferences"
	"github.com/giantswarm/shellkit/internal/terminal"
	"github.com/giantswarm/shellkit/internal/theme"
)

// scriptedKeys replays keys and then reports end of input.
type scriptedKeys struct {
	keys  []terminal.Key
	reads int
	err   error
}

func (s *scriptedKeys) ReadKey() (terminal.Key, error) {
	if s.reads >= len(s.keys) {
		if s.err != nil {
			return terminal.Key{}, s.err
		}
		return terminal.Key{}, io.EOF
	}
	k := s.keys[s.reads]
	s.reads++
	return k, nil
}

func runes(s string) []terminal.Key {
	var keys []terminal.Key
	for _, r := range s {
		keys = append(keys, terminal.RuneKey(r))
	}
	return keys
}

func items(n int) []any {
	out := make([]any, n)
	for i := range out {
		out[i] = fmt.Sprintf("item-%03d", i)
	}
	return out
}

func newPager(t *testing.T, keys terminal.KeyReader, prefs map[string]string) (*Pager, *bytes.Buffer) {
	t.Helper()
	store := preferences.NewStore()
	require.NoError(t, store.Load(prefs))

	var out bytes.Buffer
	p := New(Options{
		Out:         &out,
		Keys:        keys,
		Renderer:    theme.NewRenderer(theme.Default(), termenv.Ascii),
		Preferences: store,
		Interactive: true,
	})
	return p, &out
}

func printed(out string) []string {
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if i := strings.LastIndex(l, "item-"); i >= 0 {
			lines = append(lines, l[i:])
		}
	}
	return lines
}

func TestPage_EmptyDoesNothing(t *testing.T) {
	keys := &scriptedKeys{}
	p, out := newPager(t, keys, nil)

	stats, err := p.Page(nil)

	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
	assert.Empty(t, out.String())
	assert.Zero(t, keys.reads)
}

func TestPage_FitsOnOnePage(t *testing.T) {
	keys := &scriptedKeys{}
	p, out := newPager(t, keys, nil)

	stats, err := p.Page(items(25))

	require.NoError(t, err)
	assert.False(t, stats.Paged)
	assert.Equal(t, 25, stats.Items)
	assert.Len(t, printed(out.String()), 25)
	assert.Zero(t, keys.reads)
}

func TestPage_DisabledByPreference(t *testing.T) {
	keys := &scriptedKeys{}
	p, out := newPager(t, keys, nil)
	require.NoError(t, p.paging.Set("false"))

	stats, err := p.Page(items(60))

	require.NoError(t, err)
	assert.False(t, stats.Paged)
	assert.Len(t, printed(out.String()), 60)
	assert.Zero(t, keys.reads)
}

func TestPage_NonInteractive(t *testing.T) {
	var out bytes.Buffer
	p := New(Options{Out: &out, Keys: &scriptedKeys{}, Interactive: false})

	stats, err := p.Page(items(60))

	require.NoError(t, err)
	assert.False(t, stats.Paged)
	assert.Len(t, printed(out.String()), 60)
}

func TestPage_PageCount(t *testing.T) {
	keys := &scriptedKeys{keys: runes("    ")}
	p, out := newPager(t, keys, map[string]string{"results-per-page": "25"})

	stats, err := p.Page(items(101))

	require.NoError(t, err)
	assert.True(t, stats.Paged)
	assert.Equal(t, 5, stats.Pages)
	assert.Equal(t, 101, stats.Items)
	assert.Contains(t, out.String(), "5/5")

	// The page reached after the fourth advance holds only the last item.
	lastPage := out.String()[strings.LastIndex(out.String(), "4/5"):]
	assert.Equal(t, []string{"item-100"}, printed(lastPage))
}

func TestPage_Quit(t *testing.T) {
	keys := &scriptedKeys{keys: runes("q")}
	p, out := newPager(t, keys, map[string]string{"results-per-page": "10"})

	stats, err := p.Page(items(30))

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pages)
	assert.Equal(t, 10, stats.Items)
	assert.Len(t, printed(out.String()), 10)
}

func TestPage_QuitKeys(t *testing.T) {
	for _, k := range []terminal.Key{{Code: terminal.KeyEscape}, {Code: terminal.KeyCtrlC}} {
		t.Run(k.String(), func(t *testing.T) {
			p, _ := newPager(t, &scriptedKeys{keys: []terminal.Key{k}}, map[string]string{"results-per-page": "10"})
			stats, err := p.Page(items(30))
			require.NoError(t, err)
			assert.Equal(t, 10, stats.Items)
		})
	}
}

func TestPage_DumpRest(t *testing.T) {
	keys := &scriptedKeys{keys: runes("a")}
	p, out := newPager(t, keys, map[string]string{"results-per-page": "10"})

	stats, err := p.Page(items(30))

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pages)
	assert.Equal(t, 30, stats.Items)
	assert.Len(t, printed(out.String()), 30)
	assert.Equal(t, 1, keys.reads)
}

func TestPage_IgnoresUnmappedKeys(t *testing.T) {
	keys := &scriptedKeys{keys: append(runes("xyz"), terminal.Key{Code: terminal.KeyTab}, terminal.RuneKey('q'))}
	p, _ := newPager(t, keys, map[string]string{"results-per-page": "10"})

	stats, err := p.Page(items(30))

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pages)
	assert.Equal(t, 5, keys.reads)
}

func TestPage_RetreatAndResize(t *testing.T) {
	keys := &scriptedKeys{keys: []terminal.Key{
		{Code: terminal.KeyDown},  // cursor 10
		{Code: terminal.KeyUp},    // cursor 0
		{Code: terminal.KeyUp},    // stays at 0
		{Code: terminal.KeyRight}, // size 11
		{Code: terminal.KeyLeft},  // size 10
		{Code: terminal.KeyLeft},  // size 9
		terminal.RuneKey('q'),
	}}
	p, out := newPager(t, keys, map[string]string{"results-per-page": "10"})

	stats, err := p.Page(items(30))

	require.NoError(t, err)
	assert.Equal(t, 7, stats.Pages)
	assert.Equal(t, 10+10+10+10+11+10+9, stats.Items)

	lines := printed(out.String())
	assert.Equal(t, "item-010", lines[10], "second page starts at the advanced cursor")
	assert.Equal(t, "item-000", lines[20], "retreat returns to the first page")
	assert.Equal(t, "item-008", lines[len(lines)-1])
}

func TestPage_ShrinkClampsToOne(t *testing.T) {
	keys := &scriptedKeys{keys: []terminal.Key{
		{Code: terminal.KeyLeft},
		{Code: terminal.KeyLeft},
		{Code: terminal.KeyLeft},
		terminal.RuneKey('q'),
	}}
	p, out := newPager(t, keys, map[string]string{"results-per-page": "2"})

	_, err := p.Page(items(5))

	require.NoError(t, err)
	lines := printed(out.String())
	assert.Equal(t, []string{"item-000", "item-001", "item-000", "item-000", "item-000"}, lines)
}

func TestPage_NonPositivePageSize(t *testing.T) {
	keys := &scriptedKeys{keys: runes("  ")}
	p, _ := newPager(t, keys, map[string]string{"results-per-page": "0"})

	stats, err := p.Page(items(3))

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Pages)
}

func TestPage_EndOfKeyInputQuits(t *testing.T) {
	p, _ := newPager(t, &scriptedKeys{}, map[string]string{"results-per-page": "10"})

	stats, err := p.Page(items(30))

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pages)
}

func TestPage_KeyReadError(t *testing.T) {
	boom := errors.New("raw mode unavailable")
	p, _ := newPager(t, &scriptedKeys{err: boom}, map[string]string{"results-per-page": "10"})

	_, err := p.Page(items(30))

	assert.ErrorIs(t, err, boom)
}

func TestPage_CustomPrint(t *testing.T) {
	var out bytes.Buffer
	p := New(Options{
		Out: &out,
		Print: func(w io.Writer, item any) error {
			_, err := fmt.Fprintf(w, "<%v>\n", item)
			return err
		},
	})

	_, err := p.PageStrings([]string{"a", "b"})

	require.NoError(t, err)
	assert.Equal(t, "<a>\n<b>\n", out.String())
}

func TestActionFor(t *testing.T) {
	tests := map[terminal.Key]Action{
		terminal.RuneKey(' '):        Advance,
		{Code: terminal.KeyDown}:     Advance,
		{Code: terminal.KeyPageDown}: Advance,
		{Code: terminal.KeyUp}:       Retreat,
		terminal.RuneKey('k'):        Retreat,
		{Code: terminal.KeyLeft}:     Shrink,
		terminal.RuneKey('+'):        Grow,
		{Code: terminal.KeyEnd}:      DumpRest,
		terminal.RuneKey('q'):        Quit,
		terminal.RuneKey('z'):        None,
		{Code: terminal.KeyHome}:     None,
	}
	for key, want := range tests {
		assert.Equal(t, want, ActionFor(key), key.String())
	}
	assert.Equal(t, "dump-rest", DumpRest.String())
}
