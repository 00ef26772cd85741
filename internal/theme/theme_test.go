package theme

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Style
	}{
		{
			name:     "full descriptor",
			input:    "red/blue/bi",
			expected: Style{Foreground: "red", Background: "blue", Bold: true, Italic: true},
		},
		{
			name:     "foreground only",
			input:    "green",
			expected: Style{Foreground: "green"},
		},
		{
			name:     "background only",
			input:    "/blue",
			expected: Style{Background: "blue"},
		},
		{
			name:     "options only",
			input:    "//ukc",
			expected: Style{Underline: true, Blink: true, CrossedOut: true},
		},
		{
			name:     "unknown option letters ignored",
			input:    "red//bzq",
			expected: Style{Foreground: "red", Bold: true},
		},
		{
			name:     "empty",
			input:    "",
			expected: Style{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseStyle(tt.input))
		})
	}
}

func TestParseStyle_RedBlueBoldItalic(t *testing.T) {
	s := ParseStyle("red/blue/bi")

	assert.Equal(t, "red", s.Foreground)
	assert.Equal(t, "blue", s.Background)
	assert.True(t, s.Bold)
	assert.True(t, s.Italic)
	assert.False(t, s.Underline)
}

func TestStyle_String(t *testing.T) {
	assert.Equal(t, "red/blue/bi", ParseStyle("red/blue/bi").String())
	assert.Equal(t, "red", ParseStyle("red").String())
	assert.Equal(t, "//u", ParseStyle("//u").String())
	assert.True(t, ParseStyle("").IsZero())
}

func TestColorMap_Resolve(t *testing.T) {
	colors := NewColorMap(map[string]string{
		"red":    "ff0000",
		"error":  "red",
		"danger": "error",
	})

	assert.Equal(t, "ff0000", colors.Resolve("red"))
	assert.Equal(t, "ff0000", colors.Resolve("error"))
	assert.Equal(t, "ff0000", colors.Resolve("danger"))
	assert.Equal(t, "00ff00", colors.Resolve("00ff00"), "unknown names are returned unchanged")
}

func TestColorMap_ResolveCycle(t *testing.T) {
	colors := NewColorMap(map[string]string{
		"a":    "b",
		"b":    "c",
		"c":    "a",
		"self": "self",
	})

	assert.Equal(t, "a", colors.Resolve("a"))
	assert.Equal(t, "b", colors.Resolve("b"))
	assert.Equal(t, "self", colors.Resolve("self"))
}

func TestColorMap_ResolveDepthBound(t *testing.T) {
	values := map[string]string{}
	for i := 0; i < MaxAliasDepth+5; i++ {
		values[key(i)] = key(i + 1)
	}
	values[key(MaxAliasDepth+5)] = "ffffff"
	colors := NewColorMap(values)

	assert.Equal(t, key(0), colors.Resolve(key(0)))
	assert.Equal(t, "ffffff", colors.Resolve(key(10)))
}

func key(i int) string {
	return "c" + strings.Repeat("x", i)
}

func TestAliasMap_PutAndNames(t *testing.T) {
	icons := NewIconMap(map[string]string{"ok": "+"})
	icons.Put("fail", "x")
	icons.Put("ok", "v")

	assert.Equal(t, []string{"fail", "ok"}, icons.Names())
	raw, ok := icons.Lookup("ok")
	require.True(t, ok)
	assert.Equal(t, "v", raw)
}

func TestTheme_WithStyle(t *testing.T) {
	th := New(
		map[string]string{"red": "ff0000"},
		nil,
		map[string]string{
			"error": "red//b",
			"alarm": "error",
		},
	)

	assert.Equal(t, Style{Foreground: "red", Bold: true}, th.WithStyle("error"))
	assert.Equal(t, Style{Foreground: "red", Bold: true}, th.WithStyle("alarm"))
	assert.Equal(t, Style{Foreground: "green", Underline: true}, th.WithStyle("green//u"))
}

func TestDefault(t *testing.T) {
	th := Default()

	assert.Equal(t, DefaultColors["red"], th.Color("error"))
	assert.Equal(t, DefaultIcons["ok"], th.Icon("success"))
	assert.True(t, th.WithStyle("error").Bold)
	assert.Equal(t, "success", th.WithStyle("success").Foreground)
	assert.Equal(t, "cyan", th.WithStyle("command").Foreground)
}

func TestRenderer_Ascii(t *testing.T) {
	r := NewRenderer(Default(), termenv.Ascii)

	assert.Equal(t, "plain", r.Sprint("error", "plain"))
	assert.Equal(t, DefaultIcons["fail"], r.Icon("error"))
}

func TestRenderer_TrueColor(t *testing.T) {
	th := New(map[string]string{"red": "ff0000", "blue": "0000ff"}, nil, nil)
	r := NewRenderer(th, termenv.TrueColor)

	out := r.Sprint("red/blue/bi", "x")

	assert.Contains(t, out, "38;2;255;0;0")
	assert.Contains(t, out, "48;2;0;0;255")
	assert.Contains(t, out, "x")
	assert.True(t, strings.HasPrefix(out, "\x1b["))
}

func TestRenderer_UnknownColorLeavesAttributeUnset(t *testing.T) {
	r := NewRenderer(New(nil, nil, nil), termenv.TrueColor)

	assert.Nil(t, r.Color("no-such-color"))
	assert.Equal(t, "x", r.Render(Style{Foreground: "no-such-color"}, "x"))
}

func TestRenderer_WithProfile(t *testing.T) {
	r := NewRenderer(Default(), termenv.TrueColor)
	plain := r.WithProfile(termenv.Ascii)

	assert.Same(t, r.Theme(), plain.Theme())
	assert.Equal(t, termenv.Ascii, plain.Profile())
	assert.Equal(t, "text", plain.Sprint("header", "text"))
}
