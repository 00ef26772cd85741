package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact length unchanged", "hello", 5, "hello"},
		{"long string truncated", "hello world this is a long string", 15, "hello world ..."},
		{"newlines replaced with spaces", "hello\nworld", 20, "hello world"},
		{"carriage returns handled", "hello\r\nworld", 20, "hello world"},
		{"tabs and runs collapsed", "hello\t\t   world", 20, "hello world"},
		{"maxLen clamped to MinTruncateLen", "hello", 2, "h..."},
		{"negative maxLen clamped", "hello", -5, "h..."},
		{"short string with small maxLen unchanged", "hi", 3, "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateDescription(tt.input, tt.maxLen))
		})
	}
}

func TestTruncateDescription_WideRunes(t *testing.T) {
	// Each of these runes occupies two terminal cells.
	input := "日本語テスト"

	result := TruncateDescription(input, 7)

	assert.Equal(t, "日本...", result)
	assert.LessOrEqual(t, DisplayWidth(result), 7)
}

func TestStripANSI(t *testing.T) {
	styled := "\x1b[1;38;2;255;0;0mfail\x1b[0m \x1b]0;title\x07ok"
	assert.Equal(t, "fail ok", StripANSI(styled))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 0, DisplayWidth(""))
	assert.Equal(t, 4, DisplayWidth("\x1b[31mfail\x1b[0m"))
	assert.Equal(t, 4, DisplayWidth("日本"))
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "   ab", PadLeft("ab", 5))
	assert.Equal(t, "abcdef", PadLeft("abcdef", 3))
	assert.Equal(t, "  \x1b[31mab\x1b[0m", PadLeft("\x1b[31mab\x1b[0m", 4))
}
