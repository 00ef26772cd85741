package strings

import (
	"regexp"

	"github.com/mattn/go-runewidth"
)

// ansiPattern matches CSI and OSC escape sequences as emitted by termenv.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes terminal escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// DisplayWidth returns the number of terminal cells s occupies once escape
// sequences are removed.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// PadLeft prefixes s with spaces so it occupies width cells. Strings that are
// already wider are returned unchanged.
func PadLeft(s string, width int) string {
	gap := width - DisplayWidth(s)
	if gap <= 0 {
		return s
	}
	return runewidth.FillLeft("", gap) + s
}
