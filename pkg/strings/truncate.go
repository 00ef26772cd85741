package strings

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultDescriptionMaxLen is the default display width for descriptions in
// help tables and completion listings.
const DefaultDescriptionMaxLen = 60

// MinTruncateLen is the minimum maxLen value for TruncateDescription.
// Values smaller than this would not leave room for meaningful content plus "...".
const MinTruncateLen = 4

// TruncateDescription collapses whitespace into single spaces and truncates
// the result to at most maxLen terminal cells, appending "..." when cut.
//
// Widths are measured in terminal cells rather than runes, so East Asian wide
// characters and emoji count double and never get split in half.
func TruncateDescription(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	return runewidth.Truncate(s, maxLen, "...")
}
