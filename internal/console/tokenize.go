package console

import (
	"strings"

	"github.com/google/shlex"
)

// redirectToken introduces an output redirect when it is the second-to-last token.
const redirectToken = ">"

// Tokenize splits a line into words using shell quoting rules. A word starting
// with # begins a comment.
func Tokenize(line string) ([]string, error) {
	tokens, err := shlex.Split(line)
	if err != nil {
		return nil, WrapError(KindMissingInput, err, "cannot parse %q", line)
	}
	return tokens, nil
}

// splitRedirect detects a trailing "> path" and returns the arguments before it.
func splitRedirect(args []string) (rest []string, path string, ok bool) {
	n := len(args)
	if n < 2 || args[n-2] != redirectToken || args[n-1] == "" {
		return args, "", false
	}
	return args[:n-2], args[n-1], true
}

// splitWords splits a partially typed line for completion. It tolerates open
// quotes and appends an empty word when the line ends in whitespace, so the last
// element is always the word being completed.
func splitWords(line string) []string {
	words, err := shlex.Split(line)
	if err != nil {
		words = strings.Fields(line)
	}
	if len(words) == 0 || strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
		words = append(words, "")
	}
	return words
}
