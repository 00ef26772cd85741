package console

import (
	"strings"
)

// Completer adapts Console.Suggest to the readline AutoCompleter interface.
type Completer struct {
	console *Console
}

// NewCompleter creates a completer for c.
func NewCompleter(c *Console) *Completer {
	return &Completer{console: c}
}

// Do returns the suffixes that complete the word before pos, and the length
// of that word in runes. Nothing is offered while the completion preference is off.
func (cp *Completer) Do(line []rune, pos int) ([][]rune, int) {
	if !cp.console.completion.Bool() {
		return nil, 0
	}

	text := string(line[:pos])
	words := splitWords(text)
	partial := words[len(words)-1]

	var candidates [][]rune
	for _, s := range cp.console.Suggest(text) {
		if !strings.HasPrefix(s.Value, partial) {
			continue
		}
		suffix := s.Value[len(partial):]
		if s.Complete {
			suffix += " "
		}
		candidates = append(candidates, []rune(suffix))
	}
	return candidates, len([]rune(partial))
}
