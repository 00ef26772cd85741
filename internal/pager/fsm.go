package pager

import "github.com/giantswarm/shellkit/internal/terminal"

// Action is what a keystroke asks the pager to do.
type Action int

const (
	None Action = iota
	Advance
	Retreat
	Shrink
	Grow
	DumpRest
	Quit
)

func (a Action) String() string {
	switch a {
	case Advance:
		return "advance"
	case Retreat:
		return "retreat"
	case Shrink:
		return "shrink"
	case Grow:
		return "grow"
	case DumpRest:
		return "dump-rest"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

var codeActions = map[terminal.KeyCode]Action{
	terminal.KeyDown:     Advance,
	terminal.KeyPageDown: Advance,
	terminal.KeyEnter:    Advance,
	terminal.KeyUp:       Retreat,
	terminal.KeyPageUp:   Retreat,
	terminal.KeyLeft:     Shrink,
	terminal.KeyRight:    Grow,
	terminal.KeyEnd:      DumpRest,
	terminal.KeyEscape:   Quit,
	terminal.KeyCtrlC:    Quit,
	terminal.KeyCtrlD:    Quit,
}

var runeActions = map[rune]Action{
	' ': Advance,
	'j': Advance,
	'n': Advance,
	'k': Retreat,
	'b': Retreat,
	'p': Retreat,
	'h': Shrink,
	'-': Shrink,
	'l': Grow,
	'+': Grow,
	'a': DumpRest,
	'q': Quit,
}

// ActionFor maps a keystroke to a pager action. Unmapped keys yield None.
func ActionFor(k terminal.Key) Action {
	if k.Code == terminal.KeyRune {
		return runeActions[k.Rune]
	}
	return codeActions[k.Code]
}

// session is the mutable part of a paging run.
type session struct {
	cursor   int
	pageSize int
}

func (s *session) clamp() {
	if s.pageSize < 1 {
		s.pageSize = 1
	}
}

// apply moves the session for navigation actions. DumpRest and Quit are handled by the caller.
func (s *session) apply(a Action) {
	switch a {
	case Advance:
		s.cursor += s.pageSize
	case Retreat:
		s.cursor = max(0, s.cursor-s.pageSize)
	case Shrink:
		s.pageSize--
	case Grow:
		s.pageSize++
	}
	s.clamp()
}
