// Package terminal is the boundary between the console and the user's
// terminal: blocking line reads with left and right prompts, single raw
// keystrokes for the pager, width queries and the output sink.
//
// Two implementations are provided. Readline drives an interactive terminal
// through github.com/chzyer/readline. Plain reads lines from any reader and
// is used for piped input and batch mode.
package terminal

import (
	"errors"
	"io"

	"github.com/chzyer/readline"
)

// DefaultWidth is reported when the output is not a terminal.
const DefaultWidth = 80

// ErrInterrupt is matched by the error ReadLine returns when the user presses Ctrl-C.
var ErrInterrupt = errors.New("interrupted")

// InterruptError carries the partially typed line at the time of the interrupt.
type InterruptError struct {
	Line string
}

func (e *InterruptError) Error() string {
	return ErrInterrupt.Error()
}

// Is makes errors.Is(err, ErrInterrupt) true.
func (e *InterruptError) Is(target error) bool {
	return target == ErrInterrupt
}

// Terminal is what the console needs from the user's terminal.
type Terminal interface {
	KeyReader

	// ReadLine blocks until a line is entered. It returns io.EOF at end of
	// input and an *InterruptError when the line was cancelled.
	ReadLine(left, right string) (string, error)

	// Width returns the number of columns of the output.
	Width() int

	// Output is where command output is written.
	Output() io.Writer

	// Interactive reports whether a human is driving the terminal.
	Interactive() bool

	// SetCompleter installs the tab completion source.
	SetCompleter(c readline.AutoCompleter)

	Close() error
}

// InterruptedLine returns the partial line carried by an interrupt error.
func InterruptedLine(err error) (string, bool) {
	var ie *InterruptError
	if errors.As(err, &ie) {
		return ie.Line, true
	}
	return "", false
}
