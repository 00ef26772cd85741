package console

import (
	"errors"
	"fmt"
)

// ErrorKind classifies console errors.
type ErrorKind int

const (
	// KindUnknownCommand means the first token matched no registered command.
	KindUnknownCommand ErrorKind = iota + 1
	// KindUnknownAction means a multi-action command got an unrecognized verb.
	KindUnknownAction
	// KindMissingInput means a required token was absent.
	KindMissingInput
	// KindUnresolvedParameter means no binding rule produced a value for a parameter.
	KindUnresolvedParameter
	// KindConversion means a token or preference value did not convert.
	KindConversion
	// KindIO means a redirect file or the terminal failed.
	KindIO
	// KindPanic means a command panicked.
	KindPanic
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindUnknownCommand:
		return "unknown command"
	case KindUnknownAction:
		return "unknown action"
	case KindMissingInput:
		return "missing input"
	case KindUnresolvedParameter:
		return "unresolved parameter"
	case KindConversion:
		return "conversion error"
	case KindIO:
		return "I/O error"
	case KindPanic:
		return "command panicked"
	default:
		return "console error"
	}
}

// Error is the single error type commands and dispatch surface to the user.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.Err == nil:
		return e.Kind.String()
	case e.Message == "":
		return e.Err.Error()
	case e.Err == nil:
		return e.Message
	default:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels, so errors.Is(err, ErrUnknownCommand) works for
// any error of that kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Message != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

// Kind sentinels for errors.Is.
var (
	ErrUnknownCommand      = &Error{Kind: KindUnknownCommand}
	ErrUnknownAction       = &Error{Kind: KindUnknownAction}
	ErrMissingInput        = &Error{Kind: KindMissingInput}
	ErrUnresolvedParameter = &Error{Kind: KindUnresolvedParameter}
	ErrConversion          = &Error{Kind: KindConversion}
	ErrIO                  = &Error{Kind: KindIO}
	ErrPanic               = &Error{Kind: KindPanic}
)

// ErrExit is returned by commands to end the interactive loop.
var ErrExit = errors.New("exit requested")

// Errorf creates an Error of the given kind.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates an Error of the given kind around err.
func WrapError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of the first console Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}
