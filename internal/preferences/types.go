package preferences

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Type describes how a preference's raw input is converted into its value.
type Type int

const (
	// Flag preferences hold a bool.
	Flag Type = iota
	// Text preferences hold a string.
	Text
	// Number preferences hold an int.
	Number
)

// String returns the upper-case type name.
func (t Type) String() string {
	switch t {
	case Flag:
		return "FLAG"
	case Text:
		return "TEXT"
	case Number:
		return "NUMBER"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType parses a type name as printed by Type.String, case-insensitively.
func ParseType(s string) (Type, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FLAG", "BOOL":
		return Flag, nil
	case "TEXT", "STRING":
		return Text, nil
	case "NUMBER", "INT":
		return Number, nil
	}
	return Text, fmt.Errorf("unknown preference type %q", s)
}

// Convert turns raw input into a typed value.
func (t Type) Convert(input string) (any, error) {
	switch t {
	case Flag:
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "on", "yes", "y":
			return true, nil
		case "off", "no", "n":
			return false, nil
		}
		return strconv.ParseBool(strings.TrimSpace(input))
	case Number:
		return strconv.Atoi(strings.TrimSpace(input))
	case Text:
		return input, nil
	}
	return nil, fmt.Errorf("unsupported preference type %s", t)
}

// zero returns the value a preference of type t holds when nothing converts.
func (t Type) zero() any {
	switch t {
	case Flag:
		return false
	case Number:
		return 0
	default:
		return ""
	}
}

// Spec is the immutable description of a preference.
type Spec struct {
	ID          string
	Description string
	Type        Type
	Default     string
}

// Validate checks that the id is set and the default converts.
func (s Spec) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("preference id must not be empty")
	}
	if _, err := s.Type.Convert(s.Default); err != nil {
		return &ConversionError{ID: s.ID, Input: s.Default, Type: s.Type, Err: err}
	}
	return nil
}

// ConversionError reports raw input that does not convert to the preference's type.
type ConversionError struct {
	ID    string
	Input string
	Type  Type
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("preference %s: %q is not a valid %s value", e.ID, e.Input, e.Type)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// IDFromName converts a camelCase name into a kebab-case preference id,
// for example resultsPerPage becomes results-per-page.
func IDFromName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
