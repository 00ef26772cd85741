package theme

import "strings"

// Style is a concrete set of text attributes. Colors are names or values that
// are resolved against a ColorMap at render time.
type Style struct {
	Foreground string
	Background string
	Bold       bool
	Italic     bool
	Underline  bool
	Blink      bool
	CrossedOut bool
}

// ParseStyle parses a "foreground/background/options" descriptor.
// Empty segments are skipped and unknown option letters are ignored.
func ParseStyle(descriptor string) Style {
	var s Style
	parts := strings.SplitN(strings.TrimSpace(descriptor), "/", 3)

	if len(parts) > 0 {
		s.Foreground = strings.TrimSpace(parts[0])
	}
	if len(parts) > 1 {
		s.Background = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		for _, opt := range parts[2] {
			switch opt {
			case 'b':
				s.Bold = true
			case 'i':
				s.Italic = true
			case 'u':
				s.Underline = true
			case 'k':
				s.Blink = true
			case 'c':
				s.CrossedOut = true
			}
		}
	}
	return s
}

// String formats the style back into descriptor form.
func (s Style) String() string {
	var opts strings.Builder
	for _, f := range []struct {
		set  bool
		flag byte
	}{{s.Bold, 'b'}, {s.Italic, 'i'}, {s.Underline, 'u'}, {s.Blink, 'k'}, {s.CrossedOut, 'c'}} {
		if f.set {
			opts.WriteByte(f.flag)
		}
	}

	out := s.Foreground + "/" + s.Background + "/" + opts.String()
	return strings.TrimRight(out, "/")
}

// IsZero reports whether the style sets no attribute at all.
func (s Style) IsZero() bool {
	return s == Style{}
}

// Fg returns a copy of s with the given foreground.
func (s Style) Fg(color string) Style {
	s.Foreground = color
	return s
}

// Bg returns a copy of s with the given background.
func (s Style) Bg(color string) Style {
	s.Background = color
	return s
}
