package theme

import (
	"io"
	"regexp"
	"strings"

	"github.com/muesli/termenv"
)

var hexColor = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// Renderer turns styles into escape sequences for one output profile.
type Renderer struct {
	theme   *Theme
	profile termenv.Profile
}

// NewRenderer creates a Renderer drawing theme with the given color profile.
func NewRenderer(t *Theme, profile termenv.Profile) *Renderer {
	return &Renderer{theme: t, profile: profile}
}

// ProfileFor detects the color profile of w. Non-terminals and noColor get termenv.Ascii.
func ProfileFor(w io.Writer, noColor bool) termenv.Profile {
	if noColor {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

// Theme returns the theme the renderer draws.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Profile returns the renderer's color profile.
func (r *Renderer) Profile() termenv.Profile {
	return r.profile
}

// WithProfile returns a renderer sharing the theme but drawing for another profile.
func (r *Renderer) WithProfile(profile termenv.Profile) *Renderer {
	return &Renderer{theme: r.theme, profile: profile}
}

// Color resolves name through the color table into a termenv color.
// Unknown names yield nil, which leaves the attribute unset.
func (r *Renderer) Color(name string) termenv.Color {
	if name == "" {
		return nil
	}
	value := strings.TrimSpace(r.theme.Color(name))
	if hexColor.MatchString(value) {
		return r.profile.Color("#" + strings.TrimPrefix(value, "#"))
	}
	return r.profile.Color(value)
}

// Render draws text with style.
func (r *Renderer) Render(style Style, text string) string {
	if r.profile == termenv.Ascii || text == "" {
		return text
	}

	out := r.profile.String(text).
		Foreground(r.Color(style.Foreground)).
		Background(r.Color(style.Background))
	if style.Bold {
		out = out.Bold()
	}
	if style.Italic {
		out = out.Italic()
	}
	if style.Underline {
		out = out.Underline()
	}
	if style.Blink {
		out = out.Blink()
	}
	if style.CrossedOut {
		out = out.CrossOut()
	}
	return out.String()
}

// Sprint draws text with the named style, see Theme.WithStyle.
func (r *Renderer) Sprint(style, text string) string {
	return r.Render(r.theme.WithStyle(style), text)
}

// Icon resolves an icon name to its glyph.
func (r *Renderer) Icon(name string) string {
	return r.theme.Icon(name)
}
