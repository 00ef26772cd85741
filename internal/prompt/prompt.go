// Package prompt draws the segmented left and right console prompts.
//
// A prompt is a chain of colored segments. The first segment opens the chain
// with the theme's tail icon, following segments are joined by the separator
// icon and CloseSegments ends the chain with the head icon:
//
//	<tail> shellkit <separator> ~/src <head>
//
// Each Writer registered with a Renderer contributes at most one segment per
// draw.
package prompt

import (
	"strconv"
	"strings"

	"github.com/giantswarm/shellkit/internal/theme"
)

// Prompt accumulates the segments of one prompt side.
type Prompt struct {
	renderer *theme.Renderer
	buf      strings.Builder
	opened   bool
	lastBg   string
	lastFg   string
}

// New starts an empty prompt drawn by r.
func New(r *theme.Renderer) *Prompt {
	return &Prompt{renderer: r}
}

// Renderer returns the renderer the prompt draws with.
func (p *Prompt) Renderer() *theme.Renderer {
	return p.renderer
}

// IsOpened reports whether a segment chain is open.
func (p *Prompt) IsOpened() bool {
	return p.opened
}

// NewSegment opens a segment with the given foreground and background colors.
// The first segment is preceded by the tail icon in the background color, later
// ones by the separator icon going from the previous background to the new one.
func (p *Prompt) NewSegment(fg, bg string) *Segment {
	if !p.opened {
		p.draw(theme.Style{Foreground: bg}, p.renderer.Icon(theme.IconTail))
		p.opened = true
	} else {
		p.draw(theme.Style{Foreground: p.lastBg, Background: bg}, p.renderer.Icon(theme.IconSeparator))
	}
	p.lastFg, p.lastBg = fg, bg

	s := &Segment{prompt: p, fg: fg, bg: bg}
	return s.Space()
}

// CloseSegments ends an open chain with a space and the head icon.
func (p *Prompt) CloseSegments() {
	if !p.opened {
		return
	}
	p.draw(theme.Style{Foreground: p.lastFg, Background: p.lastBg}, " ")
	p.draw(theme.Style{Foreground: p.lastBg}, p.renderer.Icon(theme.IconHead))
	p.opened = false
}

// String returns everything drawn so far.
func (p *Prompt) String() string {
	return p.buf.String()
}

// Len reports whether anything has been drawn.
func (p *Prompt) Len() int {
	return p.buf.Len()
}

func (p *Prompt) draw(style theme.Style, text string) {
	p.buf.WriteString(p.renderer.Render(style, text))
}

// Segment appends content to the segment it was opened for.
type Segment struct {
	prompt *Prompt
	fg, bg string
}

// Text appends text in the segment colors.
func (s *Segment) Text(text string) *Segment {
	s.prompt.draw(theme.Style{Foreground: s.fg, Background: s.bg}, text)
	return s
}

// Styled appends text in a named or raw style. Colors the style leaves unset
// come from the segment.
func (s *Segment) Styled(style, text string) *Segment {
	st := s.prompt.renderer.Theme().WithStyle(style)
	if st.Foreground == "" {
		st.Foreground = s.fg
	}
	if st.Background == "" {
		st.Background = s.bg
	}
	s.prompt.draw(st, text)
	return s
}

// Icon appends a theme icon in the segment colors.
func (s *Segment) Icon(name string) *Segment {
	return s.Text(s.prompt.renderer.Icon(name))
}

// Number appends n in the segment colors.
func (s *Segment) Number(n int) *Segment {
	return s.Text(strconv.Itoa(n))
}

// Space appends a single space in the segment colors.
func (s *Segment) Space() *Segment {
	return s.Text(" ")
}
