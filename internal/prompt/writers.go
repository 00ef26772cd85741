package prompt

import (
	"bytes"
	"fmt"
	"os"
	"os/user"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/giantswarm/shellkit/internal/lifecycle"
	"github.com/giantswarm/shellkit/pkg/logging"
)

// TextWriter draws a static label, optionally preceded by an icon.
type TextWriter struct {
	Text string
	Icon string
	Fg   string
	Bg   string
}

// WritePrompt implements Writer.
func (w *TextWriter) WritePrompt(p *Prompt) {
	if w.Text == "" && w.Icon == "" {
		return
	}
	s := p.NewSegment(w.Fg, w.Bg)
	if w.Icon != "" {
		s.Icon(w.Icon)
		if w.Text != "" {
			s.Space()
		}
	}
	s.Text(w.Text)
}

// StatusWriter shows whether the last command run succeeded.
type StatusWriter struct {
	Bus     *lifecycle.Bus
	Fg      string
	OkBg    string
	ErrorBg string
}

// WritePrompt implements Writer.
func (w *StatusWriter) WritePrompt(p *Prompt) {
	if !w.Bus.HasRun() {
		return
	}
	if w.Bus.LastFailed() {
		p.NewSegment(w.Fg, w.ErrorBg).Icon("fail")
		return
	}
	p.NewSegment(w.Fg, w.OkBg).Icon("ok")
}

// ErrorCountWriter shows how many reported errors have not been looked at.
type ErrorCountWriter struct {
	Errors *lifecycle.Registry
	Fg     string
	Bg     string
}

// WritePrompt implements Writer.
func (w *ErrorCountWriter) WritePrompt(p *Prompt) {
	n := w.Errors.Unviewed()
	if n == 0 {
		return
	}
	p.NewSegment(w.Fg, w.Bg).Icon("bell").Space().Number(n)
}

// DurationWriter shows how long the last command run took once it exceeds Threshold.
type DurationWriter struct {
	Bus       *lifecycle.Bus
	Threshold time.Duration
	Fg        string
	Bg        string
}

// WritePrompt implements Writer.
func (w *DurationWriter) WritePrompt(p *Prompt) {
	d := w.Bus.LastDuration()
	if d == 0 || d < w.Threshold {
		return
	}
	p.NewSegment(w.Fg, w.Bg).Icon("timer").Space().Text(FormatDuration(d))
}

// FormatDuration renders d compactly: 850ms, 2.4s, 3m05s.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		m := int(d / time.Minute)
		s := int((d % time.Minute) / time.Second)
		return fmt.Sprintf("%dm%02ds", m, s)
	}
}

// Data is what prompt templates are executed with.
type Data struct {
	Time         time.Time
	Cwd          string
	Home         string
	User         string
	Host         string
	Errors       int
	LastFailed   bool
	LastDuration time.Duration
}

// DataSource builds template data from the environment and the lifecycle bus.
func DataSource(bus *lifecycle.Bus) func() Data {
	return func() Data {
		d := Data{Time: time.Now()}
		d.Cwd, _ = os.Getwd()
		d.Home, _ = os.UserHomeDir()
		d.Host, _ = os.Hostname()
		if u, err := user.Current(); err == nil {
			d.User = u.Username
		}
		if bus != nil {
			d.Errors = bus.Errors().Unviewed()
			d.LastFailed = bus.LastFailed()
			d.LastDuration = bus.LastDuration()
		}
		return d
	}
}

// TemplateWriter draws the output of a text/template with the sprig function
// library. Templates that render only whitespace contribute no segment.
type TemplateWriter struct {
	tmpl *template.Template
	data func() Data
	Fg   string
	Bg   string
}

// NewTemplateWriter parses text. data is called on every draw.
func NewTemplateWriter(name, text string, data func() Data, fg, bg string) (*TemplateWriter, error) {
	funcs := sprig.TxtFuncMap()
	funcs["short"] = shortenPath

	tmpl, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template %s: %w", name, err)
	}
	return &TemplateWriter{tmpl: tmpl, data: data, Fg: fg, Bg: bg}, nil
}

// WritePrompt implements Writer.
func (w *TemplateWriter) WritePrompt(p *Prompt) {
	var buf bytes.Buffer
	if err := w.tmpl.Execute(&buf, w.data()); err != nil {
		logging.Warn("Prompt", "template %s failed: %v", w.tmpl.Name(), err)
		return
	}
	text := strings.TrimSpace(buf.String())
	if text == "" {
		return
	}
	p.NewSegment(w.Fg, w.Bg).Text(text)
}

// shortenPath replaces the home directory prefix of path with "~".
func shortenPath(home, path string) string {
	if home != "" && strings.HasPrefix(path, home) {
		return "~" + strings.TrimPrefix(path, home)
	}
	return path
}
