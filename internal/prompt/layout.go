package prompt

import (
	"fmt"
	"time"

	"github.com/giantswarm/shellkit/internal/lifecycle"
)

// Writer types accepted in a Layout.
const (
	TypeText     = "text"
	TypeStatus   = "status"
	TypeErrors   = "errors"
	TypeDuration = "duration"
	TypeTemplate = "template"
)

// DefaultDurationThreshold is used by duration writers that do not set one.
const DefaultDurationThreshold = 2 * time.Second

// WriterSpec describes one writer of a prompt layout as found in configuration.
type WriterSpec struct {
	Type      string `yaml:"type"`
	Text      string `yaml:"text,omitempty"`
	Icon      string `yaml:"icon,omitempty"`
	Template  string `yaml:"template,omitempty"`
	Threshold string `yaml:"threshold,omitempty"`
	Fg        string `yaml:"fg,omitempty"`
	Bg        string `yaml:"bg,omitempty"`
	ErrorBg   string `yaml:"error-bg,omitempty"`
}

// Layout lists the writers of each prompt side.
type Layout struct {
	Left  []WriterSpec `yaml:"left"`
	Right []WriterSpec `yaml:"right"`
}

// Build creates the writers described by layout.
func Build(layout Layout, bus *lifecycle.Bus) (left, right []Writer, err error) {
	left, err = buildSide("left", layout.Left, bus)
	if err != nil {
		return nil, nil, err
	}
	right, err = buildSide("right", layout.Right, bus)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func buildSide(side string, specs []WriterSpec, bus *lifecycle.Bus) ([]Writer, error) {
	writers := make([]Writer, 0, len(specs))
	for i, spec := range specs {
		w, err := buildWriter(fmt.Sprintf("%s-%d", side, i), spec, bus)
		if err != nil {
			return nil, fmt.Errorf("%s prompt writer %d: %w", side, i, err)
		}
		writers = append(writers, w)
	}
	return writers, nil
}

func buildWriter(name string, spec WriterSpec, bus *lifecycle.Bus) (Writer, error) {
	fg := orDefault(spec.Fg, "prompt-fg")

	switch spec.Type {
	case TypeText, "":
		return &TextWriter{Text: spec.Text, Icon: spec.Icon, Fg: fg, Bg: orDefault(spec.Bg, "prompt-bg")}, nil
	case TypeStatus:
		return &StatusWriter{
			Bus:     bus,
			Fg:      fg,
			OkBg:    orDefault(spec.Bg, "prompt-status-bg"),
			ErrorBg: orDefault(spec.ErrorBg, "prompt-error-bg"),
		}, nil
	case TypeErrors:
		return &ErrorCountWriter{Errors: bus.Errors(), Fg: fg, Bg: orDefault(spec.Bg, "warning")}, nil
	case TypeDuration:
		threshold := DefaultDurationThreshold
		if spec.Threshold != "" {
			d, err := time.ParseDuration(spec.Threshold)
			if err != nil {
				return nil, fmt.Errorf("invalid threshold %q: %w", spec.Threshold, err)
			}
			threshold = d
		}
		return &DurationWriter{Bus: bus, Threshold: threshold, Fg: fg, Bg: orDefault(spec.Bg, "prompt-timer-bg")}, nil
	case TypeTemplate:
		return NewTemplateWriter(name, spec.Template, DataSource(bus), fg, orDefault(spec.Bg, "prompt-bg"))
	}
	return nil, fmt.Errorf("unknown writer type %q", spec.Type)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
