package preferences

import (
	"fmt"
	"sync"

	"github.com/giantswarm/shellkit/pkg/logging"
)

// Listener receives the converted value of a preference after each change.
type Listener func(value any)

// Preference is the mutable cell bound to a Spec. Its value always equals the
// conversion of its raw input.
type Preference struct {
	spec Spec

	mu        sync.Mutex
	input     string
	value     any
	listeners []Listener
}

func newPreference(spec Spec) *Preference {
	p := &Preference{spec: spec, input: spec.Default, value: spec.Type.zero()}
	if v, err := spec.Type.Convert(spec.Default); err == nil {
		p.value = v
	} else {
		logging.Warn("Preferences", "default %q of %s does not convert to %s", spec.Default, spec.ID, spec.Type)
	}
	return p
}

// Spec returns the preference's descriptor.
func (p *Preference) Spec() Spec {
	return p.spec
}

// ID returns the preference id.
func (p *Preference) ID() string {
	return p.spec.ID
}

// Set converts input and stores it, then notifies listeners on the calling goroutine.
// On a conversion error the preference keeps its previous value.
func (p *Preference) Set(input string) error {
	value, err := p.spec.Type.Convert(input)
	if err != nil {
		return &ConversionError{ID: p.spec.ID, Input: input, Type: p.spec.Type, Err: err}
	}

	p.mu.Lock()
	p.input = input
	p.value = value
	listeners := append([]Listener(nil), p.listeners...)
	p.mu.Unlock()

	for _, l := range listeners {
		l(value)
	}
	return nil
}

// Reset restores the default value.
func (p *Preference) Reset() error {
	return p.Set(p.spec.Default)
}

// Listen calls fn with the current value, then registers it for future changes.
func (p *Preference) Listen(fn Listener) {
	p.mu.Lock()
	current := p.value
	p.listeners = append(p.listeners, fn)
	p.mu.Unlock()

	fn(current)
}

// Value returns the converted value.
func (p *Preference) Value() any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// Input returns the raw input the value was converted from.
func (p *Preference) Input() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.input
}

// Bool returns the value of a FLAG preference, false for other types.
func (p *Preference) Bool() bool {
	b, _ := p.Value().(bool)
	return b
}

// Int returns the value of a NUMBER preference, 0 for other types.
func (p *Preference) Int() int {
	n, _ := p.Value().(int)
	return n
}

// String returns the value of a TEXT preference, or the formatted value for other types.
func (p *Preference) String() string {
	switch v := p.Value().(type) {
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// IsDefault reports whether the raw input equals the spec default.
func (p *Preference) IsDefault() bool {
	return p.Input() == p.spec.Default
}
