// Package lifecycle provides the notification bus the console uses to announce
// command execution and errors, and the registry that keeps reported errors
// around for inspection.
package lifecycle

import (
	"sync"
	"time"

	"github.com/giantswarm/shellkit/pkg/logging"
)

// CommandListener is notified when a command starts or finishes.
type CommandListener func()

// ErrorListener is notified when an error is reported.
type ErrorListener func(err error)

// Bus holds four independent listener lists. Listeners in a list run in
// registration order on the goroutine that fired the notification.
type Bus struct {
	mu            sync.Mutex
	beforeCommand []CommandListener
	afterCommand  []CommandListener
	beforeInput   []CommandListener
	onError       []ErrorListener

	errors *Registry

	started time.Time
	elapsed time.Duration
	failed  bool
}

// NewBus creates a Bus backed by the given error registry. A nil registry gets a fresh one.
func NewBus(errors *Registry) *Bus {
	if errors == nil {
		errors = NewRegistry()
	}
	return &Bus{errors: errors}
}

// Errors returns the registry errors are recorded in.
func (b *Bus) Errors() *Registry {
	return b.errors
}

// OnBeforeCommand registers fn to run before a command or batch starts.
func (b *Bus) OnBeforeCommand(fn CommandListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.beforeCommand = append(b.beforeCommand, fn)
}

// OnAfterCommand registers fn to run after a command or batch completes.
func (b *Bus) OnAfterCommand(fn CommandListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.afterCommand = append(b.afterCommand, fn)
}

// OnBeforeInput registers fn to run before the console waits for the next line.
func (b *Bus) OnBeforeInput(fn CommandListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.beforeInput = append(b.beforeInput, fn)
}

// OnError registers fn to run for every reported error.
func (b *Bus) OnError(fn ErrorListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onError = append(b.onError, fn)
}

// NotifyStart marks the start of a command run and fires the before-command listeners.
func (b *Bus) NotifyStart() {
	b.mu.Lock()
	b.started = time.Now()
	b.failed = false
	listeners := append([]CommandListener(nil), b.beforeCommand...)
	b.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// NotifyDone marks the end of a command run and fires the after-command listeners.
func (b *Bus) NotifyDone() {
	b.mu.Lock()
	if !b.started.IsZero() {
		b.elapsed = time.Since(b.started)
	}
	listeners := append([]CommandListener(nil), b.afterCommand...)
	b.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// NotifyReady fires the before-input listeners.
func (b *Bus) NotifyReady() {
	b.mu.Lock()
	listeners := append([]CommandListener(nil), b.beforeInput...)
	b.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// NotifyError records err in the registry and fires the error listeners.
func (b *Bus) NotifyError(err error) {
	if err == nil {
		return
	}
	b.errors.Add(err)
	logging.Debug("Lifecycle", "error reported: %v", err)

	b.mu.Lock()
	b.failed = true
	listeners := append([]ErrorListener(nil), b.onError...)
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(err)
	}
}

// LastDuration returns how long the last completed command run took.
func (b *Bus) LastDuration() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.elapsed
}

// HasRun reports whether any command run has started yet.
func (b *Bus) HasRun() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.started.IsZero()
}

// LastFailed reports whether an error was reported since the last NotifyStart.
func (b *Bus) LastFailed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failed
}
