package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/giantswarm/shellkit/internal/lifecycle"
	"github.com/giantswarm/shellkit/internal/preferences"
	"github.com/giantswarm/shellkit/pkg/logging"
)

const (
	// DefaultDebounceInterval is how long the watcher waits after the last
	// change before reloading.
	DefaultDebounceInterval = 300 * time.Millisecond

	// DefaultWatchInterval is the polling interval used when fsnotify is unavailable.
	DefaultWatchInterval = 2 * time.Second
)

// WatcherConfig configures a Watcher.
type WatcherConfig struct {
	// Dir is the configuration directory.
	Dir string

	// Debounce defaults to DefaultDebounceInterval.
	Debounce time.Duration

	// WatchInterval defaults to DefaultWatchInterval.
	WatchInterval time.Duration

	// OnChange receives the reloaded preferences. It runs on the watcher's
	// goroutine.
	OnChange func(prefs map[string]string)
}

// Watcher re-reads preferences.yaml whenever it changes. It watches the
// directory rather than the file so editors that replace the file are seen.
type Watcher struct {
	mu sync.Mutex

	config    WatcherConfig
	fsWatcher *fsnotify.Watcher
	stopCh    chan struct{}
	done      sync.WaitGroup
	running   bool

	lastModTime time.Time

	debounceMu    sync.Mutex
	debounceTimer *time.Timer
}

// NewWatcher creates a stopped Watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Debounce <= 0 {
		config.Debounce = DefaultDebounceInterval
	}
	if config.WatchInterval <= 0 {
		config.WatchInterval = DefaultWatchInterval
	}
	return &Watcher{config: config}
}

func (w *Watcher) path() string {
	return filepath.Join(w.config.Dir, PreferencesFile)
}

// Start begins watching. A directory that cannot be watched falls back to polling.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}
	w.stopCh = make(chan struct{})
	w.running = true

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logging.Warn("ConfigWatcher", "fsnotify not available, falling back to polling: %v", err)
		w.goPoll()
		return nil
	}
	if err := watcher.Add(w.config.Dir); err != nil {
		logging.Warn("ConfigWatcher", "Failed to watch %s, falling back to polling: %v", w.config.Dir, err)
		_ = watcher.Close()
		w.goPoll()
		return nil
	}
	w.fsWatcher = watcher

	events, errs := watcher.Events, watcher.Errors
	w.done.Add(1)
	go func() {
		defer w.done.Done()
		w.processEvents(events, errs)
	}()

	logging.Info("ConfigWatcher", "Watching %s for preference changes", w.config.Dir)
	return nil
}

func (w *Watcher) goPoll() {
	w.done.Add(1)
	go func() {
		defer w.done.Done()
		w.poll()
	}()
}

func (w *Watcher) processEvents(events <-chan fsnotify.Event, errs <-chan error) {
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-errs:
			if !ok {
				return
			}
			logging.Error("ConfigWatcher", err, "fsnotify error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != PreferencesFile {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	logging.Debug("ConfigWatcher", "Preferences changed: %s", event.Op)
	w.reloadDebounced()
}

func (w *Watcher) reloadDebounced() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.config.Debounce, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	running := w.running
	w.mu.Unlock()
	if !running {
		return
	}

	prefs, err := LoadPreferences(w.path())
	if err != nil {
		logging.Warn("ConfigWatcher", "Ignoring invalid preferences: %v", err)
		return
	}
	if w.config.OnChange != nil {
		w.config.OnChange(prefs)
	}
}

func (w *Watcher) poll() {
	ticker := time.NewTicker(w.config.WatchInterval)
	defer ticker.Stop()

	w.lastModTime = w.modTime()
	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			if mod := w.modTime(); mod.After(w.lastModTime) {
				w.lastModTime = mod
				logging.Debug("ConfigWatcher", "Preferences change detected via polling")
				w.reloadDebounced()
			}
		}
	}
}

func (w *Watcher) modTime() time.Time {
	info, err := os.Stat(w.path())
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// Stop ends watching and waits for the watcher goroutine to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	close(w.stopCh)

	w.debounceMu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.debounceMu.Unlock()

	var err error
	if w.fsWatcher != nil {
		err = w.fsWatcher.Close()
		w.fsWatcher = nil
	}
	w.mu.Unlock()

	w.done.Wait()
	logging.Info("ConfigWatcher", "Stopped watching %s", w.config.Dir)
	return err
}

// IsRunning reports whether the watcher is active.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// ReloadQueue hands preference maps from the watcher goroutine to the
// console goroutine. Only the latest map is kept.
type ReloadQueue struct {
	mu      sync.Mutex
	pending map[string]string
}

// Push replaces the pending map.
func (q *ReloadQueue) Push(prefs map[string]string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = prefs
}

// Drain returns and clears the pending map, nil when there is none.
func (q *ReloadQueue) Drain() map[string]string {
	q.mu.Lock()
	defer q.mu.Unlock()
	p := q.pending
	q.pending = nil
	return p
}

// Attach applies queued maps to store before each prompt is drawn.
func (q *ReloadQueue) Attach(bus *lifecycle.Bus, store *preferences.Store) {
	bus.OnBeforeInput(func() {
		prefs := q.Drain()
		if prefs == nil {
			return
		}
		if err := store.Load(prefs); err != nil {
			logging.Warn("ConfigWatcher", "Some reloaded preferences were rejected: %v", err)
			return
		}
		logging.Info("ConfigWatcher", "Reloaded %d preferences", len(prefs))
	})
}
