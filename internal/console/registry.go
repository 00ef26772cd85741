package console

import (
	"sort"
	"strings"
	"sync"
)

// Registry stores commands by name and alias.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Command
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Command)}
}

// Register stores cmd under its name and every alias. A key already used by
// another command is taken over by cmd.
func (r *Registry) Register(cmd Command) {
	meta := cmd.Meta()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[meta.Name] = cmd
	for _, alias := range meta.Aliases {
		r.entries[alias] = cmd
	}
}

// Get retrieves a command by name or alias. Lookups are case-insensitive when
// the exact key is not registered.
func (r *Registry) Get(key string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cmd, ok := r.entries[key]; ok {
		return cmd, true
	}
	cmd, ok := r.entries[strings.ToLower(key)]
	return cmd, ok
}

// Names returns every registered key, names and aliases, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for k := range r.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Commands returns the reachable commands once each, ordered by name.
func (r *Registry) Commands() []Command {
	r.mu.RLock()
	byName := make(map[string]Command)
	for _, cmd := range r.entries {
		byName[cmd.Meta().Name] = cmd
	}
	r.mu.RUnlock()

	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)

	cmds := make([]Command, len(names))
	for i, n := range names {
		cmds[i] = byName[n]
	}
	return cmds
}
