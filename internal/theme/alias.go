package theme

import (
	"sort"
	"strings"
	"sync"

	"github.com/giantswarm/shellkit/pkg/logging"
)

// MaxAliasDepth bounds how many references a lookup will follow before giving up.
const MaxAliasDepth = 32

// aliasMap is a string table whose values may refer to other keys of the same table.
type aliasMap struct {
	kind   string
	mu     sync.RWMutex
	values map[string]string
}

func newAliasMap(kind string, values map[string]string) aliasMap {
	m := aliasMap{kind: kind, values: make(map[string]string, len(values))}
	for k, v := range values {
		m.values[k] = v
	}
	return m
}

// Resolve returns the value name maps to, following references to other keys.
// Names that are not in the map are returned unchanged. When the chain loops
// back on itself or exceeds MaxAliasDepth the requested name is returned as is.
func (m *aliasMap) Resolve(name string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	current := name
	visited := map[string]bool{}
	for depth := 0; depth <= MaxAliasDepth; depth++ {
		value, ok := m.values[current]
		if !ok {
			return current
		}
		visited[current] = true
		if _, isKey := m.values[value]; !isKey {
			return value
		}
		if visited[value] {
			logging.Debug("Theme", "%s alias cycle at %q while resolving %q", m.kind, value, name)
			return name
		}
		current = value
	}

	logging.Debug("Theme", "%s alias chain for %q deeper than %d", m.kind, name, MaxAliasDepth)
	return name
}

// Lookup returns the raw value stored under name without chasing aliases.
func (m *aliasMap) Lookup(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[name]
	return v, ok
}

// Has reports whether name is a key of the map.
func (m *aliasMap) Has(name string) bool {
	_, ok := m.Lookup(name)
	return ok
}

// Put stores value under name, replacing any previous value.
func (m *aliasMap) Put(name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[strings.TrimSpace(name)] = value
}

// Merge copies every entry of values into the map.
func (m *aliasMap) Merge(values map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range values {
		m.values[k] = v
	}
}

// Names returns the sorted keys of the map.
func (m *aliasMap) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.values))
	for k := range m.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ColorMap maps color names to "RRGGBB" hex values, ANSI palette indexes or other color names.
type ColorMap struct{ aliasMap }

// IconMap maps icon names to glyphs or other icon names.
type IconMap struct{ aliasMap }

// StyleMap maps style names to style descriptors or other style names.
type StyleMap struct{ aliasMap }

// NewColorMap creates a ColorMap holding a copy of values.
func NewColorMap(values map[string]string) *ColorMap {
	return &ColorMap{newAliasMap("color", values)}
}

// NewIconMap creates an IconMap holding a copy of values.
func NewIconMap(values map[string]string) *IconMap {
	return &IconMap{newAliasMap("icon", values)}
}

// NewStyleMap creates a StyleMap holding a copy of values.
func NewStyleMap(values map[string]string) *StyleMap {
	return &StyleMap{newAliasMap("style", values)}
}
