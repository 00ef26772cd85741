package preferences

import (
	"errors"
	"sort"
	"sync"

	"github.com/giantswarm/shellkit/pkg/logging"
)

// Store owns every registered preference plus the values loaded for ids that
// have not been registered yet.
type Store struct {
	mu      sync.Mutex
	prefs   map[string]*Preference
	unknown map[string]string
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		prefs:   make(map[string]*Preference),
		unknown: make(map[string]string),
	}
}

// Register adds a preference for spec, or returns the existing one when the id is
// already registered. A value loaded earlier for the id is applied and forgotten.
func (s *Store) Register(spec Spec) *Preference {
	if err := spec.Validate(); err != nil {
		logging.Warn("Preferences", "registering invalid preference: %v", err)
	}

	s.mu.Lock()
	if p, ok := s.prefs[spec.ID]; ok {
		s.mu.Unlock()
		return p
	}
	p := newPreference(spec)
	s.prefs[spec.ID] = p
	pending, hasPending := s.unknown[spec.ID]
	delete(s.unknown, spec.ID)
	s.mu.Unlock()

	if hasPending {
		if err := p.Set(pending); err != nil {
			logging.Warn("Preferences", "ignoring loaded value: %v", err)
		} else {
			logging.Debug("Preferences", "applied deferred value %q to %s", pending, spec.ID)
		}
	}
	return p
}

// Get returns the preference for spec, registering it on first use.
func (s *Store) Get(spec Spec) *Preference {
	return s.Register(spec)
}

// Find looks a registered preference up by id.
func (s *Store) Find(id string) (*Preference, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.prefs[id]
	return p, ok
}

// List returns every registered preference ordered by id.
func (s *Store) List() []*Preference {
	s.mu.Lock()
	list := make([]*Preference, 0, len(s.prefs))
	for _, p := range s.prefs {
		list = append(list, p)
	}
	s.mu.Unlock()

	sort.Slice(list, func(i, j int) bool { return list[i].ID() < list[j].ID() })
	return list
}

// IDs returns the ids of every registered preference, sorted.
func (s *Store) IDs() []string {
	list := s.List()
	ids := make([]string, len(list))
	for i, p := range list {
		ids[i] = p.ID()
	}
	return ids
}

// Load applies raw values by id. Registered preferences are set immediately;
// values for unknown ids are kept until the id is registered. Conversion
// failures are collected and returned together after every value was tried.
func (s *Store) Load(values map[string]string) error {
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var errs []error
	for _, id := range ids {
		s.mu.Lock()
		p, ok := s.prefs[id]
		if !ok {
			s.unknown[id] = values[id]
		}
		s.mu.Unlock()

		if !ok {
			logging.Debug("Preferences", "deferring unknown preference %s", id)
			continue
		}
		if p.Input() == values[id] {
			continue
		}
		if err := p.Set(values[id]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Unknown returns a copy of the values loaded for ids that are not registered.
func (s *Store) Unknown() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.unknown))
	for k, v := range s.unknown {
		out[k] = v
	}
	return out
}
