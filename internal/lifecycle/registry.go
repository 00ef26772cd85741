package lifecycle

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultRegistryCapacity is how many errors a registry keeps before dropping the oldest.
const DefaultRegistryCapacity = 100

// Record is one reported error.
type Record struct {
	ID     string
	Time   time.Time
	Err    error
	Viewed bool
}

// Registry keeps reported errors in arrival order, tracking which ones the user has looked at.
type Registry struct {
	mu       sync.Mutex
	records  []*Record
	capacity int
	now      func() time.Time
}

// NewRegistry creates a Registry holding at most DefaultRegistryCapacity errors.
func NewRegistry() *Registry {
	return &Registry{capacity: DefaultRegistryCapacity, now: time.Now}
}

// Add stores err and returns its record.
func (r *Registry) Add(err error) *Record {
	rec := &Record{ID: uuid.NewString(), Time: r.now(), Err: err}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, rec)
	if r.capacity > 0 && len(r.records) > r.capacity {
		r.records = r.records[len(r.records)-r.capacity:]
	}
	return rec
}

// Size returns the number of stored errors.
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Unviewed returns the number of errors not yet marked viewed.
func (r *Registry) Unviewed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rec := range r.records {
		if !rec.Viewed {
			n++
		}
	}
	return n
}

// MarkViewed marks every stored error as viewed.
func (r *Registry) MarkViewed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		rec.Viewed = true
	}
}

// List returns copies of the stored records, oldest first.
func (r *Registry) List() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	for i, rec := range r.records {
		out[i] = *rec
	}
	return out
}

// Get returns the record at the 1-based position n, marking it viewed.
func (r *Registry) Get(n int) (Record, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n < 1 || n > len(r.records) {
		return Record{}, false
	}
	rec := r.records[n-1]
	rec.Viewed = true
	return *rec, true
}

// Find returns the record with the given id, marking it viewed.
func (r *Registry) Find(id string) (Record, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID == id {
			rec.Viewed = true
			return *rec, true
		}
	}
	return Record{}, false
}

// Clear drops every stored error.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
}
