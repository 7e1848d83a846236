package memory

import "sync"

// Roster is the externally managed, ordered list of roommate names. The
// ledger never mutates it; it only lazily initializes per-person state for
// any name it encounters.
type Roster struct {
	mu    sync.RWMutex
	names []string
	seen  map[string]struct{}
}

// NewRoster seeds a roster with the configured roommates, dropping
// duplicates while keeping first-seen order.
func NewRoster(names []string) *Roster {
	r := &Roster{seen: make(map[string]struct{}, len(names))}
	for _, name := range names {
		r.Add(name)
	}
	return r
}

// Add appends a name unless it is empty or already on the roster.
func (r *Roster) Add(name string) bool {
	if name == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.seen[name]; ok {
		return false
	}
	r.seen[name] = struct{}{}
	r.names = append(r.names, name)
	return true
}

// Contains reports whether a name is on the roster.
func (r *Roster) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.seen[name]
	return ok
}

// Names returns the roster in insertion order.
func (r *Roster) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
