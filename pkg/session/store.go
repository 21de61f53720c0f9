// Package session provides the session-scoped key-value store backing the
// persisted view state: expanded rows, sort, active column groups, and
// horizontal scroll offset. The store is a stateless string façade with no
// knowledge of the table; serialization lives in viewstate.go.
//
// Writes are best-effort. A failed write never surfaces to the caller; the
// in-memory state stays authoritative for the rest of the session.
package session

// Store is the minimal key-value contract the view state needs. Get
// returns ok=false for missing keys; Set never reports failure.
type Store interface {
	Get(key string) (value string, ok bool)
	Set(key, value string)
}

// MemoryStore is an in-process Store. It backs tests and acts as the
// fallback when no session file can be created.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the stored value for key.
func (m *MemoryStore) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Set stores a value under key.
func (m *MemoryStore) Set(key, value string) {
	m.values[key] = value
}
