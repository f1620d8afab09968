package dataset

import "sync"

// ============================================================================
// STORE — explicit process-root cache of loaded Tables
// ============================================================================
// The data source is static for a session, so a path is read at most once.
// The Store is constructed in main and passed to whoever needs the Table;
// there is no package-level global. Cached Tables are immutable and safe
// for any number of concurrent readers.
// ============================================================================

// Store caches Tables by path.
type Store struct {
	mu     sync.Mutex
	tables map[string]*Table
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{tables: make(map[string]*Table)}
}

// Open returns the Table for path, loading the file on first use.
// Repeated calls with the same path return the same Table value.
func (s *Store) Open(path string, opts ...Option) (*Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.tables[path]; ok {
		return t, nil
	}
	t, err := Load(path, opts...)
	if err != nil {
		return nil, err
	}
	s.tables[path] = t
	return t, nil
}
