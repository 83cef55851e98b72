package session

// MemoryStore is an in-memory Store for tests and the --ephemeral run mode.
// Nothing written to it survives the process.
type MemoryStore struct {
	values map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	delete(s.values, key)
	return nil
}
