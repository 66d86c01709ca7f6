package storage

// MemStore is a map-backed Store. It backs tests and the --ephemeral flag,
// where state should not outlive the process.
type MemStore struct {
	blobs map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

func (s *MemStore) Get(key string) ([]byte, bool, error) {
	value, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	// Copy so callers cannot mutate the stored blob.
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *MemStore) Set(key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	s.blobs[key] = stored
	return nil
}

func (s *MemStore) Delete(key string) error {
	delete(s.blobs, key)
	return nil
}

func (s *MemStore) Close() error {
	return nil
}
