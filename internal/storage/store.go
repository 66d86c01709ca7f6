// Package storage provides the synchronous key-value blob store that all
// persisted state lives in. Values are opaque byte blobs; callers own the
// serialization format.
package storage

// Store is a synchronous get/set-by-key blob store. There are no
// transactions and no migrations; a key either holds a blob or is absent.
type Store interface {
	// Get returns the blob stored under key. The second return reports
	// whether the key was present at all.
	Get(key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous blob.
	Set(key string, value []byte) error

	// Delete removes key entirely. Deleting an absent key is not an error.
	Delete(key string) error

	Close() error
}
