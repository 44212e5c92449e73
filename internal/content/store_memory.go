package content

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store for tests and dev runs without a
// configured backing file or database. Documents are kept as encoded JSON so
// loads hand out independent copies.
type MemoryStore struct {
	mu       sync.Mutex
	raw      []byte
	revision int64
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load decodes the stored document.
func (s *MemoryStore) Load(ctx context.Context) (Document, int64, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.raw == nil {
		return Document{}, 0, ErrNotFound
	}
	var doc Document
	if err := json.Unmarshal(s.raw, &doc); err != nil {
		return Document{}, 0, fmt.Errorf("%w: decode stored document: %v", ErrStoreUnavailable, err)
	}
	return doc, s.revision, nil
}

// Save replaces the stored document.
func (s *MemoryStore) Save(ctx context.Context, doc Document, expectedRevision int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if expectedRevision != AnyRevision && expectedRevision != s.revision {
		return 0, fmt.Errorf("%w: expected %d, have %d", ErrConflict, expectedRevision, s.revision)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("%w: encode document: %v", ErrPersistFailure, err)
	}
	s.raw = raw
	s.revision++
	return s.revision, nil
}
