package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the document as a single JSON file. Writes go through a
// temp file in the same directory followed by a rename, so readers never see
// a half-written document. Revisions are tracked per process.
type FileStore struct {
	path string

	mu       sync.Mutex
	revision int64
}

// NewFileStore creates a file-backed store at path. The containing
// directory is created on first save if absent.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the persisted document.
func (s *FileStore) Load(ctx context.Context) (Document, int64, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Document{}, 0, ErrNotFound
	}
	if err != nil {
		return Document{}, 0, fmt.Errorf("%w: read %s: %v", ErrStoreUnavailable, s.path, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, 0, fmt.Errorf("%w: decode %s: %v", ErrStoreUnavailable, s.path, err)
	}

	if s.revision == 0 {
		s.revision = 1
	}
	return doc, s.revision, nil
}

// Save atomically replaces the persisted document.
func (s *FileStore) Save(ctx context.Context, doc Document, expectedRevision int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if expectedRevision != AnyRevision && expectedRevision != s.revision {
		return 0, fmt.Errorf("%w: expected %d, have %d", ErrConflict, expectedRevision, s.revision)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("%w: encode document: %v", ErrPersistFailure, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return 0, fmt.Errorf("%w: mkdir: %v", ErrPersistFailure, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return 0, fmt.Errorf("%w: write temp file: %v", ErrPersistFailure, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return 0, fmt.Errorf("%w: replace %s: %v", ErrPersistFailure, s.path, err)
	}

	s.revision++
	return s.revision, nil
}
