package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving binary assets.
// Folder is a display grouping tag (e.g. "profile", "logos", "projects");
// the returned storage key is opaque to callers.
type ObjectStore interface {
	Save(ctx context.Context, folder string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
