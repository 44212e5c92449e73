package content

import "context"

// AnyRevision disables the optimistic revision check on Save.
const AnyRevision int64 = -1

// Store is the raw persistence medium for the portfolio document. It reads
// and writes whole documents only; fallback-to-defaults and validation live
// in the Service.
type Store interface {
	// Load returns the persisted document and its revision, or ErrNotFound
	// when the medium holds no document yet.
	Load(ctx context.Context) (Document, int64, error)
	// Save atomically replaces the persisted document and returns the new
	// revision. When expectedRevision is not AnyRevision the save fails
	// with ErrConflict unless the stored revision matches.
	Save(ctx context.Context, doc Document, expectedRevision int64) (int64, error)
}
