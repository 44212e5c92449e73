package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGStore persists the document as a single JSONB row in Postgres. The table
// is constrained to one row; revision is a bigint bumped on every save.
type PGStore struct {
	DB *sql.DB
}

// Load reads the document row.
func (s *PGStore) Load(ctx context.Context) (Document, int64, error) {
	const query = `
SELECT document, revision
FROM portfolio_content
WHERE id = 1`

	var (
		raw      []byte
		revision int64
	)
	err := s.DB.QueryRowContext(ctx, query).Scan(&raw, &revision)
	if errors.Is(err, sql.ErrNoRows) {
		return Document{}, 0, ErrNotFound
	}
	if err != nil {
		return Document{}, 0, fmt.Errorf("%w: query document: %v", ErrStoreUnavailable, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, 0, fmt.Errorf("%w: decode document row: %v", ErrStoreUnavailable, err)
	}
	return doc, revision, nil
}

// Save upserts the document row. With an expected revision the update is
// conditional and a stale expectation fails with ErrConflict.
func (s *PGStore) Save(ctx context.Context, doc Document, expectedRevision int64) (int64, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("%w: encode document: %v", ErrPersistFailure, err)
	}

	if expectedRevision != AnyRevision {
		const query = `
UPDATE portfolio_content
SET document = $1,
    revision = revision + 1,
    updated_at = now()
WHERE id = 1 AND revision = $2
RETURNING revision`

		var revision int64
		err := s.DB.QueryRowContext(ctx, query, raw, expectedRevision).Scan(&revision)
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: expected revision %d", ErrConflict, expectedRevision)
		}
		if err != nil {
			return 0, fmt.Errorf("%w: update document: %v", ErrPersistFailure, err)
		}
		return revision, nil
	}

	const query = `
INSERT INTO portfolio_content (id, document, revision, updated_at)
VALUES (1, $1, 1, now())
ON CONFLICT (id) DO UPDATE
SET document = EXCLUDED.document,
    revision = portfolio_content.revision + 1,
    updated_at = now()
RETURNING revision`

	var revision int64
	if err := s.DB.QueryRowContext(ctx, query, raw).Scan(&revision); err != nil {
		return 0, fmt.Errorf("%w: upsert document: %v", ErrPersistFailure, err)
	}
	return revision, nil
}
