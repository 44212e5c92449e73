package content

import (
	"context"
	"errors"

	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/telemetry"
)

// Service is the authoritative read/write boundary for the portfolio
// document: load-or-default on the way out, validation on the way in, and
// section-granular reconciliation for partial saves.
type Service struct {
	Store    Store
	Defaults func() Document
}

// NewService constructs a Service over the given store using the built-in
// default document as the fallback source.
func NewService(store Store) *Service {
	return &Service{Store: store, Defaults: DefaultDocument}
}

// Load returns the current authoritative document. An absent or incomplete
// stored document (any collection missing or zero-length) falls back to the
// built-in defaults, which are eagerly written back so future loads are
// complete. Only a genuinely unreachable or corrupt medium surfaces an
// error.
func (s *Service) Load(ctx context.Context) (Document, int64, error) {
	metrics.IncContentLoad()
	doc, revision, err := s.Store.Load(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		return s.loadDefaults(ctx)
	case err != nil:
		return Document{}, 0, err
	case !IsComplete(doc):
		return s.loadDefaults(ctx)
	}
	return doc, revision, nil
}

func (s *Service) loadDefaults(ctx context.Context) (Document, int64, error) {
	metrics.IncContentFallback()
	doc := s.Defaults()
	revision, err := s.Store.Save(ctx, doc, AnyRevision)
	if err != nil {
		// The defaults are still served; only the write-through failed.
		telemetry.Error("content.defaults_write_failed", map[string]any{
			"error": err.Error(),
		})
		return doc, 0, nil
	}
	return doc, revision, nil
}

// Save validates and persists a full document. expectedRevision of
// AnyRevision preserves last-write-wins; otherwise a stale revision fails
// with ErrConflict before anything is written.
func (s *Service) Save(ctx context.Context, doc Document, expectedRevision int64) (int64, error) {
	if err := ValidateShape(doc); err != nil {
		return 0, err
	}
	if err := ValidateSchema(doc); err != nil {
		return 0, err
	}

	started := metrics.NowMillis()
	revision, err := s.Store.Save(ctx, doc, expectedRevision)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			metrics.IncContentSaveConflict()
		}
		return 0, err
	}
	metrics.IncContentSave()
	metrics.ObserveSaveDurationMs(metrics.NowMillis() - started)
	return revision, nil
}

// SaveSection re-loads the authoritative document, splices the edited
// section into it, and persists the result. Concurrent saves to other
// sections since the caller's original load survive the merge.
func (s *Service) SaveSection(ctx context.Context, section Section, edited any, expectedRevision int64) (Document, int64, error) {
	fresh, _, err := s.Load(ctx)
	if err != nil {
		return Document{}, 0, err
	}
	merged, err := Reconcile(fresh, section, edited)
	if err != nil {
		return Document{}, 0, err
	}
	revision, err := s.Save(ctx, merged, expectedRevision)
	if err != nil {
		return Document{}, 0, err
	}
	return merged, revision, nil
}

// AddSectionEntry prepends a blank entry to the section and persists.
func (s *Service) AddSectionEntry(ctx context.Context, section Section) (Document, int64, error) {
	return s.mutate(ctx, func(doc Document) (Document, error) {
		return AddEntry(doc, section)
	})
}

// RemoveSectionEntry removes the entry at index and persists.
func (s *Service) RemoveSectionEntry(ctx context.Context, section Section, index int) (Document, int64, error) {
	return s.mutate(ctx, func(doc Document) (Document, error) {
		return RemoveEntry(doc, section, index)
	})
}

// UpdateSectionEntry shallow-merges partial onto the entry at index and
// persists.
func (s *Service) UpdateSectionEntry(ctx context.Context, section Section, index int, partial map[string]any) (Document, int64, error) {
	return s.mutate(ctx, func(doc Document) (Document, error) {
		return UpdateEntry(doc, section, index, partial)
	})
}

// PatchField applies a single field change and persists.
func (s *Service) PatchField(ctx context.Context, section Section, fieldPath string, value any, index int) (Document, int64, error) {
	return s.mutate(ctx, func(doc Document) (Document, error) {
		return ApplyFieldChange(doc, section, fieldPath, value, index)
	})
}

func (s *Service) mutate(ctx context.Context, apply func(Document) (Document, error)) (Document, int64, error) {
	doc, revision, err := s.Load(ctx)
	if err != nil {
		return Document{}, 0, err
	}
	updated, err := apply(doc)
	if err != nil {
		return Document{}, 0, err
	}
	// Save against the loaded revision: a concurrent writer between our load
	// and save surfaces as ErrConflict rather than being silently overwritten.
	// No retry happens here; that is the caller's call to make.
	newRevision, err := s.Save(ctx, updated, revision)
	if err != nil {
		return Document{}, 0, err
	}
	return updated, newRevision, nil
}
