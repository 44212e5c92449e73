package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newPGStoreWithMock(t *testing.T) (*PGStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGStore{DB: db}, mock
}

func TestPGStoreLoadDecodesDocumentRow(t *testing.T) {
	store, mock := newPGStoreWithMock(t)

	doc := sampleDocument()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("encode document: %v", err)
	}

	mock.ExpectQuery("SELECT document, revision").
		WillReturnRows(sqlmock.NewRows([]string{"document", "revision"}).AddRow(raw, int64(7)))

	loaded, revision, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if revision != 7 {
		t.Fatalf("expected revision 7, got %d", revision)
	}
	if loaded.PersonalInfo == nil || loaded.PersonalInfo.Name != "Ada Lovelace" {
		t.Fatalf("expected decoded document, got %+v", loaded.PersonalInfo)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGStoreLoadMissingRow(t *testing.T) {
	store, mock := newPGStoreWithMock(t)

	mock.ExpectQuery("SELECT document, revision").
		WillReturnRows(sqlmock.NewRows([]string{"document", "revision"}))

	if _, _, err := store.Load(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGStoreSaveUpserts(t *testing.T) {
	store, mock := newPGStoreWithMock(t)

	mock.ExpectQuery("INSERT INTO portfolio_content").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"revision"}).AddRow(int64(3)))

	revision, err := store.Save(context.Background(), sampleDocument(), AnyRevision)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if revision != 3 {
		t.Fatalf("expected revision 3, got %d", revision)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGStoreSaveConditionalUpdate(t *testing.T) {
	store, mock := newPGStoreWithMock(t)

	mock.ExpectQuery("UPDATE portfolio_content").
		WithArgs(sqlmock.AnyArg(), int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"revision"}).AddRow(int64(5)))

	revision, err := store.Save(context.Background(), sampleDocument(), 4)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if revision != 5 {
		t.Fatalf("expected revision 5, got %d", revision)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGStoreSaveStaleRevisionConflicts(t *testing.T) {
	store, mock := newPGStoreWithMock(t)

	mock.ExpectQuery("UPDATE portfolio_content").
		WithArgs(sqlmock.AnyArg(), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"revision"}))

	if _, err := store.Save(context.Background(), sampleDocument(), 2); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
