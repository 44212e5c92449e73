package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "content.json")
	store := NewFileStore(path)

	doc := sampleDocument()
	revision, err := store.Save(context.Background(), doc, AnyRevision)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if revision != 1 {
		t.Fatalf("expected revision 1, got %d", revision)
	}

	loaded, loadedRev, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loadedRev != revision {
		t.Fatalf("expected revision %d, got %d", revision, loadedRev)
	}
	if !reflect.DeepEqual(loaded, doc) {
		t.Fatalf("round trip mismatch:\nsaved %+v\nloaded %+v", doc, loaded)
	}
}

func TestFileStoreLoadMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "content.json"))

	if _, _, err := store.Load(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}
	store := NewFileStore(path)

	if _, _, err := store.Load(context.Background()); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestFileStoreRevisionConflict(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "content.json"))

	revision, err := store.Save(context.Background(), sampleDocument(), AnyRevision)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := store.Save(context.Background(), sampleDocument(), revision+5); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if _, err := store.Save(context.Background(), sampleDocument(), revision); err != nil {
		t.Fatalf("save at current revision: %v", err)
	}
}

func TestFileStoreLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "content.json"))

	if _, err := store.Save(context.Background(), sampleDocument(), AnyRevision); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "content.json" {
		t.Fatalf("expected only content.json in %s, got %v", dir, entries)
	}
}

func TestFileStoreHonorsCancelledContext(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "content.json"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := store.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from load, got %v", err)
	}
	if _, err := store.Save(ctx, sampleDocument(), AnyRevision); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from save, got %v", err)
	}
}
