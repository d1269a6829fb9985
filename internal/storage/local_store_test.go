package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStoreSaveAndRemove(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalStore(root)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	fileURL, err := store.Save(7, ".pdf", strings.NewReader("contract"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(fileURL, "/uploads/documents/7/") || !strings.HasSuffix(fileURL, ".pdf") {
		t.Fatalf("unexpected file url %q", fileURL)
	}

	target := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(fileURL, "/uploads/")))
	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(content) != "contract" {
		t.Fatalf("unexpected stored content %q", content)
	}

	if err := store.Remove(fileURL); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(target); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected file to be removed, got %v", err)
	}
	if err := store.Remove(fileURL); err != nil {
		t.Fatalf("expected removing a missing file to succeed, got %v", err)
	}
}

func TestLocalStoreGeneratesDistinctNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	first, err := store.Save(1, ".txt", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("save first: %v", err)
	}
	second, err := store.Save(1, ".txt", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("save second: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct file urls, got %q twice", first)
	}
}

func TestLocalStoreRejectsPathsOutsideRoot(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for _, fileURL := range []string{"/etc/passwd", "/uploads/../secret.txt", "/uploads/documents/../../x", "/uploads/"} {
		if err := store.Remove(fileURL); !errors.Is(err, ErrOutsideRoot) {
			t.Fatalf("expected ErrOutsideRoot for %q, got %v", fileURL, err)
		}
	}
}
