package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("The cat sat."), 0644); err != nil {
		t.Fatal(err)
	}

	text, err := ReadText(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if text != "The cat sat." {
		t.Errorf("expected %q, got %q", "The cat sat.", text)
	}
}

func TestReadTextEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	text, err := ReadText(path)
	if err != nil {
		t.Fatalf("empty file should load, got %v", err)
	}

	if text != "" {
		t.Errorf("expected empty text, got %q", text)
	}
}

func TestReadTextNotFound(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
	}
}
