package library

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanFolder(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.mp3", "a.FLAC", "notes.txt", "c.ogg", "d.wav", "e.m4a", "cover.jpg")
	if err := os.Mkdir(filepath.Join(dir, "sub.mp3"), 0o700); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "sub.mp3"), "nested.mp3")

	got, err := ScanFolder(dir, nil)
	if err != nil {
		t.Fatalf("ScanFolder() error = %v", err)
	}
	var names []string
	for _, p := range got {
		if !filepath.IsAbs(p) {
			t.Errorf("path %q is not absolute", p)
		}
		names = append(names, filepath.Base(p))
	}
	want := []string{"a.FLAC", "b.mp3", "c.ogg", "d.wav", "e.m4a"}
	if !slices.Equal(names, want) {
		t.Errorf("ScanFolder() = %v, want %v", names, want)
	}
}

func TestScanFolder_CustomExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.mp3", "b.opus", "c.flac")

	got, err := ScanFolder(dir, []string{"OPUS", ".flac"})
	if err != nil {
		t.Fatalf("ScanFolder() error = %v", err)
	}
	if len(got) != 2 || filepath.Base(got[0]) != "b.opus" || filepath.Base(got[1]) != "c.flac" {
		t.Errorf("ScanFolder() = %v, want [b.opus c.flac]", got)
	}
}

func TestScanFolder_Empty(t *testing.T) {
	got, err := ScanFolder(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("ScanFolder() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ScanFolder() = %v, want empty", got)
	}
}

func TestScanFolder_Missing(t *testing.T) {
	_, err := ScanFolder(filepath.Join(t.TempDir(), "gone"), nil)
	if !errors.Is(err, ErrFileAccess) {
		t.Errorf("ScanFolder() error = %v, want ErrFileAccess", err)
	}
}
