// Package library turns a folder of audio files into a track catalog.
package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrFileAccess is returned when a folder cannot be listed.
var ErrFileAccess = errors.New("file access")

// DefaultExtensions are the audio extensions recognised when none are configured.
var DefaultExtensions = []string{".mp3", ".wav", ".flac", ".ogg", ".m4a"}

// ScanFolder lists the audio files directly inside dir, sorted by name.
// Subdirectories are not descended into. Extensions match case-insensitively.
func ScanFolder(dir string, exts []string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileAccess, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !allowed[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		paths = append(paths, filepath.Join(abs, e.Name()))
	}
	slices.Sort(paths)
	return paths, nil
}
