// Package catalog holds the in-memory track list of the active folder.
package catalog

import (
	"path/filepath"
	"strings"
	"time"
)

// AlbumArt is an embedded or folder cover image. The payload is opaque here.
type AlbumArt struct {
	Format string // MIME type, e.g. "image/jpeg"
	Data   []byte
}

// Track represents a single audio file of the catalog.
// Tracks are immutable once a scan produced them; a refresh creates new values.
type Track struct {
	ID       string // absolute file path, stable across scans
	Path     string // file path for playback
	Title    string
	Artists  []string
	AlbumArt *AlbumArt
	Duration time.Duration // 0 until known
}

// Artist returns the artists joined for display.
func (t Track) Artist() string {
	return strings.Join(t.Artists, ", ")
}

// DisplayTitle returns the title, falling back to the file name.
func (t Track) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return TitleFromPath(t.Path)
}

// TitleFromPath derives a title from a file name by dropping directory and extension.
func TitleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IDs returns the identities of the given tracks in order.
func IDs(tracks []Track) []string {
	ids := make([]string, len(tracks))
	for i, t := range tracks {
		ids[i] = t.ID
	}
	return ids
}
