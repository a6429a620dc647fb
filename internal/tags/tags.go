// Package tags reads the metadata the player shows for a track: title,
// artists, cover art and duration. Several libraries are tried per format
// since none of them parses every file found in the wild.
package tags

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// File extensions recognised by the tags package.
const (
	ExtMP3  = ".mp3"
	ExtFLAC = ".flac"
	ExtOPUS = ".opus"
	ExtOGG  = ".ogg"
	ExtOGA  = ".oga"
	ExtM4A  = ".m4a"
	ExtMP4  = ".mp4"
	ExtWAV  = ".wav"
)

// id3Magic is the magic bytes for ID3v2 header detection.
const id3Magic = "ID3"

// variousArtists is the compilation placeholder dropped from artist lists.
const variousArtists = "Various Artists"

// Tag is the metadata of one audio file.
type Tag struct {
	Path        string
	Title       string // empty when the file has none
	Artist      string
	Artists     []string
	AlbumArtist string
	Album       string
	Genre       string
	TrackNumber int
	TotalTracks int
	DiscNumber  int
	TotalDiscs  int
	Date        string // YYYY-MM-DD or YYYY
}

// Year derives the year from the Date field.
// Returns 0 if Date is empty or cannot be parsed.
func (t *Tag) Year() int {
	if t.Date == "" {
		return 0
	}
	year := t.Date
	if len(year) > 4 {
		year = year[:4]
	}
	y, _ := strconv.Atoi(year)
	return y
}

// finish fills derived fields once a reader populated the raw ones.
func (t *Tag) finish() {
	t.Title = strings.TrimSpace(t.Title)
	t.Artist = strings.TrimSpace(t.Artist)
	if t.AlbumArtist == "" {
		t.AlbumArtist = t.Artist
	}
	if len(t.Artists) == 0 {
		t.Artists = SplitArtists(t.Artist)
	} else {
		t.Artists = filterArtists(t.Artists)
	}
}

// SplitArtists splits a combined artist credit on ";", "/" and ", ".
// "Various Artists" and blank entries are dropped.
func SplitArtists(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '/' })
	var out []string
	for _, p := range parts {
		out = append(out, strings.Split(p, ", ")...)
	}
	return filterArtists(out)
}

func filterArtists(in []string) []string {
	var out []string
	for _, a := range in {
		a = strings.TrimSpace(a)
		if a == "" || strings.EqualFold(a, variousArtists) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// AudioInfo contains audio stream properties (not tags).
type AudioInfo struct {
	Duration   time.Duration
	Format     string // MP3, FLAC, OPUS, VORBIS, AAC, ALAC, WAV
	SampleRate int
}

// IsMusicFile returns true if the path has a supported music file extension.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMP3, ExtFLAC, ExtOPUS, ExtOGG, ExtOGA, ExtM4A, ExtMP4, ExtWAV:
		return true
	}
	return false
}

// taglibTags wraps a taglib result map with helper methods.
type taglibTags map[string][]string

// get returns the first value for any of the given keys, or empty string if not found.
func (t taglibTags) get(keys ...string) string {
	for _, key := range keys {
		if values, ok := t[key]; ok && len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// all returns every value stored under key.
func (t taglibTags) all(key string) []string {
	return t[key]
}

// parseNumberPair parses a track/disc number that may be "N" or "N/M" format.
func (t taglibTags) parseNumberPair(key string) (num, total int) {
	return parseTrackNumber(t.get(key))
}

// parseTrackNumber parses a track number string like "5" or "5/10".
func parseTrackNumber(s string) (num, total int) {
	if s == "" {
		return 0, 0
	}
	parts := strings.SplitN(s, "/", 2)
	num, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	if len(parts) == 2 {
		total, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	return num, total
}
