package library

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/dhwani/internal/catalog"
)

func fakeMetadata(path string) (catalog.Track, error) {
	name := filepath.Base(path)
	if strings.HasPrefix(name, "broken") {
		return catalog.Track{}, errors.New("bad tag")
	}
	return catalog.Track{
		Title:    "Title of " + name,
		Artists:  []string{"Artist"},
		Duration: time.Minute,
	}, nil
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "03.mp3", "01.mp3", "broken.flac", "02.ogg", "readme.md")

	progress := make(chan ScanProgress, 32)
	cat, err := Load(context.Background(), dir, Options{
		Metadata: fakeMetadata,
		Workers:  2,
		Progress: progress,
	})
	require.NoError(t, err)
	require.Equal(t, 4, cat.Len())

	var names []string
	for _, tr := range cat.Tracks() {
		assert.Equal(t, tr.ID, tr.Path)
		names = append(names, filepath.Base(tr.Path))
	}
	assert.Equal(t, []string{"01.mp3", "02.ogg", "03.mp3", "broken.flac"}, names)

	first, _ := cat.At(0)
	assert.Equal(t, "Title of 01.mp3", first.Title)
	assert.Equal(t, "Artist", first.Artist())

	broken, _ := cat.At(3)
	assert.Equal(t, "broken", broken.Title)
	assert.Empty(t, broken.Artists)

	close(progress)
	var last ScanProgress
	for p := range progress {
		last = p
	}
	assert.Equal(t, ScanProgress{Phase: "done", Current: 4, Total: 4}, last)
}

func TestLoad_EmptyTitleUsesFilename(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "untitled.mp3")

	cat, err := Load(context.Background(), dir, Options{
		Metadata: func(string) (catalog.Track, error) { return catalog.Track{}, nil },
	})
	require.NoError(t, err)
	tr, ok := cat.At(0)
	require.True(t, ok)
	assert.Equal(t, "untitled", tr.Title)
}

func TestLoad_MissingFolder(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope"), Options{})
	assert.ErrorIs(t, err, ErrFileAccess)
}

func TestLoad_Canceled(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.mp3", "b.mp3")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Load(ctx, dir, Options{Metadata: fakeMetadata})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReadTrack_UnreadableFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "empty.mp3")

	cat, err := Load(context.Background(), dir, Options{})
	require.NoError(t, err)
	tr, _ := cat.At(0)
	assert.Equal(t, "empty", tr.Title)
}
