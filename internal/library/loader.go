package library

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/tags"
)

const numWorkers = 8

// ScanProgress reports the progress of a folder load.
type ScanProgress struct {
	Phase   string // "scanning", "processing", "done"
	Current int
	Total   int
}

// Options configures Load.
type Options struct {
	Extensions []string
	Workers    int
	Logger     *zap.Logger

	// Progress, when set, receives updates without blocking the load.
	Progress chan<- ScanProgress

	// Metadata overrides the reader used for each file.
	Metadata func(path string) (catalog.Track, error)
}

// Load scans dir and reads the metadata of every audio file concurrently.
// A file whose metadata cannot be read keeps its filename as title; only a
// failing folder listing fails the load. Tracks keep scan order.
func Load(ctx context.Context, dir string, opts Options) (*catalog.Catalog, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	read := opts.Metadata
	if read == nil {
		read = ReadTrack
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = numWorkers
	}

	report(opts.Progress, ScanProgress{Phase: "scanning"})
	paths, err := ScanFolder(dir, opts.Extensions)
	if err != nil {
		return nil, err
	}

	total := len(paths)
	tracks := make([]catalog.Track, total)
	var processed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := read(path)
			if err != nil {
				log.Debug("read metadata", zap.String("path", path), zap.Error(err))
				t = catalog.Track{Title: catalog.TitleFromPath(path)}
			}
			t.ID = path
			t.Path = path
			if t.Title == "" {
				t.Title = catalog.TitleFromPath(path)
			}
			tracks[i] = t

			n := int(processed.Add(1))
			report(opts.Progress, ScanProgress{Phase: "processing", Current: n, Total: total})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report(opts.Progress, ScanProgress{Phase: "done", Current: total, Total: total})
	log.Info("folder loaded", zap.String("folder", dir), zap.Int("tracks", total))
	return catalog.New(tracks...), nil
}

func report(ch chan<- ScanProgress, p ScanProgress) {
	if ch == nil {
		return
	}
	select {
	case ch <- p:
	default:
	}
}

// ReadTrack reads title, artists, cover art and duration of one file.
// Missing cover art or duration is not an error.
func ReadTrack(path string) (catalog.Track, error) {
	tag, err := tags.Read(path)
	if err != nil {
		return catalog.Track{}, err
	}
	t := catalog.Track{
		Title:   tag.Title,
		Artists: tag.Artists,
	}
	if data, mime, err := tags.ExtractCoverArt(path); err == nil && len(data) > 0 {
		t.AlbumArt = &catalog.AlbumArt{Format: mime, Data: data}
	}
	if info, err := tags.ReadAudioInfo(path); err == nil {
		t.Duration = info.Duration
	}
	return t, nil
}
