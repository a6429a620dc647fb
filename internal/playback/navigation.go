package playback

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/order"
	"github.com/llehouerou/dhwani/internal/schedule"
)

// LoadFolder replaces the catalog with the tracks of a newly opened folder.
// The persisted custom order is reconciled with cat and its first track
// becomes current; the transport is stopped until Play.
func (s *serviceImpl) LoadFolder(ctx context.Context, folder string, cat *catalog.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prevState := s.State()
	prev := s.currentLocked()

	effective := order.Effective(ctx, s.store, folder, cat, s.log)
	s.folder = folder
	s.order = catalog.IDs(effective)
	var first catalog.Track
	if len(effective) > 0 {
		first = effective[0]
	}
	s.sched = s.sched.Load(cat, first)

	s.player.Stop()
	s.loaded = ""

	s.log.Debug("folder loaded", zap.String("folder", folder), zap.Int("tracks", cat.Len()))
	s.emitState(prevState)
	s.emitTrack(prev, s.currentLocked())
	s.emitQueueLocked()
	return nil
}

// Refresh swaps in a rescanned catalog of the current folder without
// interrupting playback.
func (s *serviceImpl) Refresh(ctx context.Context, cat *catalog.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.currentLocked()
	s.sched = s.sched.ReplaceCatalog(cat)
	s.order = catalog.IDs(order.Effective(ctx, s.store, s.folder, cat, s.log))

	s.emitTrack(prev, s.currentLocked())
	s.emitQueueLocked()
	return nil
}

// Select makes the track with id current and starts playing it.
// Unknown ids are ignored.
func (s *serviceImpl) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.sched.Catalog().Get(id)
	if err != nil {
		s.log.Debug("select unknown track", zap.String("id", id))
		return nil
	}
	next, out := s.sched.Select(t)
	return s.applyLocked(next, out, true)
}

// Next advances to the next scheduled track. Playback continues if it was playing.
func (s *serviceImpl) Next(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next, out := s.sched.Next()
	return s.applyLocked(next, out, s.State() == StatePlaying)
}

// Previous steps back, consulting the persisted custom order while shuffle is off.
// The lookup happens under the decision lock, so overlapping skips serialize.
func (s *serviceImpl) Previous(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var persisted []string
	if !s.sched.Shuffle() && s.folder != "" {
		ids, err := s.store.LoadOrder(ctx, s.folder)
		if err != nil {
			s.log.Warn("load track order", zap.String("folder", s.folder), zap.Error(err))
		}
		persisted = ids
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	next, out := s.sched.Previous(persisted)
	return s.applyLocked(next, out, s.State() == StatePlaying)
}

// handleTrackFinished runs the end-of-track transition.
func (s *serviceImpl) handleTrackFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded == "" {
		return
	}
	// The transport has run out; a resolved track equal to the finished one
	// must start over, not resume.
	s.loaded = ""
	next, out := s.sched.TrackEnded()
	if err := s.applyLocked(next, out, true); err != nil {
		s.log.Warn("advance after track end", zap.Error(err))
	}
}

// applyLocked commits a scheduler transition and drives the transport
// according to its outcome. With autoplay false a changed track is only made
// current and the transport stops until Play.
func (s *serviceImpl) applyLocked(next schedule.State, out schedule.Outcome, autoplay bool) error {
	prevState := s.State()
	prev := s.currentLocked()
	queueBefore := len(s.sched.Upcoming())

	s.sched = next
	var err error
	switch out.Action {
	case schedule.ActionPlay:
		err = s.loadLocked(out.Track, autoplay)
	case schedule.ActionRestart:
		err = s.startLocked(out.Track)
	case schedule.ActionStop:
		s.player.Stop()
		s.loaded = ""
	case schedule.ActionNone:
	}

	s.emitState(prevState)
	s.emitTrack(prev, s.currentLocked())
	if out.Action == schedule.ActionPlay || queueBefore != len(s.sched.Upcoming()) {
		s.emitQueueLocked()
	}
	return err
}

func (s *serviceImpl) loadLocked(t catalog.Track, autoplay bool) error {
	if t.ID == s.loaded && s.player.State().IsActive() {
		if autoplay {
			s.player.Resume()
		}
		return nil
	}
	if !autoplay {
		s.player.Stop()
		s.loaded = ""
		return nil
	}
	return s.startLocked(t)
}

// startLocked plays t from the beginning.
func (s *serviceImpl) startLocked(t catalog.Track) error {
	if err := s.player.Play(t.Path); err != nil {
		s.loaded = ""
		s.emitError("play", t.Path, err)
		return fmt.Errorf("play %s: %w", t.Path, err)
	}
	s.loaded = t.ID
	return nil
}
