package playback

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/schedule"
)

// ToggleShuffle flips shuffle mode and returns the new setting.
func (s *serviceImpl) ToggleShuffle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sched, _ = s.sched.ToggleShuffle()
	s.emitModeLocked()
	s.emitQueueLocked()
	return s.sched.Shuffle()
}

// ToggleLoop cycles the loop mode and returns the new mode.
func (s *serviceImpl) ToggleLoop() schedule.LoopMode {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sched = s.sched.ToggleLoop()
	s.emitModeLocked()
	return s.sched.Loop()
}

// Enqueue appends the track with id to the user queue. Unknown ids are ignored.
func (s *serviceImpl) Enqueue(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.sched.Catalog().Get(id)
	if err != nil {
		s.log.Debug("enqueue unknown track", zap.String("id", id))
		return
	}
	s.sched = s.sched.Enqueue(t)
	s.emitQueueLocked()
}

// RemoveFromQueue removes an entry of UpcomingQueue.
func (s *serviceImpl) RemoveFromQueue(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.sched.Upcoming())
	s.sched = s.sched.RemoveAt(index)
	if len(s.sched.Upcoming()) != before {
		s.emitQueueLocked()
	}
}

// Reorder moves the track at position from to position to in the custom
// order and persists the whole order. A failing store leaves the new order
// in memory only.
func (s *serviceImpl) Reorder(ctx context.Context, from, to int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, ok := catalog.Move(s.order, from, to)
	if !ok {
		return nil
	}
	s.order = ids
	s.emitQueueLocked()

	if s.folder == "" {
		return nil
	}
	if err := s.store.SaveOrder(ctx, s.folder, ids); err != nil {
		s.emitError("save order", s.folder, err)
		return fmt.Errorf("save order: %w", err)
	}
	return nil
}
