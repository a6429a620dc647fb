package playback

import (
	"time"
)

// Play starts the current track, or resumes it when paused.
func (s *serviceImpl) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.State()
	defer s.emitState(prev)

	switch prev {
	case StatePlaying:
		return nil
	case StatePaused:
		s.player.Resume()
		return nil
	case StateStopped:
	}
	cur := s.currentLocked()
	if cur == nil {
		return nil
	}
	return s.startLocked(*cur)
}

// Pause pauses playback.
func (s *serviceImpl) Pause() {
	prev := s.State()
	s.player.Pause()
	s.emitState(prev)
}

// Toggle plays when stopped and flips play/pause otherwise.
func (s *serviceImpl) Toggle() error {
	if s.State() == StateStopped {
		return s.Play()
	}
	prev := s.State()
	s.player.Toggle()
	s.emitState(prev)
	return nil
}

// Stop stops the transport. The current track stays selected.
func (s *serviceImpl) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.State()
	s.player.Stop()
	s.loaded = ""
	s.emitState(prev)
}

// Seek moves the position by delta, clamped to the track bounds.
func (s *serviceImpl) Seek(delta time.Duration) {
	pos := s.player.Position() + delta
	if d := s.player.Duration(); d > 0 {
		pos = min(pos, d)
	}
	s.SeekTo(max(pos, 0))
}

// SeekTo moves playback to position.
func (s *serviceImpl) SeekTo(position time.Duration) {
	if !s.State().IsActive() {
		return
	}
	s.player.SeekTo(position)
	s.broadcast(func(sub *Subscription) {
		sub.sendPosition(PositionChange{Position: position})
	})
}

// SetVolume sets the volume level in [0, 1].
func (s *serviceImpl) SetVolume(level float64) {
	s.player.SetVolume(level)
	s.emitVolume()
}

// SetMuted mutes or unmutes output.
func (s *serviceImpl) SetMuted(muted bool) {
	s.player.SetMuted(muted)
	s.emitVolume()
}

// ToggleMute flips the mute state and returns the new state.
func (s *serviceImpl) ToggleMute() bool {
	muted := !s.player.Muted()
	s.SetMuted(muted)
	return muted
}

func (s *serviceImpl) emitVolume() {
	e := VolumeChange{Level: s.player.Volume(), Muted: s.player.Muted()}
	s.broadcast(func(sub *Subscription) { sub.sendVolume(e) })
}
