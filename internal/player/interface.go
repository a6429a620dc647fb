package player

import "time"

// Interface is the transport contract the playback service drives.
type Interface interface {
	Play(path string) error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	Position() time.Duration
	Duration() time.Duration
	SeekTo(pos time.Duration)
	SetVolume(level float64)
	Volume() float64
	SetMuted(muted bool)
	Muted() bool
	// FinishedChan receives once each time the loaded track plays to its end.
	FinishedChan() <-chan struct{}
	// Tap exposes the output samples for analysis.
	Tap() *Tap
}

var _ Interface = (*Player)(nil)
