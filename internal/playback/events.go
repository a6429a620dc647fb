package playback

import (
	"time"

	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/schedule"
)

// StateChange is emitted when the transport state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when the current track changes, whether or not
// the new track is playing yet.
type TrackChange struct {
	Previous *catalog.Track
	Current  *catalog.Track
}

// QueueChange is emitted when the user queue, the shuffle queue or the
// custom order change.
type QueueChange struct {
	Upcoming     []catalog.Track
	UserQueueLen int
	Order        []string
}

// ModeChange is emitted when loop or shuffle mode changes.
type ModeChange struct {
	Loop    schedule.LoopMode
	Shuffle bool
}

// PositionChange is emitted periodically while playing and after seeks.
type PositionChange struct {
	Position time.Duration
}

// DurationChange is emitted once the duration of a newly loaded track is known.
type DurationChange struct {
	Duration time.Duration
}

// VolumeChange is emitted when the volume level or mute state changes.
type VolumeChange struct {
	Level float64
	Muted bool
}

// ErrorEvent is emitted when the transport fails.
type ErrorEvent struct {
	Operation string // e.g. "play", "save order"
	Path      string // track path if applicable
	Err       error
}
