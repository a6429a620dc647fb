package schedule

// LoopMode defines what happens when a track ends.
type LoopMode int

const (
	LoopNone     LoopMode = iota // stop after the last catalog track
	LoopTrack                    // restart the current track
	LoopPlaylist                 // continue and wrap around the catalog
)

// String returns the loop mode name.
func (m LoopMode) String() string {
	switch m {
	case LoopNone:
		return "none"
	case LoopTrack:
		return "track"
	case LoopPlaylist:
		return "playlist"
	default:
		return "unknown"
	}
}

// Next returns the following mode in the none → track → playlist cycle.
func (m LoopMode) Next() LoopMode {
	switch m {
	case LoopNone:
		return LoopTrack
	case LoopTrack:
		return LoopPlaylist
	default:
		return LoopNone
	}
}

// ParseLoopMode converts a mode name back to a LoopMode. Unknown names map to LoopNone.
func ParseLoopMode(s string) LoopMode {
	switch s {
	case "track":
		return LoopTrack
	case "playlist":
		return LoopPlaylist
	default:
		return LoopNone
	}
}
