package player

// State is the transport state.
//
//	Stopped --Play--> Playing --Pause--> Paused --Resume--> Playing
//	Playing/Paused --Stop--> Stopped
//
// Toggle flips Playing and Paused and does nothing while Stopped.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is loaded (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
