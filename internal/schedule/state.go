// Package schedule implements track scheduling as pure state transitions.
//
// A State is a value: every transition returns a new State together with an
// Outcome telling the transport what to do. Nothing here performs I/O, so the
// whole scheduler is testable without audio output or persistence.
package schedule

import (
	"math/rand/v2"
	"slices"

	"github.com/llehouerou/dhwani/internal/catalog"
)

// Shuffler permutes tracks in place.
type Shuffler func([]catalog.Track)

// RandomShuffler returns a uniform Fisher-Yates shuffler backed by math/rand/v2.
func RandomShuffler() Shuffler {
	return func(tracks []catalog.Track) {
		rand.Shuffle(len(tracks), func(i, j int) {
			tracks[i], tracks[j] = tracks[j], tracks[i]
		})
	}
}

// Action tells the transport how to react to a transition.
type Action int

const (
	ActionNone    Action = iota // nothing changes for the transport
	ActionPlay                  // load Outcome.Track
	ActionRestart               // seek the current track to 0 and keep playing
	ActionStop                  // playback reached the end
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionPlay:
		return "play"
	case ActionRestart:
		return "restart"
	case ActionStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Outcome is the result of a transition.
type Outcome struct {
	Action Action
	Track  catalog.Track
}

func none() Outcome { return Outcome{Action: ActionNone} }

func play(t catalog.Track) Outcome { return Outcome{Action: ActionPlay, Track: t} }

// State is the complete scheduler state.
type State struct {
	catalog    *catalog.Catalog
	current    catalog.Track
	hasCurrent bool
	userQueue  []catalog.Track
	mode       Mode
	loop       LoopMode
	shuffle    Shuffler
}

// New creates an empty sequential state. A nil shuffler uses RandomShuffler.
func New(shuffle Shuffler) State {
	if shuffle == nil {
		shuffle = RandomShuffler()
	}
	return State{
		catalog: catalog.New(),
		mode:    Sequential{},
		shuffle: shuffle,
	}
}

// Catalog returns the catalog being scheduled.
func (s State) Catalog() *catalog.Catalog { return s.catalog }

// Current returns the current track.
func (s State) Current() (catalog.Track, bool) { return s.current, s.hasCurrent }

// Loop returns the loop mode.
func (s State) Loop() LoopMode { return s.loop }

// Mode returns the scheduling mode.
func (s State) Mode() Mode { return s.mode }

// Shuffle reports whether shuffle mode is active.
func (s State) Shuffle() bool {
	_, ok := s.mode.(Shuffled)
	return ok
}

// UserQueue returns a copy of the user queue.
func (s State) UserQueue() []catalog.Track {
	return slices.Clone(s.userQueue)
}

// ShuffleQueue returns a copy of the shuffle queue; empty when shuffle is off.
func (s State) ShuffleQueue() []catalog.Track {
	if sh, ok := s.mode.(Shuffled); ok {
		return slices.Clone(sh.Queue)
	}
	return nil
}

// Upcoming returns the user queue followed by the shuffle queue.
// Indexes into this list are the ones RemoveAt accepts.
func (s State) Upcoming() []catalog.Track {
	return append(s.UserQueue(), s.ShuffleQueue()...)
}

// History returns the play history. While shuffle is off this is the
// retained history of the last shuffle session.
func (s State) History() History {
	switch m := s.mode.(type) {
	case Shuffled:
		return m.History
	case Sequential:
		return m.Retained
	}
	return History{}
}

// Load replaces the catalog for a newly opened folder and makes first current.
// Queues are emptied; an active shuffle session restarts from first.
func (s State) Load(cat *catalog.Catalog, first catalog.Track) State {
	s.catalog = cat
	s.userQueue = nil
	s.current, s.hasCurrent = catalog.Track{}, false

	if t, err := cat.Get(first.ID); err == nil {
		s.current, s.hasCurrent = t, true
	} else if t, ok := cat.At(0); ok {
		s.current, s.hasCurrent = t, true
	}

	if s.Shuffle() {
		s.mode = Sequential{}
		if s.hasCurrent {
			s, _ = s.ToggleShuffle()
		}
	} else {
		s.mode = Sequential{}
	}
	return s
}

// ReplaceCatalog swaps in a refreshed catalog of the same folder.
// Queued and historic tracks that disappeared are dropped; the survivors are
// replaced by their refreshed instances. The current track is kept even if it
// vanished, since it may still be playing.
func (s State) ReplaceCatalog(cat *catalog.Catalog) State {
	s.catalog = cat
	refresh := func(t catalog.Track) (catalog.Track, bool) {
		nt, err := cat.Get(t.ID)
		return nt, err == nil
	}

	if s.hasCurrent {
		if t, ok := refresh(s.current); ok {
			s.current = t
		}
	} else if t, ok := cat.At(0); ok {
		s.current, s.hasCurrent = t, true
	}
	if cat.IsEmpty() {
		s.current, s.hasCurrent = catalog.Track{}, false
	}

	s.userQueue = retainTracks(s.userQueue, refresh)

	switch m := s.mode.(type) {
	case Shuffled:
		m.Queue = retainTracks(m.Queue, refresh)
		m.History = m.History.retain(refresh)
		if m.History.Len() == 0 && s.hasCurrent && cat.Contains(s.current.ID) {
			m.History = NewHistory(s.current)
		}
		if !s.hasCurrent {
			s.mode = Sequential{Retained: m.History}
			break
		}
		s.mode = m
	case Sequential:
		m.Retained = m.Retained.retain(refresh)
		s.mode = m
	}
	return s
}

func retainTracks(tracks []catalog.Track, keep func(catalog.Track) (catalog.Track, bool)) []catalog.Track {
	var result []catalog.Track
	for _, t := range tracks {
		if nt, ok := keep(t); ok {
			result = append(result, nt)
		}
	}
	return result
}
