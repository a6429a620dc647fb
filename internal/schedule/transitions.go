package schedule

import (
	"slices"

	"github.com/llehouerou/dhwani/internal/catalog"
)

// Select makes t the current track. In shuffle mode t is also pushed onto
// the history. Tracks absent from the catalog are ignored.
func (s State) Select(t catalog.Track) (State, Outcome) {
	track, err := s.catalog.Get(t.ID)
	if err != nil {
		return s, none()
	}
	s.current, s.hasCurrent = track, true
	if sh, ok := s.mode.(Shuffled); ok {
		sh.History = sh.History.Push(track)
		s.mode = sh
	}
	return s, play(track)
}

// Next resolves the next track: the head of the user queue first, then the
// head of the shuffle queue, then the catalog successor of the current track.
// In shuffle mode the shuffle queue is replenished afterwards and the track
// is pushed onto the history.
func (s State) Next() (State, Outcome) {
	if s.catalog.IsEmpty() {
		return s, none()
	}

	var next catalog.Track
	sh, shuffled := s.mode.(Shuffled)
	switch {
	case len(s.userQueue) > 0:
		next = s.userQueue[0]
		s.userQueue = slices.Clone(s.userQueue[1:])
	case shuffled && len(sh.Queue) > 0:
		next = sh.Queue[0]
		sh.Queue = slices.Clone(sh.Queue[1:])
	default:
		var ok bool
		next, ok = s.catalog.Successor(s.current.ID)
		if !ok {
			return s, none()
		}
	}

	s.current, s.hasCurrent = next, true
	if shuffled {
		sh.Queue = s.replenish(sh.Queue, next)
		sh.History = sh.History.Push(next)
		s.mode = sh
	}
	return s, play(next)
}

// replenish appends a fresh permutation of the catalog to queue when it runs
// low and the user queue is empty. The just-resolved track and tracks waiting
// in the user queue are left out.
func (s State) replenish(queue []catalog.Track, resolved catalog.Track) []catalog.Track {
	if len(queue) >= 2 || len(s.userQueue) > 0 {
		return queue
	}
	queued := make(map[string]bool, len(s.userQueue))
	for _, t := range s.userQueue {
		queued[t.ID] = true
	}
	var candidates []catalog.Track
	for _, t := range s.catalog.Tracks() {
		if t.ID != resolved.ID && !queued[t.ID] {
			candidates = append(candidates, t)
		}
	}
	s.shuffle(candidates)
	return append(slices.Clone(queue), candidates...)
}

// Previous steps back. In shuffle mode it replays the history, clamped at
// the oldest entry. Otherwise it takes the predecessor of the current track in
// order (the persisted custom order) with wraparound, falling back to catalog
// order when order is empty or does not contain the current track.
func (s State) Previous(order []string) (State, Outcome) {
	if s.catalog.IsEmpty() {
		return s, none()
	}

	if sh, ok := s.mode.(Shuffled); ok && sh.History.Len() > 0 {
		h, t, _ := sh.History.Back()
		sh.History = h
		s.mode = sh
		s.current, s.hasCurrent = t, true
		return s, play(t)
	}

	if !s.hasCurrent {
		return s, none()
	}
	prev, ok := s.predecessorInOrder(order)
	if !ok {
		prev, ok = s.catalog.Predecessor(s.current.ID)
		if !ok {
			return s, none()
		}
	}
	s.current = prev
	return s, play(prev)
}

func (s State) predecessorInOrder(order []string) (catalog.Track, bool) {
	live := make([]string, 0, len(order))
	for _, id := range order {
		if s.catalog.Contains(id) && !slices.Contains(live, id) {
			live = append(live, id)
		}
	}
	i := slices.Index(live, s.current.ID)
	if i < 0 {
		return catalog.Track{}, false
	}
	t, err := s.catalog.Get(live[(i-1+len(live))%len(live)])
	return t, err == nil
}

// ToggleShuffle flips shuffle mode. Turning it on fills the shuffle queue
// with the catalog tracks after the current one, randomly permuted, and resets
// the history to the current track. Turning it off drops the shuffle queue
// and retains the history without consulting it.
func (s State) ToggleShuffle() (State, Outcome) {
	switch m := s.mode.(type) {
	case Shuffled:
		s.mode = Sequential{Retained: m.History}
	default:
		if s.catalog.IsEmpty() || !s.hasCurrent {
			return s, none()
		}
		var remaining []catalog.Track
		if i := s.catalog.IndexOf(s.current.ID); i >= 0 {
			for _, t := range s.catalog.Tracks()[i+1:] {
				if t.ID != s.current.ID {
					remaining = append(remaining, t)
				}
			}
		}
		s.shuffle(remaining)
		s.mode = Shuffled{History: NewHistory(s.current), Queue: remaining}
	}
	return s, none()
}

// ToggleLoop cycles the loop mode.
func (s State) ToggleLoop() State {
	s.loop = s.loop.Next()
	return s
}

// Enqueue appends t to the user queue. Tracks absent from the catalog are ignored.
func (s State) Enqueue(t catalog.Track) State {
	track, err := s.catalog.Get(t.ID)
	if err != nil {
		return s
	}
	s.userQueue = append(slices.Clone(s.userQueue), track)
	return s
}

// RemoveAt removes an entry of Upcoming. Indexes below the user queue length
// target the user queue, the rest target the shuffle queue.
// Out-of-range indexes are ignored.
func (s State) RemoveAt(index int) State {
	if index < 0 {
		return s
	}
	if index < len(s.userQueue) {
		s.userQueue = slices.Delete(slices.Clone(s.userQueue), index, index+1)
		return s
	}
	sh, ok := s.mode.(Shuffled)
	if !ok {
		return s
	}
	i := index - len(s.userQueue)
	if i >= len(sh.Queue) {
		return s
	}
	sh.Queue = slices.Delete(slices.Clone(sh.Queue), i, i+1)
	s.mode = sh
	return s
}

// TrackEnded handles the transport reaching the end of the current track.
// LoopTrack restarts it, LoopPlaylist behaves like Next, LoopNone behaves
// like Next unless the current track is the last in catalog order, in which
// case playback stops.
func (s State) TrackEnded() (State, Outcome) {
	if s.catalog.IsEmpty() || !s.hasCurrent {
		return s, none()
	}
	switch s.loop {
	case LoopTrack:
		return s, Outcome{Action: ActionRestart, Track: s.current}
	case LoopPlaylist:
		return s.Next()
	case LoopNone:
		if s.catalog.IsLast(s.current.ID) {
			return s, Outcome{Action: ActionStop, Track: s.current}
		}
		return s.Next()
	}
	return s, none()
}
