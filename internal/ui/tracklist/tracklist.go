// Package tracklist renders the folder's tracks in their custom order.
package tracklist

import (
	"strings"

	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/search"
	"github.com/llehouerou/dhwani/internal/ui/cursor"
)

// Model is the scrollable track list. Rows follow the custom order; a
// filter hides rows without changing it.
type Model struct {
	tracks  []catalog.Track
	visible []int // indexes into tracks
	filter  string
	matcher search.Matcher

	current string
	playing bool
	queued  map[string]int // id -> 1-based user queue position

	cursor  cursor.Cursor
	width   int
	height  int
	focused bool
}

// New creates an empty list.
func New() Model {
	return Model{cursor: cursor.New(3), focused: true}
}

// SetTracks replaces the rows, keeping the selection on the same track
// when it is still present.
func (m *Model) SetTracks(tracks []catalog.Track) {
	sel, hadSel := m.Selected()
	m.tracks = tracks
	m.refilter()
	if hadSel && m.Focus(sel.ID) {
		return
	}
	m.cursor.Move(0, len(m.visible), m.height)
}

// SetCurrent marks the current track.
func (m *Model) SetCurrent(id string, playing bool) {
	m.current = id
	m.playing = playing
}

// SetQueued marks tracks waiting in the user queue.
func (m *Model) SetQueued(userQueue []catalog.Track) {
	m.queued = make(map[string]int, len(userQueue))
	for i, t := range userQueue {
		if _, ok := m.queued[t.ID]; !ok {
			m.queued[t.ID] = i + 1
		}
	}
}

// SetFilter shows only tracks whose title and artists match every word of q.
// Matching ignores case and accents and tolerates small typos.
func (m *Model) SetFilter(q string) {
	sel, hadSel := m.Selected()
	m.filter = strings.ToLower(strings.TrimSpace(q))
	m.matcher = search.NewMatcher(m.filter)
	m.refilter()
	if !hadSel || !m.Focus(sel.ID) {
		m.cursor.Jump(0, len(m.visible), m.height)
	}
}

// Filter returns the active filter, lowercased.
func (m Model) Filter() string { return m.filter }

func (m *Model) refilter() {
	m.visible = nil
	for i, t := range m.tracks {
		if m.matches(t) {
			m.visible = append(m.visible, i)
		}
	}
}

func (m Model) matches(t catalog.Track) bool {
	if m.matcher.Empty() {
		return true
	}
	return m.matcher.Match(t.DisplayTitle() + " " + strings.Join(t.Artists, " "))
}

// Selected returns the track under the cursor.
func (m Model) Selected() (catalog.Track, bool) {
	i := m.Position()
	if i < 0 {
		return catalog.Track{}, false
	}
	return m.tracks[i], true
}

// Position returns the order index of the selected track, or -1.
func (m Model) Position() int {
	p := m.cursor.Pos()
	if p < 0 || p >= len(m.visible) {
		return -1
	}
	return m.visible[p]
}

// Focus moves the cursor to the track with id. It reports false when the
// track is not visible.
func (m *Model) Focus(id string) bool {
	for row, i := range m.visible {
		if m.tracks[i].ID == id {
			m.cursor.Jump(row, len(m.visible), m.height)
			return true
		}
	}
	return false
}

// HandleKey applies navigation keys.
func (m *Model) HandleKey(key string) bool {
	return m.cursor.HandleKey(key, len(m.visible), m.height)
}

// SetSize sets the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.cursor.Move(0, len(m.visible), height)
}

func (m *Model) SetFocused(focused bool) { m.focused = focused }
func (m Model) IsFocused() bool          { return m.focused }

// Len returns the number of visible rows.
func (m Model) Len() int { return len(m.visible) }
