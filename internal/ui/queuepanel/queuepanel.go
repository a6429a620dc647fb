// Package queuepanel renders the upcoming tracks: the user queue followed
// by the shuffle queue.
package queuepanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/schedule"
	"github.com/llehouerou/dhwani/internal/ui/cursor"
)

// RemoveMsg asks for the upcoming entry at Index to be removed.
type RemoveMsg struct {
	Index int
}

// Model represents the queue panel state.
type Model struct {
	upcoming []catalog.Track
	userLen  int
	shuffle  bool
	loop     schedule.LoopMode
	cursor   cursor.Cursor
	width    int
	height   int
	focused  bool
}

// New creates an empty queue panel.
func New() Model {
	return Model{cursor: cursor.New(1)}
}

// SetQueue replaces the displayed entries. userLen leading entries belong
// to the user queue.
func (m *Model) SetQueue(upcoming []catalog.Track, userLen int) {
	m.upcoming = upcoming
	m.userLen = min(userLen, len(upcoming))
	m.cursor.Move(0, len(upcoming), m.listHeight())
}

// SetModes updates the shuffle and loop indicators.
func (m *Model) SetModes(shuffle bool, loop schedule.LoopMode) {
	m.shuffle = shuffle
	m.loop = loop
}

func (m *Model) SetFocused(focused bool) { m.focused = focused }
func (m Model) IsFocused() bool          { return m.focused }

// SetSize sets the panel dimensions, border included.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.cursor.Move(0, len(m.upcoming), m.listHeight())
}

// Len returns the number of upcoming entries.
func (m Model) Len() int { return len(m.upcoming) }

// Update handles keys while the panel is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	key := keyMsg.String()
	if m.cursor.HandleKey(key, len(m.upcoming), m.listHeight()) {
		return m, nil
	}
	if key == "x" || key == "delete" {
		if len(m.upcoming) == 0 {
			return m, nil
		}
		idx := m.cursor.Pos()
		return m, func() tea.Msg { return RemoveMsg{Index: idx} }
	}
	return m, nil
}

func (m Model) listHeight() int {
	// border + header + separator
	return max(m.height-4, 0)
}
