package app

import "github.com/llehouerou/dhwani/internal/ui/playerbar"

const (
	headerHeight = 1
	statusHeight = 1
	// Below this width the queue panel is hidden.
	queueMinTotalWidth = 70
)

// layout holds the outer sizes of each panel, borders included.
type layout struct {
	listWidth  int
	queueWidth int
	mainHeight int
	vizHeight  int
}

func computeLayout(width, height int) layout {
	body := max(height-headerHeight-statusHeight-playerbar.Height, 0)
	viz := min(max(body/3, 5), 14)
	if body-viz < 5 {
		viz = 0
	}
	l := layout{
		listWidth:  width,
		mainHeight: body - viz,
		vizHeight:  viz,
	}
	if width >= queueMinTotalWidth {
		l.queueWidth = width / 3
		l.listWidth = width - l.queueWidth
	}
	return l
}

// resize propagates the window size to the panels.
func (m *Model) resize() {
	l := computeLayout(m.Width, m.Height)
	// border and the folder header row
	m.TrackList.SetSize(max(l.listWidth-2, 0), max(l.mainHeight-3, 0))
	m.QueuePanel.SetSize(l.queueWidth, l.mainHeight)
	m.FilterInput.Width = max(m.Width-4, 10)
}
