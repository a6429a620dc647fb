package tracklist

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/llehouerou/dhwani/internal/ui/render"
	"github.com/llehouerou/dhwani/internal/ui/styles"
)

const (
	playingSymbol = "▶"
	pausedSymbol  = "⏸"
	durationWidth = 6
	queueWidth    = 4
)

// View renders height rows of width columns.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	s := styles.T().S()

	lines := make([]string, 0, m.height)
	start, end := m.cursor.Visible(len(m.visible), m.height)
	for row := start; row < end; row++ {
		lines = append(lines, m.renderRow(row))
	}
	if len(m.visible) == 0 {
		msg := "no tracks in this folder"
		if m.filter != "" {
			msg = fmt.Sprintf("no tracks match %q", m.filter)
		}
		lines = append(lines, s.Subtle.Render(render.Fit(msg, m.width)))
	}
	for len(lines) < m.height {
		lines = append(lines, strings.Repeat(" ", m.width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(row int) string {
	s := styles.T().S()
	t := m.tracks[m.visible[row]]

	marker := "  "
	if t.ID == m.current {
		marker = pausedSymbol + " "
		if m.playing {
			marker = playingSymbol + " "
		}
	}

	queue := ""
	if pos, ok := m.queued[t.ID]; ok {
		queue = "[" + strconv.Itoa(pos) + "]"
	}

	textWidth := max(m.width-2-queueWidth-durationWidth, 0)
	titleWidth := textWidth * 3 / 5
	artistWidth := textWidth - titleWidth

	line := marker +
		render.Fit(t.DisplayTitle(), titleWidth) +
		render.Fit(t.Artist(), artistWidth) +
		fmt.Sprintf("%*s", queueWidth, queue) +
		fmt.Sprintf("%*s", durationWidth, formatDuration(t.Duration))

	style := s.Base
	switch {
	case m.focused && row == m.cursor.Pos():
		style = s.Cursor
	case t.ID == m.current:
		style = s.Playing
	case queue != "":
		style = s.Queued
	}
	return style.Render(line)
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "--:--"
	}
	return render.Duration(d)
}
