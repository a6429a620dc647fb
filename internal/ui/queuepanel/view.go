package queuepanel

import (
	"fmt"
	"strings"

	"github.com/llehouerou/dhwani/internal/icons"
	"github.com/llehouerou/dhwani/internal/schedule"
	"github.com/llehouerou/dhwani/internal/ui/render"
	"github.com/llehouerou/dhwani/internal/ui/styles"
)

const (
	userMarker    = "+"
	shuffleMarker = "~"
)

// View renders the queue panel.
func (m Model) View() string {
	if m.width <= 2 || m.height <= 2 {
		return ""
	}
	t := styles.T()
	inner := m.width - 2

	header := render.Row(
		t.S().Title.Render(fmt.Sprintf("Up next (%d)", len(m.upcoming))),
		t.S().Queued.Render(m.modes()),
		inner,
	)

	lines := []string{header, t.S().Subtle.Render(render.Separator(inner))}
	height := m.listHeight()
	start, end := m.cursor.Visible(len(m.upcoming), height)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderLine(i, inner))
	}
	for len(lines) < height+2 {
		lines = append(lines, strings.Repeat(" ", inner))
	}
	if len(m.upcoming) == 0 && height > 0 {
		lines[2] = t.S().Subtle.Render(render.Fit("queue is empty", inner))
	}

	return t.Panel(m.focused).Width(inner).Render(strings.Join(lines, "\n"))
}

func (m Model) modes() string {
	var parts []string
	if m.shuffle {
		parts = append(parts, icons.Shuffle("shuffle"))
	}
	switch m.loop {
	case schedule.LoopTrack:
		parts = append(parts, icons.LoopOne("loop one"))
	case schedule.LoopPlaylist:
		parts = append(parts, icons.LoopAll("loop all"))
	case schedule.LoopNone:
	}
	return strings.Join(parts, " · ")
}

func (m Model) renderLine(i, width int) string {
	s := styles.T().S()
	tr := m.upcoming[i]

	marker, style := shuffleMarker, s.Muted
	if i < m.userLen {
		marker, style = userMarker, s.Queued
	}
	if m.focused && i == m.cursor.Pos() {
		style = s.Cursor
	}

	text := marker + " " + tr.DisplayTitle()
	if a := tr.Artist(); a != "" {
		text += " · " + a
	}
	return style.Render(render.Fit(text, width))
}
