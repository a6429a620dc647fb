package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/icons"
	"github.com/llehouerou/dhwani/internal/playback"
	"github.com/llehouerou/dhwani/internal/ui/overlay"
	"github.com/llehouerou/dhwani/internal/ui/playerbar"
	"github.com/llehouerou/dhwani/internal/ui/render"
	"github.com/llehouerou/dhwani/internal/ui/styles"
	uiviz "github.com/llehouerou/dhwani/internal/ui/visualizer"
	"github.com/llehouerou/dhwani/internal/visualizer"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	l := computeLayout(m.Width, m.Height)

	body := m.renderTrackPanel(l)
	if l.queueWidth > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.QueuePanel.View())
	}

	parts := []string{m.renderHeader(), body}
	if viz := m.renderVisualizer(l); viz != "" {
		parts = append(parts, viz)
	}
	parts = append(parts, playerbar.Render(m.playerState(), m.Width), m.renderStatus())
	view := strings.Join(parts, "\n")

	if m.ShowHelp {
		view = overlay.Center(view, m.renderHelp(), m.Width, m.Height)
	}
	return view
}

func (m Model) renderHeader() string {
	t := styles.T()
	s := t.S()
	left := styles.ApplyGradient("dhwani", t.Primary, t.Secondary, true)
	if folder := m.Service.Folder(); folder != "" {
		left += s.Muted.Render("  " + render.Sanitize(folder))
	}
	right := s.Subtle.Render("? help")
	if !m.SaveState {
		right = s.Warning.Render("state not saved") + "  " + right
	}
	return render.Row(left, right, m.Width)
}

func (m Model) renderTrackPanel(l layout) string {
	t := styles.T()
	inner := max(l.listWidth-2, 0)

	title := "no folder"
	if folder := m.Service.Folder(); folder != "" {
		title = icons.FormatDir(filepath.Base(folder))
	}
	count := fmt.Sprintf("%d tracks", m.Service.Catalog().Len())
	if f := m.TrackList.Filter(); f != "" {
		count = fmt.Sprintf("%d of %s", m.TrackList.Len(), count)
	}
	if m.Sort != catalog.SortCustom {
		count = m.Sort.String() + " · " + count
	}
	header := render.Row(t.S().Title.Render(render.Truncate(title, inner/2)), t.S().Muted.Render(count), inner)

	body := header + "\n" + m.TrackList.View()
	return t.Panel(m.Focus == FocusTracks).Width(inner).Render(body)
}

func (m Model) renderVisualizer(l layout) string {
	if l.vizHeight < 3 {
		return ""
	}
	inner := max(m.Width-2, 0)
	bars := uiviz.Render(m.Frame, m.Settings, inner, l.vizHeight-2, m.Phase)
	return styles.T().Panel(false).Width(inner).Render(bars)
}

func (m Model) playerState() playerbar.State {
	state := m.Service.State()
	return playerbar.State{
		Track:    m.Service.CurrentTrack(),
		Playing:  state == playback.StatePlaying,
		Paused:   state == playback.StatePaused,
		Position: m.position,
		Duration: m.duration,
		Volume:   m.Service.Volume(),
		Muted:    m.Service.Muted(),
	}
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	switch {
	case m.Filtering:
		return m.FilterInput.View()
	case m.ErrorMsg != "":
		return s.Error.Render(render.Truncate(m.ErrorMsg, m.Width))
	case m.Loading:
		return s.Muted.Render(render.Truncate(m.ScanMsg, m.Width))
	case m.Notice != "":
		return s.Warning.Render(render.Truncate(m.Notice, m.Width))
	}
	return s.Subtle.Render(render.Truncate(m.settingsSummary(), m.Width))
}

// settingsSummary describes the visualizer sliders, marking values that
// are staged but not yet applied.
func (m Model) settingsSummary() string {
	opacity := "off"
	if m.Settings.OpacityScaling {
		opacity = "on"
	}
	pending := ""
	if m.Pipeline.State() != visualizer.Uninitialized && m.Controls.Pending() {
		pending = " …"
	}
	return fmt.Sprintf("%s · %s · detail %d/%d · smoothing %.2f · opacity %s%s",
		m.Settings.Style, m.Settings.Theme.Label(),
		visualizer.LevelForResolution(m.resolution()), len(visualizer.Resolutions),
		m.smoothing(), opacity, pending)
}
