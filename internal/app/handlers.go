package app

import (
	"context"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/errmsg"
	"github.com/llehouerou/dhwani/internal/keymap"
	"github.com/llehouerou/dhwani/internal/visualizer"
)

const (
	volumeStep    = 0.05
	smoothingStep = 0.05
)

// keyResult is the outcome of a key handler.
type keyResult struct {
	handled bool
	cmd     tea.Cmd
}

var (
	notHandled   = keyResult{}
	handledNoCmd = keyResult{handled: true}
)

func handled(cmd tea.Cmd) keyResult {
	return keyResult{handled: true, cmd: cmd}
}

// chain runs handlers in order until one handles the action.
func chain(a keymap.Action, handlers ...func(keymap.Action) keyResult) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(a); r.handled {
			return true, r.cmd
		}
	}
	return false, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Filtering {
		return m.handleFilterKey(msg)
	}
	if m.ShowHelp {
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		m.ShowHelp = false
		return m, nil
	}

	m.ErrorMsg = ""
	m.Notice = ""

	action := m.Keys.Resolve(msg.String())
	if ok, cmd := chain(action,
		m.handleGlobal,
		m.handlePlayback,
		m.handleVisualizer,
	); ok {
		return m, cmd
	}

	if m.Focus == FocusQueue {
		var cmd tea.Cmd
		m.QueuePanel, cmd = m.QueuePanel.Update(msg)
		return m, cmd
	}
	if ok, cmd := chain(action, m.handleTrackList); ok {
		return m, cmd
	}
	m.TrackList.HandleKey(msg.String())
	return m, nil
}

func (m *Model) handleGlobal(a keymap.Action) keyResult {
	switch a {
	case keymap.ActionQuit:
		return handled(m.quit())
	case keymap.ActionHelp:
		m.ShowHelp = true
		return handledNoCmd
	case keymap.ActionSwitchFocus:
		m.setFocus(1 - m.Focus)
		return handledNoCmd
	case keymap.ActionFilter:
		m.Filtering = true
		m.FilterInput.SetValue(m.TrackList.Filter())
		m.FilterInput.CursorEnd()
		return handled(m.FilterInput.Focus())
	case keymap.ActionRefresh:
		folder := m.Service.Folder()
		if folder == "" {
			return handledNoCmd
		}
		return handled(OpenFolderCmd(folder, true))
	case keymap.ActionToggleSaveState:
		m.SaveState = !m.SaveState
		if m.SaveState {
			m.Notice = "state will be saved on exit"
		} else {
			m.Notice = "state will be cleared on exit"
		}
		return handledNoCmd
	}
	return notHandled
}

func (m *Model) handlePlayback(a keymap.Action) keyResult {
	ctx := context.Background()
	switch a {
	case keymap.ActionPlayPause:
		if err := m.Service.Toggle(); err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpPlaybackStart, err)
		}
	case keymap.ActionNextTrack:
		if err := m.Service.Next(ctx); err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpPlaybackNext, err)
		}
	case keymap.ActionPrevTrack:
		if err := m.Service.Previous(ctx); err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpPlaybackPrev, err)
		}
	case keymap.ActionSeekForward:
		m.Service.Seek(m.Config.SeekDuration())
	case keymap.ActionSeekBack:
		m.Service.Seek(-m.Config.SeekDuration())
	case keymap.ActionToggleShuffle:
		m.Service.ToggleShuffle()
	case keymap.ActionCycleLoop:
		m.Service.ToggleLoop()
	case keymap.ActionVolumeUp:
		m.Service.SetVolume(stepVolume(m.Service.Volume(), volumeStep))
	case keymap.ActionVolumeDown:
		m.Service.SetVolume(stepVolume(m.Service.Volume(), -volumeStep))
	case keymap.ActionToggleMute:
		m.Service.ToggleMute()
	default:
		return notHandled
	}
	return handledNoCmd
}

func (m *Model) handleVisualizer(a keymap.Action) keyResult {
	switch a {
	case keymap.ActionDetailDown:
		m.setResolution(visualizer.ResolutionForLevel(visualizer.LevelForResolution(m.resolution()) - 1))
	case keymap.ActionDetailUp:
		m.setResolution(visualizer.ResolutionForLevel(visualizer.LevelForResolution(m.resolution()) + 1))
	case keymap.ActionSmoothingDown:
		m.setSmoothing(m.smoothing() - smoothingStep)
	case keymap.ActionSmoothingUp:
		m.setSmoothing(m.smoothing() + smoothingStep)
	case keymap.ActionCycleStyle:
		m.Settings = m.Settings.NextStyle()
		m.saveSettings()
	case keymap.ActionCycleTheme:
		m.Settings = m.Settings.NextTheme()
		m.saveSettings()
	case keymap.ActionToggleOpacity:
		m.Settings.OpacityScaling = !m.Settings.OpacityScaling
		m.saveSettings()
	default:
		return notHandled
	}
	return handledNoCmd
}

func (m *Model) handleTrackList(a keymap.Action) keyResult {
	t, ok := m.TrackList.Selected()
	switch a {
	case keymap.ActionSelect:
		if ok {
			if err := m.Service.Select(t.ID); err != nil {
				m.ErrorMsg = errmsg.FormatWith(errmsg.OpPlaybackStart, t.DisplayTitle(), err)
			}
		}
	case keymap.ActionEnqueue:
		if ok {
			m.Service.Enqueue(t.ID)
		}
	case keymap.ActionMoveItemUp:
		m.moveSelected(-1)
	case keymap.ActionMoveItemDown:
		m.moveSelected(1)
	case keymap.ActionCycleSort:
		m.Sort = m.Sort.Next()
		m.syncTracks()
		m.Notice = "sorted by " + m.Sort.String()
	default:
		return notHandled
	}
	return handledNoCmd
}

// moveSelected only works in custom order, where list positions are order
// indexes.
func (m *Model) moveSelected(delta int) {
	if m.Sort != catalog.SortCustom {
		m.Notice = "switch to " + catalog.SortCustom.String() + " to move tracks"
		return
	}
	from := m.TrackList.Position()
	if from < 0 {
		return
	}
	to := from + delta
	if to < 0 || to >= len(m.Service.Order()) {
		return
	}
	if err := m.Service.Reorder(context.Background(), from, to); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpOrderSave, err)
	}
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Filtering = false
		m.FilterInput.Blur()
		m.FilterInput.SetValue("")
		m.TrackList.SetFilter("")
		return m, nil
	case "enter":
		m.Filtering = false
		m.FilterInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.FilterInput, cmd = m.FilterInput.Update(msg)
	m.TrackList.SetFilter(m.FilterInput.Value())
	return m, cmd
}

func (m *Model) setFocus(f FocusTarget) {
	m.Focus = f
	m.TrackList.SetFocused(f == FocusTracks)
	m.QueuePanel.SetFocused(f == FocusQueue)
}

// resolution returns the bin count the detail slider shows.
func (m Model) resolution() int {
	if m.Pipeline.State() == visualizer.Uninitialized {
		return m.Settings.Resolution
	}
	return m.Controls.Resolution()
}

func (m Model) smoothing() float64 {
	if m.Pipeline.State() == visualizer.Uninitialized {
		return m.Settings.Smoothing
	}
	return m.Controls.Smoothing()
}

// setResolution stages r on a running pipeline, or records it for the
// next initialization.
func (m *Model) setResolution(r int) {
	if m.Pipeline.State() == visualizer.Uninitialized {
		m.Settings.Resolution = r
		m.saveSettings()
		return
	}
	m.Controls.SetResolution(r)
}

func (m *Model) setSmoothing(v float64) {
	v = visualizer.ClampSmoothing(math.Round(v*100) / 100)
	if m.Pipeline.State() == visualizer.Uninitialized {
		m.Settings.Smoothing = v
		m.saveSettings()
		return
	}
	m.Controls.SetSmoothing(v)
}

func stepVolume(level, delta float64) float64 {
	return min(max(math.Round((level+delta)*100)/100, 0), 1)
}
