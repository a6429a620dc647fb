package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/dhwani/internal/library"
	"github.com/llehouerou/dhwani/internal/visualizer"
)

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open.
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// VisualizerTickCmd schedules the next visualizer frame at fps.
func VisualizerTickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return VisualizerTickMsg(t)
	})
}

// OpenFolderCmd requests a folder load through Update.
func OpenFolderCmd(folder string, refresh bool) tea.Cmd {
	return func() tea.Msg {
		return OpenFolderMsg{Folder: folder, Refresh: refresh}
	}
}

// WatchServiceEvents waits for the next playback service event.
func (m Model) WatchServiceEvents() tea.Cmd {
	sub := m.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg{Previous: e.Previous, Current: e.Current}
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg{Current: e.Current}
		case <-sub.QueueChanged:
			return ServiceQueueChangedMsg{}
		case <-sub.ModeChanged:
			return ServiceModeChangedMsg{}
		case e := <-sub.PositionChanged:
			return ServicePositionMsg{Position: e.Position}
		case e := <-sub.DurationChanged:
			return ServiceDurationMsg{Duration: e.Duration}
		case e := <-sub.VolumeChanged:
			return ServiceVolumeMsg{Level: e.Level, Muted: e.Muted}
		case e := <-sub.Error:
			return ServiceErrorMsg{Operation: e.Operation, Path: e.Path, Err: e.Err}
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

func (m Model) watchCommits() tea.Cmd {
	return waitForChannel(m.commits, func(p visualizer.Params, ok bool) tea.Msg {
		if !ok {
			return nil
		}
		return SettingsCommittedMsg{Params: p}
	})
}

func (m Model) watchScan() tea.Cmd {
	return waitForChannel(m.scanCh, func(p library.ScanProgress, ok bool) tea.Msg {
		return ScanProgressMsg{Progress: p, Done: !ok}
	})
}

// loadFolderCmd scans folder in the background. progress is closed once
// the scan returns.
func (m Model) loadFolderCmd(folder string, refresh bool, progress chan library.ScanProgress) tea.Cmd {
	load := m.load
	opts := library.Options{
		Extensions: m.Config.Extensions,
		Logger:     m.Log,
		Progress:   progress,
	}
	return func() tea.Msg {
		defer close(progress)
		cat, err := load(context.Background(), folder, opts)
		return FolderLoadedMsg{Folder: folder, Catalog: cat, Refresh: refresh, Err: err}
	}
}
