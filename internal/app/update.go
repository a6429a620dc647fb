package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/dhwani/internal/errmsg"
	"github.com/llehouerou/dhwani/internal/library"
	"github.com/llehouerou/dhwani/internal/playback"
	"github.com/llehouerou/dhwani/internal/ui/queuepanel"
	uiviz "github.com/llehouerou/dhwani/internal/ui/visualizer"
	"github.com/llehouerou/dhwani/internal/visualizer"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case VisualizerTickMsg:
		m.Phase = uiviz.Phase(time.Time(msg))
		f, ok := m.Pipeline.Next()
		if !ok {
			// Decay finished; the next Playing transition re-arms the tick.
			m.Frame = nil
			m.ticking = false
			return m, nil
		}
		m.Frame = f
		return m, VisualizerTickCmd(m.Config.GetVisualizerConfig().FPS)

	case OpenFolderMsg:
		return m.startLoad(msg.Folder, msg.Refresh)

	case ScanProgressMsg:
		if msg.Done {
			m.scanCh = nil
			return m, nil
		}
		m.ScanMsg = scanStatus(msg.Progress)
		return m, m.watchScan()

	case FolderLoadedMsg:
		return m.handleFolderLoaded(msg), nil

	case SettingsCommittedMsg:
		m.applyCommit(msg.Params)
		return m, m.watchCommits()

	case queuepanel.RemoveMsg:
		m.Service.RemoveFromQueue(msg.Index)
		return m, nil
	}

	if cmd, ok := m.handleServiceMsg(msg); ok {
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleServiceMsg(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case ServiceStateChangedMsg:
		m.syncCurrent()
		if msg.Current == playback.StatePlaying {
			m.initPipeline()
			if !m.ticking {
				m.ticking = true
				return tea.Batch(m.WatchServiceEvents(), VisualizerTickCmd(m.Config.GetVisualizerConfig().FPS)), true
			}
		}
	case ServiceTrackChangedMsg:
		m.duration = 0
		m.position = 0
		m.syncCurrent()
		if msg.Current != nil {
			m.TrackList.Focus(msg.Current.ID)
		}
	case ServiceQueueChangedMsg:
		m.syncTracks()
		m.syncQueue()
	case ServiceModeChangedMsg:
		m.syncQueue()
	case ServicePositionMsg:
		m.position = msg.Position
	case ServiceDurationMsg:
		m.duration = msg.Duration
	case ServiceVolumeMsg:
		m.StateMgr.SaveVolumeDebounced(msg.Level, msg.Muted)
	case ServiceErrorMsg:
		m.ErrorMsg = errmsg.FormatWith(errmsg.Op(msg.Operation), msg.Path, msg.Err)
	case ServiceClosedMsg:
		return nil, true
	default:
		return nil, false
	}
	return m.WatchServiceEvents(), true
}

// startLoad begins scanning folder and watches its progress.
func (m Model) startLoad(folder string, refresh bool) (tea.Model, tea.Cmd) {
	if m.Loading {
		return m, nil
	}
	progress := make(chan library.ScanProgress, 16)
	m.scanCh = progress
	m.Loading = true
	m.ScanMsg = "scanning " + folder
	return m, tea.Batch(m.loadFolderCmd(folder, refresh, progress), m.watchScan())
}

func (m Model) handleFolderLoaded(msg FolderLoadedMsg) Model {
	m.Loading = false
	m.ScanMsg = ""

	op := errmsg.OpFolderOpen
	if msg.Refresh {
		op = errmsg.OpFolderRefresh
	}
	if msg.Err != nil {
		m.Log.Warn("load folder", zap.String("folder", msg.Folder), zap.Error(msg.Err))
		m.ErrorMsg = errmsg.FormatWith(op, msg.Folder, msg.Err)
		return m
	}

	ctx := context.Background()
	var err error
	if msg.Refresh {
		err = m.Service.Refresh(ctx, msg.Catalog)
	} else {
		err = m.Service.LoadFolder(ctx, msg.Folder, msg.Catalog)
	}
	if err != nil {
		m.ErrorMsg = errmsg.FormatWith(op, msg.Folder, err)
		return m
	}
	if !msg.Refresh {
		if err := m.StateMgr.SaveLastFolder(msg.Folder); err != nil {
			m.Log.Warn("save last folder", zap.Error(err))
		}
		m.TrackList.SetFilter("")
	}
	m.syncAll()
	return m
}

// initPipeline starts the visualizer on first playback.
func (m *Model) initPipeline() {
	if m.Pipeline.State() != visualizer.Uninitialized {
		return
	}
	if err := m.Pipeline.Initialize(m.Settings.Resolution, m.Settings.Smoothing); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpVisualizerInit, err)
	}
}

// applyCommit records a committed visualizer change and persists it.
func (m *Model) applyCommit(p visualizer.Params) {
	if p.Resolution != nil {
		m.Settings.Resolution = *p.Resolution
	}
	if p.Smoothing != nil {
		m.Settings.Smoothing = *p.Smoothing
	}
	m.saveSettings()
}

func (m *Model) saveSettings() {
	if err := m.StateMgr.SaveVisualizerSettings(m.Settings); err != nil {
		m.Log.Warn("save visualizer settings", zap.Error(err))
		m.ErrorMsg = errmsg.Format(errmsg.OpSettingsSave, err)
	}
}

func scanStatus(p library.ScanProgress) string {
	switch p.Phase {
	case "processing":
		return fmt.Sprintf("reading tags %d/%d", p.Current, p.Total)
	case "done":
		return fmt.Sprintf("loaded %d tracks", p.Total)
	default:
		return "scanning folder"
	}
}
