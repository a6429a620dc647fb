package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// quit stops pending visualizer commits and settles the saved state before
// the program exits.
func (m *Model) quit() tea.Cmd {
	m.Controls.Close()
	m.persistOnExit()
	return tea.Quit
}

// persistOnExit flushes the volume and folder when state saving is on,
// and forgets them otherwise. Track orders and visualizer preferences are
// kept either way.
func (m *Model) persistOnExit() {
	if !m.SaveState {
		if err := m.StateMgr.ClearSaved(); err != nil {
			m.Log.Warn("clear saved state", zap.Error(err))
		}
		return
	}
	if err := m.StateMgr.SaveVolume(m.Service.Volume(), m.Service.Muted()); err != nil {
		m.Log.Warn("save volume", zap.Error(err))
	}
	if folder := m.Service.Folder(); folder != "" {
		if err := m.StateMgr.SaveLastFolder(folder); err != nil {
			m.Log.Warn("save last folder", zap.Error(err))
		}
	}
}
