package state

import (
	"database/sql"
	"errors"

	"github.com/llehouerou/dhwani/internal/visualizer"
)

// GetVisualizerSettings returns the saved visualizer preferences, or the
// zero Settings when nothing is saved. Invalid stored values are normalized.
func (m *Manager) GetVisualizerSettings() (visualizer.Settings, error) {
	var s visualizer.Settings
	var style, theme string

	row := m.db.QueryRow(`
		SELECT style, theme, opacity_scaling, resolution, smoothing
		FROM visualizer_settings WHERE id = 1
	`)
	err := row.Scan(&style, &theme, &s.OpacityScaling, &s.Resolution, &s.Smoothing)
	if errors.Is(err, sql.ErrNoRows) {
		return visualizer.Settings{}, nil
	}
	if err != nil {
		return visualizer.Settings{}, unavailable(err)
	}
	s.Style = visualizer.Style(style)
	s.Theme = visualizer.Theme(theme)
	return s.Normalize(), nil
}

// SaveVisualizerSettings persists the visualizer preferences.
func (m *Manager) SaveVisualizerSettings(s visualizer.Settings) error {
	s = s.Normalize()
	_, err := m.db.Exec(`
		INSERT INTO visualizer_settings (id, style, theme, opacity_scaling, resolution, smoothing)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			style = excluded.style,
			theme = excluded.theme,
			opacity_scaling = excluded.opacity_scaling,
			resolution = excluded.resolution,
			smoothing = excluded.smoothing
	`, string(s.Style), string(s.Theme), s.OpacityScaling, s.Resolution, s.Smoothing)
	return unavailable(err)
}
