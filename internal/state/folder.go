package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/dhwani/internal/db"
)

// GetLastFolder returns the folder opened in the previous session, or "".
func (m *Manager) GetLastFolder() (string, error) {
	var folder sql.NullString
	err := m.db.QueryRow(`SELECT last_folder FROM player_state WHERE id = 1`).Scan(&folder)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", unavailable(err)
	}
	return dbutil.NullStringValue(folder), nil
}

// SaveLastFolder remembers folder for the next session.
func (m *Manager) SaveLastFolder(folder string) error {
	_, err := m.db.Exec(`
		INSERT INTO player_state (id, last_folder)
		VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_folder = excluded.last_folder
	`, folder)
	return unavailable(err)
}

// ClearSaved forgets the last folder and volume. Track orders and visualizer
// preferences are kept.
func (m *Manager) ClearSaved() error {
	m.volume.Cancel()
	_, err := m.db.Exec(`DELETE FROM player_state`)
	return unavailable(err)
}
