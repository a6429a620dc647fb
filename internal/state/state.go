// Package state persists small pieces of player state between runs: the
// custom track order per folder, volume, the last opened folder and the
// visualizer preferences.
package state

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"go.uber.org/zap"

	dbutil "github.com/llehouerou/dhwani/internal/db"
	"github.com/llehouerou/dhwani/internal/debounce"
)

const (
	appName      = "dhwani"
	dbFileName   = "dhwani.db"
	saveDebounce = 500 * time.Millisecond
)

// ErrPersistenceUnavailable wraps every storage failure.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

type Manager struct {
	db     *sql.DB
	log    *zap.Logger
	volume *debounce.Debouncer[VolumeState]
}

// Open opens the database in the XDG data directory.
func Open(log *zap.Logger) (*Manager, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, unavailable(err)
	}
	return OpenPath(path, log)
}

// OpenPath opens the database at path. ":memory:" is accepted.
func OpenPath(path string, log *zap.Logger) (*Manager, error) {
	db, err := dbutil.Open(path)
	if err != nil {
		return nil, unavailable(err)
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, unavailable(err)
	}
	return newManager(db, log), nil
}

func newManager(db *sql.DB, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{db: db, log: log.Named("state")}
	m.volume = debounce.New(saveDebounce, func(v VolumeState) {
		if err := m.SaveVolume(v.Volume, v.Muted); err != nil {
			m.log.Warn("save volume", zap.Error(err))
		}
	})
	return m
}

// Close flushes a pending volume save and closes the database.
func (m *Manager) Close() error {
	m.volume.Flush()
	m.volume.Stop()
	return m.db.Close()
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

func unavailable(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrPersistenceUnavailable, err)
}
