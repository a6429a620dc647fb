package state

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbutil "github.com/llehouerou/dhwani/internal/db"
	"github.com/llehouerou/dhwani/internal/visualizer"
)

// setupTestManager creates a Manager over an in-memory database with the
// schema initialized.
func setupTestManager(t *testing.T) *Manager {
	t.Helper()

	db, err := dbutil.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}
	m := newManager(db, nil)
	t.Cleanup(func() { m.Close() })
	return m
}

func TestOrder_EmptyFolder(t *testing.T) {
	m := setupTestManager(t)

	ids, err := m.LoadOrder(context.Background(), "/music")
	if err != nil {
		t.Fatalf("LoadOrder failed: %v", err)
	}
	if ids == nil || len(ids) != 0 {
		t.Errorf("LoadOrder() = %#v, want empty non-nil slice", ids)
	}
}

func TestOrder_SaveAndLoad(t *testing.T) {
	m := setupTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.SaveOrder(ctx, "/music", []string{"/music/b.mp3", "/music/a.mp3", "/music/c.mp3"}))
	require.NoError(t, m.SaveOrder(ctx, "/other", []string{"/other/x.flac"}))

	ids, err := m.LoadOrder(ctx, "/music")
	require.NoError(t, err)
	assert.Equal(t, []string{"/music/b.mp3", "/music/a.mp3", "/music/c.mp3"}, ids)

	// Saving again replaces the whole order.
	require.NoError(t, m.SaveOrder(ctx, "/music", []string{"/music/c.mp3"}))
	ids, err = m.LoadOrder(ctx, "/music")
	require.NoError(t, err)
	assert.Equal(t, []string{"/music/c.mp3"}, ids)

	other, err := m.LoadOrder(ctx, "/other")
	require.NoError(t, err)
	assert.Equal(t, []string{"/other/x.flac"}, other, "other folders untouched")
}

func TestOrder_SaveEmptyClears(t *testing.T) {
	m := setupTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.SaveOrder(ctx, "/music", []string{"a", "b"}))
	require.NoError(t, m.SaveOrder(ctx, "/music", nil))

	ids, err := m.LoadOrder(ctx, "/music")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestOrder_ClosedDatabase(t *testing.T) {
	m := setupTestManager(t)
	require.NoError(t, m.db.Close())

	_, err := m.LoadOrder(context.Background(), "/music")
	if !errors.Is(err, ErrPersistenceUnavailable) {
		t.Errorf("LoadOrder error = %v, want ErrPersistenceUnavailable", err)
	}
	err = m.SaveOrder(context.Background(), "/music", []string{"a"})
	if !errors.Is(err, ErrPersistenceUnavailable) {
		t.Errorf("SaveOrder error = %v, want ErrPersistenceUnavailable", err)
	}
}

func TestVolume_Default(t *testing.T) {
	m := setupTestManager(t)

	v, err := m.GetVolume()
	require.NoError(t, err)
	assert.Equal(t, VolumeState{Volume: 1.0}, v)
}

func TestVolume_SaveAndGet(t *testing.T) {
	m := setupTestManager(t)

	require.NoError(t, m.SaveVolume(0.4, true))
	v, err := m.GetVolume()
	require.NoError(t, err)
	assert.InDelta(t, 0.4, v.Volume, 1e-9)
	assert.True(t, v.Muted)
}

func TestVolume_Debounced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		m := setupTestManager(t)

		m.SaveVolumeDebounced(0.9, false)
		time.Sleep(100 * time.Millisecond)
		m.SaveVolumeDebounced(0.5, false)
		time.Sleep(100 * time.Millisecond)
		m.SaveVolumeDebounced(0.2, true)

		v, err := m.GetVolume()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, v.Volume, 1e-9, "nothing saved during the burst")

		time.Sleep(time.Second)
		synctest.Wait()

		v, err = m.GetVolume()
		require.NoError(t, err)
		assert.InDelta(t, 0.2, v.Volume, 1e-9)
		assert.True(t, v.Muted)
	})
}

func TestVolume_DebouncedFlushedOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	m, err := OpenPath(path, nil)
	require.NoError(t, err)

	m.SaveVolumeDebounced(0.3, false)
	require.NoError(t, m.Close())

	m, err = OpenPath(path, nil)
	require.NoError(t, err)
	defer m.Close()

	v, err := m.GetVolume()
	require.NoError(t, err)
	assert.InDelta(t, 0.3, v.Volume, 1e-9)
}

func TestLastFolder(t *testing.T) {
	m := setupTestManager(t)

	folder, err := m.GetLastFolder()
	require.NoError(t, err)
	assert.Empty(t, folder)

	require.NoError(t, m.SaveVolume(0.7, false))
	require.NoError(t, m.SaveLastFolder("/music/jazz"))

	folder, err = m.GetLastFolder()
	require.NoError(t, err)
	assert.Equal(t, "/music/jazz", folder)

	v, err := m.GetVolume()
	require.NoError(t, err)
	assert.InDelta(t, 0.7, v.Volume, 1e-9, "saving folder keeps volume")
}

func TestClearSaved(t *testing.T) {
	m := setupTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.SaveLastFolder("/music"))
	require.NoError(t, m.SaveVolume(0.2, true))
	require.NoError(t, m.SaveOrder(ctx, "/music", []string{"b", "a"}))
	settings := visualizer.Settings{
		Style: visualizer.StyleAlternative, Theme: visualizer.ThemeWhite,
		Resolution: 64, Smoothing: 0.5,
	}
	require.NoError(t, m.SaveVisualizerSettings(settings))

	require.NoError(t, m.ClearSaved())

	folder, err := m.GetLastFolder()
	require.NoError(t, err)
	assert.Empty(t, folder)

	v, err := m.GetVolume()
	require.NoError(t, err)
	assert.Equal(t, VolumeState{Volume: 1.0}, v)

	ids, err := m.LoadOrder(ctx, "/music")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids, "track order kept")

	got, err := m.GetVisualizerSettings()
	require.NoError(t, err)
	assert.Equal(t, settings, got, "visualizer settings kept")
}

func TestVisualizerSettings(t *testing.T) {
	m := setupTestManager(t)

	got, err := m.GetVisualizerSettings()
	require.NoError(t, err)
	assert.Equal(t, visualizer.Settings{}, got, "nothing saved yet")

	want := visualizer.Settings{
		Style:          visualizer.StyleAlternative,
		Theme:          visualizer.ThemeGradient,
		OpacityScaling: false,
		Resolution:     1024,
		Smoothing:      0.3,
	}
	require.NoError(t, m.SaveVisualizerSettings(want))
	got, err = m.GetVisualizerSettings()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestVisualizerSettings_InvalidStoredValuesNormalized(t *testing.T) {
	m := setupTestManager(t)

	_, err := m.db.Exec(`
		INSERT INTO visualizer_settings (id, style, theme, opacity_scaling, resolution, smoothing)
		VALUES (1, 'neon', 'white', 1, 100, 4.0)
	`)
	require.NoError(t, err)

	got, err := m.GetVisualizerSettings()
	require.NoError(t, err)
	def := visualizer.DefaultSettings()
	assert.Equal(t, def.Style, got.Style)
	assert.Equal(t, visualizer.ThemeWhite, got.Theme)
	assert.Equal(t, def.Resolution, got.Resolution)
	assert.InDelta(t, visualizer.MaxSmoothing, got.Smoothing, 1e-9)
}

func TestInitSchema_Idempotent(t *testing.T) {
	m := setupTestManager(t)
	if err := initSchema(m.db); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}

	var versions []int
	rows, err := m.db.Query(`SELECT version FROM schema_version`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var v int
		require.NoError(t, rows.Scan(&v))
		versions = append(versions, v)
	}
	if !slices.Equal(versions, []int{currentSchemaVersion}) {
		t.Errorf("schema versions = %v, want [%d]", versions, currentSchemaVersion)
	}
}

func TestMock_ImplementsStoreSemantics(t *testing.T) {
	m := NewMock()
	ctx := context.Background()

	require.NoError(t, m.SaveOrder(ctx, "/f", []string{"x"}))
	ids, err := m.LoadOrder(ctx, "/f")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, ids)

	require.NoError(t, m.SaveLastFolder("/f"))
	require.NoError(t, m.ClearSaved())
	folder, _ := m.GetLastFolder()
	assert.Empty(t, folder)
	assert.Equal(t, 1, m.ClearCalls())

	require.NoError(t, m.Close())
	assert.True(t, m.IsClosed())
}
