package state

import (
	"sync"

	"github.com/llehouerou/dhwani/internal/order"
	"github.com/llehouerou/dhwani/internal/visualizer"
)

// Mock is a test double for Manager keeping everything in memory.
type Mock struct {
	*order.MemoryStore

	mu         sync.Mutex
	volume     VolumeState
	folder     string
	settings   visualizer.Settings
	closed     bool
	clearCalls int
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{
		MemoryStore: order.NewMemoryStore(),
		volume:      VolumeState{Volume: 1.0},
	}
}

func (m *Mock) GetVolume() (VolumeState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume, nil
}

func (m *Mock) SaveVolume(volume float64, muted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = VolumeState{Volume: volume, Muted: muted}
	return nil
}

func (m *Mock) SaveVolumeDebounced(volume float64, muted bool) {
	_ = m.SaveVolume(volume, muted)
}

func (m *Mock) GetLastFolder() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.folder, nil
}

func (m *Mock) SaveLastFolder(folder string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.folder = folder
	return nil
}

func (m *Mock) GetVisualizerSettings() (visualizer.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings, nil
}

func (m *Mock) SaveVisualizerSettings(s visualizer.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = s.Normalize()
	return nil
}

func (m *Mock) ClearSaved() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = VolumeState{Volume: 1.0}
	m.folder = ""
	m.clearCalls++
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *Mock) ClearCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clearCalls
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
