package state

import (
	"github.com/llehouerou/dhwani/internal/order"
	"github.com/llehouerou/dhwani/internal/visualizer"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	order.Store
	GetVolume() (VolumeState, error)
	SaveVolume(volume float64, muted bool) error
	SaveVolumeDebounced(volume float64, muted bool)
	GetLastFolder() (string, error)
	SaveLastFolder(folder string) error
	GetVisualizerSettings() (visualizer.Settings, error)
	SaveVisualizerSettings(s visualizer.Settings) error
	ClearSaved() error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
