package app

import (
	"time"

	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/library"
	"github.com/llehouerou/dhwani/internal/playback"
	"github.com/llehouerou/dhwani/internal/visualizer"
)

// VisualizerTickMsg asks for the next visualizer frame.
type VisualizerTickMsg time.Time

// OpenFolderMsg asks for a folder to be scanned and loaded.
type OpenFolderMsg struct {
	Folder  string
	Refresh bool
}

// FolderLoadedMsg carries the result of a folder scan.
type FolderLoadedMsg struct {
	Folder  string
	Catalog *catalog.Catalog
	Refresh bool
	Err     error
}

// ScanProgressMsg reports folder scan progress.
type ScanProgressMsg struct {
	Progress library.ScanProgress
	Done     bool
}

// SettingsCommittedMsg is sent once a debounced visualizer change reached
// the pipeline.
type SettingsCommittedMsg struct {
	Params visualizer.Params
}

// ServiceStateChangedMsg is sent when the transport state changes.
type ServiceStateChangedMsg struct {
	Previous playback.State
	Current  playback.State
}

// ServiceTrackChangedMsg is sent when the current track changes.
type ServiceTrackChangedMsg struct {
	Current *catalog.Track
}

// ServiceQueueChangedMsg is sent when the queues or the custom order change.
type ServiceQueueChangedMsg struct{}

// ServiceModeChangedMsg is sent when loop or shuffle mode changes.
type ServiceModeChangedMsg struct{}

// ServicePositionMsg carries the playback position.
type ServicePositionMsg struct {
	Position time.Duration
}

// ServiceDurationMsg carries the duration of the loaded track.
type ServiceDurationMsg struct {
	Duration time.Duration
}

// ServiceVolumeMsg is sent when volume or mute changes.
type ServiceVolumeMsg struct {
	Level float64
	Muted bool
}

// ServiceErrorMsg is sent when the transport fails.
type ServiceErrorMsg struct {
	Operation string
	Path      string
	Err       error
}

// ServiceClosedMsg is sent when the service shut down.
type ServiceClosedMsg struct{}
