// Package app is the Bubble Tea front end: it wires the playback service,
// the visualization pipeline and the persisted preferences to the screen.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/config"
	"github.com/llehouerou/dhwani/internal/keymap"
	"github.com/llehouerou/dhwani/internal/library"
	"github.com/llehouerou/dhwani/internal/playback"
	"github.com/llehouerou/dhwani/internal/state"
	"github.com/llehouerou/dhwani/internal/ui/queuepanel"
	"github.com/llehouerou/dhwani/internal/ui/tracklist"
	"github.com/llehouerou/dhwani/internal/visualizer"
)

// FocusTarget is the panel receiving navigation keys.
type FocusTarget int

const (
	FocusTracks FocusTarget = iota
	FocusQueue
)

// LoadFunc loads the catalog of a folder.
type LoadFunc func(ctx context.Context, dir string, opts library.Options) (*catalog.Catalog, error)

// Options holds the collaborators of the application model. A nil Pipeline
// is replaced by one fed by the service player's tap. Folder is opened on
// start when set. Load overrides library.Load.
type Options struct {
	Config   *config.Config
	Service  playback.Service
	State    state.Interface
	Pipeline *visualizer.Pipeline
	Logger   *zap.Logger
	Folder   string
	Load     LoadFunc
}

// Model is the root application model.
type Model struct {
	Config   *config.Config
	Service  playback.Service
	StateMgr state.Interface
	Pipeline *visualizer.Pipeline
	Controls *visualizer.Controls
	Settings visualizer.Settings
	Keys     *keymap.Resolver
	Log      *zap.Logger

	TrackList   tracklist.Model
	QueuePanel  queuepanel.Model
	Focus       FocusTarget
	FilterInput textinput.Model
	Sort        catalog.SortMode
	Filtering   bool
	ShowHelp    bool
	SaveState   bool

	Frame visualizer.Frame
	Phase float64

	StartFolder string
	Loading     bool
	ScanMsg     string
	Notice      string
	ErrorMsg    string
	Width       int
	Height      int

	load     LoadFunc
	sub      *playback.Subscription
	commits  chan visualizer.Params
	scanCh   <-chan library.ScanProgress
	ticking  bool // a VisualizerTickCmd is in flight
	position time.Duration
	duration time.Duration
}

// New creates the application model. Visualizer preferences are read from
// the state store, falling back to the configured values.
func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	load := opts.Load
	if load == nil {
		load = library.Load
	}
	pipeline := opts.Pipeline
	if pipeline == nil {
		service := opts.Service
		pipeline = visualizer.NewPipeline(service.Player().Tap(), func() bool {
			return service.State() == playback.StatePlaying
		}, log)
	}

	settings := settingsFromConfig(cfg.GetVisualizerConfig())
	if saved, err := opts.State.GetVisualizerSettings(); err != nil {
		log.Warn("load visualizer settings", zap.Error(err))
	} else if saved != (visualizer.Settings{}) {
		settings = saved.Normalize()
	}

	ti := textinput.New()
	ti.Placeholder = "filter by title or artist"
	ti.Prompt = "/ "
	ti.CharLimit = 128

	commits := make(chan visualizer.Params, 4)
	controls := visualizer.NewControls(pipeline, visualizer.ControlOptions{
		Logger: log,
		OnCommit: func(p visualizer.Params) {
			select {
			case commits <- p:
			default:
			}
		},
	})

	m := Model{
		Config:      cfg,
		Service:     opts.Service,
		StateMgr:    opts.State,
		Pipeline:    pipeline,
		Controls:    controls,
		Settings:    settings,
		Keys:        keymap.Default(),
		Log:         log.Named("app"),
		TrackList:   tracklist.New(),
		QueuePanel:  queuepanel.New(),
		FilterInput: ti,
		SaveState:   cfg.ShouldSaveState(),
		StartFolder: opts.Folder,
		load:        load,
		sub:         opts.Service.Subscribe(),
		commits:     commits,
	}
	m.syncAll()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.WatchServiceEvents(),
		m.watchCommits(),
	}
	if m.StartFolder != "" {
		cmds = append(cmds, OpenFolderCmd(m.StartFolder, false))
	}
	return tea.Batch(cmds...)
}

func settingsFromConfig(c config.VisualizerConfig) visualizer.Settings {
	return visualizer.Settings{
		Style:          visualizer.Style(c.Style),
		Theme:          visualizer.Theme(c.Theme),
		OpacityScaling: *c.OpacityScaling,
		Resolution:     c.Resolution,
		Smoothing:      *c.Smoothing,
	}.Normalize()
}
