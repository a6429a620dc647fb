package visualizer

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ErrAudioSession is returned when the analysis chain cannot be wired to the
// audio output.
var ErrAudioSession = errors.New("audio session unavailable")

// Source provides the most recent mono samples heard on the output.
type Source interface {
	Samples(n int) []float64
}

// State is the lifecycle stage of a Pipeline.
type State int

const (
	Uninitialized State = iota
	Active
	Reconfiguring
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Active:
		return "active"
	case Reconfiguring:
		return "reconfiguring"
	default:
		return "unknown"
	}
}

// Params selects what Reconfigure changes. Nil fields keep their value.
type Params struct {
	Resolution *int
	Smoothing  *float64
}

// Pipeline owns the analyzer attached to the output tap. The source stays
// connected for the whole session; only the analyzer is rebuilt.
type Pipeline struct {
	source  Source
	playing func() bool
	log     *zap.Logger

	// rebuild serializes Reconfigure calls.
	rebuild sync.Mutex

	mu       sync.Mutex
	state    State
	analyzer *Analyzer
	last     Frame
}

// NewPipeline creates an uninitialized pipeline reading from source.
// playing reports whether audio is currently being heard.
func NewPipeline(source Source, playing func() bool, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	if playing == nil {
		playing = func() bool { return false }
	}
	return &Pipeline{
		source:  source,
		playing: playing,
		log:     log.Named("visualizer"),
	}
}

// State returns the current lifecycle stage.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Resolution returns the active bin count, or 0 when uninitialized.
func (p *Pipeline) Resolution() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.analyzer == nil {
		return 0
	}
	return p.analyzer.Resolution()
}

// Smoothing returns the active smoothing constant, or 0 when uninitialized.
func (p *Pipeline) Smoothing() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.analyzer == nil {
		return 0
	}
	return p.analyzer.Smoothing()
}

// Initialize wires the analyzer to the source. It runs at most once per
// session: calling it while already initialized does nothing. Failures are
// logged and leave the pipeline uninitialized.
func (p *Pipeline) Initialize(resolution int, smoothing float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Uninitialized {
		return nil
	}
	if p.source == nil {
		return p.fail("initialize", errors.New("no output source"))
	}
	a, err := NewAnalyzer(resolution, smoothing)
	if err != nil {
		return p.fail("initialize", err)
	}
	p.analyzer = a
	p.last = nil
	p.state = Active
	p.log.Debug("initialized",
		zap.Int("resolution", resolution),
		zap.Float64("smoothing", a.Smoothing()))
	return nil
}

// Reconfigure rebuilds the analyzer with the given parameters while the
// source stays attached. It is a no-op unless the pipeline is active.
func (p *Pipeline) Reconfigure(params Params) error {
	p.rebuild.Lock()
	defer p.rebuild.Unlock()

	p.mu.Lock()
	if p.state != Active {
		state := p.state
		p.mu.Unlock()
		if state == Uninitialized {
			return p.fail("reconfigure", errors.New("not initialized"))
		}
		return nil
	}
	resolution := p.analyzer.Resolution()
	smoothing := p.analyzer.Smoothing()
	if params.Resolution != nil {
		resolution = *params.Resolution
	}
	if params.Smoothing != nil {
		smoothing = *params.Smoothing
	}
	p.state = Reconfiguring
	p.mu.Unlock()

	a, err := NewAnalyzer(resolution, smoothing)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Reconfiguring {
		// Torn down while rebuilding.
		return nil
	}
	p.state = Active
	if err != nil {
		return p.fail("reconfigure", err)
	}
	if a.Resolution() != p.analyzer.Resolution() {
		p.last = nil
	}
	p.analyzer = a
	p.log.Debug("reconfigured",
		zap.Int("resolution", resolution),
		zap.Float64("smoothing", a.Smoothing()))
	return nil
}

// Teardown detaches the analyzer and returns to Uninitialized.
func (p *Pipeline) Teardown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = Uninitialized
	p.analyzer = nil
	p.last = nil
}

func (p *Pipeline) fail(op string, err error) error {
	err = fmt.Errorf("%s: %w: %w", op, ErrAudioSession, err)
	p.log.Warn("visualizer unavailable", zap.Error(err))
	return err
}
