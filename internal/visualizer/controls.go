package visualizer

import (
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/dhwani/internal/debounce"
)

// DefaultCommitDelay is how long resolution and smoothing changes must stay
// quiet before the analyzer is rebuilt.
const DefaultCommitDelay = 500 * time.Millisecond

// ControlOptions configures Controls.
type ControlOptions struct {
	Delay  time.Duration
	Logger *zap.Logger
	// OnCommit is called after a staged value reaches the pipeline.
	OnCommit func(Params)
}

// Controls stages slider changes and commits only the last value of each
// burst to the pipeline.
type Controls struct {
	pipeline   *Pipeline
	log        *zap.Logger
	onCommit   func(Params)
	resolution *debounce.Debouncer[int]
	smoothing  *debounce.Debouncer[float64]
}

// NewControls creates controls driving p.
func NewControls(p *Pipeline, opts ControlOptions) *Controls {
	if opts.Delay <= 0 {
		opts.Delay = DefaultCommitDelay
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	c := &Controls{
		pipeline: p,
		log:      opts.Logger.Named("visualizer"),
		onCommit: opts.OnCommit,
	}
	c.resolution = debounce.New(opts.Delay, func(r int) {
		c.commit(Params{Resolution: &r})
	})
	c.smoothing = debounce.New(opts.Delay, func(v float64) {
		c.commit(Params{Smoothing: &v})
	})
	return c
}

// SetResolution stages a new bin count. Unsupported values are ignored.
func (c *Controls) SetResolution(r int) {
	if !ValidResolution(r) {
		return
	}
	c.resolution.Set(r)
}

// SetResolutionLevel stages the resolution for a detail slider level.
func (c *Controls) SetResolutionLevel(level int) {
	c.SetResolution(ResolutionForLevel(level))
}

// SetSmoothing stages a new smoothing constant, clamped to the valid range.
func (c *Controls) SetSmoothing(v float64) {
	c.smoothing.Set(ClampSmoothing(v))
}

// Resolution returns the value the slider should show: the staged one if a
// change is pending, the committed one otherwise.
func (c *Controls) Resolution() int {
	if r, ok := c.resolution.Pending(); ok {
		return r
	}
	return c.pipeline.Resolution()
}

// Smoothing returns the staged smoothing if pending, the committed one otherwise.
func (c *Controls) Smoothing() float64 {
	if v, ok := c.smoothing.Pending(); ok {
		return v
	}
	return c.pipeline.Smoothing()
}

// Pending reports whether any change is waiting to be committed.
func (c *Controls) Pending() bool {
	_, r := c.resolution.Pending()
	_, s := c.smoothing.Pending()
	return r || s
}

// Close cancels pending commits. Later changes are ignored.
func (c *Controls) Close() {
	c.resolution.Stop()
	c.smoothing.Stop()
}

func (c *Controls) commit(params Params) {
	if err := c.pipeline.Reconfigure(params); err != nil {
		c.log.Debug("commit dropped", zap.Error(err))
		return
	}
	if c.onCommit != nil {
		c.onCommit(params)
	}
}
