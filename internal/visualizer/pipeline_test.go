package visualizer

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toneSource struct {
	amp float64
}

func (s toneSource) Samples(n int) []float64 {
	return sine(n, n/16, n, s.amp)
}

type playFlag struct{ v atomic.Bool }

func (f *playFlag) playing() bool { return f.v.Load() }
func (f *playFlag) set(v bool)    { f.v.Store(v) }

func newTestPipeline(t *testing.T) (*Pipeline, *playFlag) {
	t.Helper()
	flag := &playFlag{}
	return NewPipeline(toneSource{amp: 1}, flag.playing, nil), flag
}

func TestPipeline_Initialize(t *testing.T) {
	p, _ := newTestPipeline(t)
	assert.Equal(t, Uninitialized, p.State())

	require.NoError(t, p.Initialize(256, 0.85))
	assert.Equal(t, Active, p.State())
	assert.Equal(t, 256, p.Resolution())
	assert.InDelta(t, 0.85, p.Smoothing(), 1e-9)

	// A second call in the same session does nothing.
	require.NoError(t, p.Initialize(64, 0.1))
	assert.Equal(t, 256, p.Resolution())
	assert.InDelta(t, 0.85, p.Smoothing(), 1e-9)
}

func TestPipeline_InitializeWithoutSource(t *testing.T) {
	p := NewPipeline(nil, nil, nil)
	err := p.Initialize(256, 0.5)
	require.ErrorIs(t, err, ErrAudioSession)
	assert.Equal(t, Uninitialized, p.State())

	_, ok := p.Next()
	assert.False(t, ok)
}

func TestPipeline_InitializeInvalidResolution(t *testing.T) {
	p, _ := newTestPipeline(t)
	require.ErrorIs(t, p.Initialize(300, 0.5), ErrAudioSession)
	assert.Equal(t, Uninitialized, p.State())
}

func TestPipeline_Reconfigure(t *testing.T) {
	p, _ := newTestPipeline(t)
	require.NoError(t, p.Initialize(256, 0.85))

	r := 512
	require.NoError(t, p.Reconfigure(Params{Resolution: &r}))
	assert.Equal(t, Active, p.State())
	assert.Equal(t, 512, p.Resolution())
	assert.InDelta(t, 0.85, p.Smoothing(), 1e-9, "smoothing kept")

	s := 2.0
	require.NoError(t, p.Reconfigure(Params{Smoothing: &s}))
	assert.Equal(t, 512, p.Resolution(), "resolution kept")
	assert.InDelta(t, MaxSmoothing, p.Smoothing(), 1e-9, "smoothing clamped")
}

func TestPipeline_ReconfigureInvalidKeepsAnalyzer(t *testing.T) {
	p, _ := newTestPipeline(t)
	require.NoError(t, p.Initialize(128, 0.5))

	bad := 100
	require.ErrorIs(t, p.Reconfigure(Params{Resolution: &bad}), ErrAudioSession)
	assert.Equal(t, Active, p.State())
	assert.Equal(t, 128, p.Resolution())
}

func TestPipeline_ReconfigureUninitialized(t *testing.T) {
	p, _ := newTestPipeline(t)
	r := 512
	require.ErrorIs(t, p.Reconfigure(Params{Resolution: &r}), ErrAudioSession)
	assert.Equal(t, Uninitialized, p.State())
}

func TestPipeline_TeardownAllowsReinitialize(t *testing.T) {
	p, flag := newTestPipeline(t)
	flag.set(true)
	require.NoError(t, p.Initialize(256, 0))
	_, ok := p.Next()
	require.True(t, ok)

	p.Teardown()
	assert.Equal(t, Uninitialized, p.State())
	assert.Equal(t, 0, p.Resolution())
	_, ok = p.Next()
	assert.False(t, ok)

	require.NoError(t, p.Initialize(64, 0))
	f, ok := p.Next()
	require.True(t, ok)
	assert.Len(t, f, 64)
}

func TestState_String(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Uninitialized, "uninitialized"},
		{Active, "active"},
		{Reconfiguring, "reconfiguring"},
		{State(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
