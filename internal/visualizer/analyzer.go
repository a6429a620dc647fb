// Package visualizer turns the audio heard through the player tap into
// frequency frames for the spectrum display.
package visualizer

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// Decibel range mapped onto the 0..255 byte scale.
const (
	MinDecibels = -70.0
	MaxDecibels = -30.0
)

// MaxSmoothing is the largest accepted smoothing time constant.
const MaxSmoothing = 0.99

// Resolutions lists the supported bin counts, lowest detail first.
var Resolutions = []int{64, 128, 256, 512, 1024}

// ValidResolution reports whether r is one of Resolutions.
func ValidResolution(r int) bool {
	return slices.Contains(Resolutions, r)
}

// ClampSmoothing bounds v to [0, MaxSmoothing].
func ClampSmoothing(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, 0), MaxSmoothing)
}

// Analyzer computes byte-scaled magnitude spectra with exponential smoothing
// across successive calls.
type Analyzer struct {
	fftSize   int
	smoothing float64
	window    []float64
	smoothed  []float64
}

// NewAnalyzer creates an analyzer producing resolution bins.
// Its FFT size is twice the resolution.
func NewAnalyzer(resolution int, smoothing float64) (*Analyzer, error) {
	if !ValidResolution(resolution) {
		return nil, fmt.Errorf("invalid resolution %d", resolution)
	}
	size := resolution * 2
	return &Analyzer{
		fftSize:   size,
		smoothing: ClampSmoothing(smoothing),
		window:    window.Blackman(size),
		smoothed:  make([]float64, resolution),
	}, nil
}

// Resolution returns the number of bins per frame.
func (a *Analyzer) Resolution() int { return a.fftSize / 2 }

// FFTSize returns the number of samples consumed per analysis.
func (a *Analyzer) FFTSize() int { return a.fftSize }

// Smoothing returns the smoothing time constant.
func (a *Analyzer) Smoothing() float64 { return a.smoothing }

// Analyze windows the most recent FFTSize samples, transforms them and
// returns one byte per bin. Short input is zero-padded at the front.
func (a *Analyzer) Analyze(samples []float64) Frame {
	in := make([]float64, a.fftSize)
	if len(samples) > a.fftSize {
		samples = samples[len(samples)-a.fftSize:]
	}
	copy(in[a.fftSize-len(samples):], samples)
	for i := range in {
		in[i] *= a.window[i]
	}

	spectrum := fft.FFTReal(in)
	out := make(Frame, len(a.smoothed))
	scale := 255 / (MaxDecibels - MinDecibels)
	for k := range a.smoothed {
		mag := cmplx.Abs(spectrum[k]) / float64(a.fftSize)
		a.smoothed[k] = a.smoothing*a.smoothed[k] + (1-a.smoothing)*mag
		out[k] = toByte(scale * (decibels(a.smoothed[k]) - MinDecibels))
	}
	return out
}

func decibels(mag float64) float64 {
	if mag <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(mag)
}

func toByte(v float64) byte {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return byte(v)
}
