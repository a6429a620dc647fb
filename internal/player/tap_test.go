package player

import (
	"slices"
	"testing"

	"github.com/gopxl/beep/v2"
)

// rampStreamer emits frames whose left and right values encode their index.
type rampStreamer struct {
	next int
	len  int
}

func (r *rampStreamer) Stream(samples [][2]float64) (int, bool) {
	n := 0
	for n < len(samples) && r.next < r.len {
		v := float64(r.next)
		samples[n] = [2]float64{v, v + 2}
		r.next++
		n++
	}
	return n, n > 0
}

func (r *rampStreamer) Err() error { return nil }

var _ beep.Streamer = (*rampStreamer)(nil)

func TestTap_DetachedProducesNothing(t *testing.T) {
	tap := NewTap(8)
	buf := make([][2]float64, 4)

	n, ok := tap.Stream(buf)
	if n != 0 || ok {
		t.Errorf("Stream() = %d, %v, want 0, false", n, ok)
	}
	if tap.Attached() {
		t.Error("Attached() = true, want false")
	}
}

func TestTap_CapturesMonoMix(t *testing.T) {
	tap := NewTap(8)
	tap.attach(&rampStreamer{len: 100})
	buf := make([][2]float64, 5)

	n, ok := tap.Stream(buf)
	if n != 5 || !ok {
		t.Fatalf("Stream() = %d, %v, want 5, true", n, ok)
	}
	if buf[4] != [2]float64{4, 6} {
		t.Errorf("passthrough frame = %v, want [4 6]", buf[4])
	}

	got := tap.Samples(3)
	want := []float64{3, 4, 5} // (i + i+2) / 2
	if !slices.Equal(got, want) {
		t.Errorf("Samples(3) = %v, want %v", got, want)
	}
}

func TestTap_RingWrapsAround(t *testing.T) {
	tap := NewTap(4)
	tap.attach(&rampStreamer{len: 100})
	buf := make([][2]float64, 6)
	tap.Stream(buf)

	got := tap.Samples(10)
	want := []float64{3, 4, 5, 6}
	if !slices.Equal(got, want) {
		t.Errorf("Samples(10) = %v, want %v", got, want)
	}
}

func TestTap_UnwrittenPositionsAreZero(t *testing.T) {
	tap := NewTap(4)
	tap.attach(&rampStreamer{len: 1})
	tap.Stream(make([][2]float64, 4))

	got := tap.Samples(4)
	want := []float64{0, 0, 0, 1}
	if !slices.Equal(got, want) {
		t.Errorf("Samples(4) = %v, want %v", got, want)
	}

	tap.Reset()
	if got := tap.Samples(4); !slices.Equal(got, []float64{0, 0, 0, 0}) {
		t.Errorf("Samples after Reset = %v, want zeros", got)
	}
}
