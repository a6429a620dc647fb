package player

import (
	"sync"

	"github.com/gopxl/beep/v2"
)

// Tap copies a mono mix of everything it streams into a ring buffer.
// It sits between the volume effect and the speaker, so analysis sees what
// is actually heard.
type Tap struct {
	mu     sync.Mutex
	source beep.Streamer
	buf    []float64
	pos    int
	filled int
}

// NewTap creates a tap keeping the last size samples.
func NewTap(size int) *Tap {
	return &Tap{buf: make([]float64, max(size, 1))}
}

// attach routes source through the tap. A nil source detaches it.
func (t *Tap) attach(source beep.Streamer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.source = source
}

// Attached reports whether audio is currently routed through the tap.
func (t *Tap) Attached() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.source != nil
}

// Stream implements beep.Streamer.
func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.source == nil {
		return 0, false
	}
	n, ok := t.source.Stream(samples)
	t.write(samples[:n])
	return n, ok
}

func (t *Tap) write(samples [][2]float64) {
	for _, s := range samples {
		t.buf[t.pos] = (s[0] + s[1]) / 2
		t.pos = (t.pos + 1) % len(t.buf)
	}
	t.filled = min(t.filled+len(samples), len(t.buf))
}

// Err implements beep.Streamer.
func (t *Tap) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.source == nil {
		return nil
	}
	return t.source.Err()
}

// Samples returns the last n samples, oldest first. Positions never written
// are zero.
func (t *Tap) Samples(n int) []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	n = min(n, len(t.buf))
	out := make([]float64, n)
	start := (t.pos - n + len(t.buf)) % len(t.buf)
	for i := range out {
		out[i] = t.buf[(start+i)%len(t.buf)]
	}
	return out
}

// Reset clears the captured samples.
func (t *Tap) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.buf)
	t.pos, t.filled = 0, 0
}
