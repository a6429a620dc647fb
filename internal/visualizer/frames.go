package visualizer

import "iter"

// DecayFactor scales the previous frame on every pull while playback is
// stopped, so bars fall off instead of vanishing.
const DecayFactor = 0.9

// Frame holds one byte magnitude per frequency bin, low to high.
type Frame []byte

// Silent reports whether no bin is visible.
func (f Frame) Silent() bool {
	for _, v := range f {
		if v > 0 {
			return false
		}
	}
	return true
}

// Peak returns the largest bin value.
func (f Frame) Peak() byte {
	var peak byte
	for _, v := range f {
		peak = max(peak, v)
	}
	return peak
}

// Next produces the frame for the current instant. It returns false once
// there is nothing left to draw: the pipeline is uninitialized, or playback
// is stopped and the last frame has fully decayed.
func (p *Pipeline) Next() (Frame, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.analyzer == nil {
		return nil, false
	}

	if p.state == Active && p.playing() {
		f := p.analyzer.Analyze(p.source.Samples(p.analyzer.FFTSize()))
		p.last = f
		return clone(f), true
	}

	if p.last == nil {
		p.last = make(Frame, p.analyzer.Resolution())
		return clone(p.last), true
	}
	if p.last.Silent() {
		return nil, false
	}
	for i, v := range p.last {
		p.last[i] = byte(float64(v) * DecayFactor)
	}
	return clone(p.last), true
}

// Frames yields one frame per pull until Next reports nothing left to draw.
// A finished sequence is not restarted; call Frames again when playback
// resumes.
func (p *Pipeline) Frames() iter.Seq[Frame] {
	return func(yield func(Frame) bool) {
		for {
			f, ok := p.Next()
			if !ok || !yield(f) {
				return
			}
		}
	}
}

func clone(f Frame) Frame {
	return append(Frame(nil), f...)
}
