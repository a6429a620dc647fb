// Package player wraps the beep speaker into a single-track transport with
// volume control and a sample tap for visualization.
package player

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	// seekMuteWindow silences output after a seek so the stale buffer is not heard.
	seekMuteWindow = 200 * time.Millisecond
	// startupDelay lets a pending beep callback run after speaker.Clear.
	startupDelay = 10 * time.Millisecond
	// TapSize is the number of mono samples kept for analysis, enough for the
	// largest analyzer window.
	TapSize = 4096
)

var (
	speakerMu         sync.Mutex
	speakerInitialized bool
	speakerRate       beep.SampleRate
)

// Player plays one audio file at a time through the default output device.
type Player struct {
	mu          sync.Mutex
	state       State
	path        string
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	streamer    beep.StreamSeekCloser
	format      beep.Format
	duration    time.Duration
	volumeLevel float64
	muted       bool
	seeking     bool

	tap        *Tap
	finishedCh chan struct{}
	seekChan   chan time.Duration
}

// New creates a stopped player at full volume.
func New() *Player {
	p := &Player{
		state:       Stopped,
		volumeLevel: 1.0,
		tap:         NewTap(TapSize),
		finishedCh:  make(chan struct{}, 1),
		seekChan:    make(chan time.Duration, 1),
	}
	go p.seekLoop()
	return p
}

// Play stops the current track and starts path from the beginning.
func (p *Player) Play(path string) error {
	p.Stop()
	time.Sleep(startupDelay)

	// Drain a stale finish signal from the previous track
	select {
	case <-p.finishedCh:
	default:
	}

	streamer, format, err := Decode(path)
	if err != nil {
		return err
	}
	rate, err := initSpeaker(format.SampleRate)
	if err != nil {
		streamer.Close()
		return err
	}

	var out beep.Streamer = streamer
	if format.SampleRate != rate {
		out = beep.Resample(4, format.SampleRate, rate, streamer)
	}

	p.mu.Lock()
	p.path = path
	p.streamer = streamer
	p.format = format
	p.duration = format.SampleRate.D(streamer.Len())
	p.ctrl = &beep.Ctrl{Streamer: out}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.muted,
	}
	p.state = Playing
	source := p.volume
	p.mu.Unlock()

	p.tap.attach(source)
	speaker.Play(beep.Seq(p.tap, beep.Callback(p.signalFinished)))
	return nil
}

// signalFinished runs on the speaker goroutine when the track is exhausted.
func (p *Player) signalFinished() {
	select {
	case p.finishedCh <- struct{}{}:
	default:
	}
}

func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return speakerRate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, err
	}
	speakerInitialized = true
	speakerRate = rate
	return rate, nil
}

// State returns the transport state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Duration returns the length of the loaded track.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duration
}

// FinishedChan receives once each time a track plays to its end.
func (p *Player) FinishedChan() <-chan struct{} {
	return p.finishedCh
}

// Tap returns the analysis tap. It stays the same across tracks.
func (p *Player) Tap() *Tap {
	return p.tap
}
