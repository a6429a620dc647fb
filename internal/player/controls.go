package player

import (
	"time"

	"github.com/gopxl/beep/v2/speaker"
)

// Stop stops playback and releases the decoder.
func (p *Player) Stop() {
	p.mu.Lock()
	if p.state == Stopped {
		p.mu.Unlock()
		return
	}
	streamer := p.streamer
	p.streamer = nil
	p.ctrl = nil
	p.volume = nil
	p.path = ""
	p.duration = 0
	p.state = Stopped
	p.mu.Unlock()

	speaker.Clear()
	p.tap.attach(nil)
	if streamer != nil {
		streamer.Close()
	}
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Resume resumes paused playback.
func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Paused || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

// Toggle toggles between playing and paused states.
func (p *Player) Toggle() {
	switch p.State() {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped:
	}
}

// Position returns the playback position in the loaded track.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.streamer.Position()
	speaker.Unlock()
	return p.format.SampleRate.D(pos)
}

// SeekTo moves playback to pos. Requests are handled asynchronously; while
// one is pending only the newest is kept.
func (p *Player) SeekTo(pos time.Duration) {
	if p.State() == Stopped {
		return
	}
	select {
	case p.seekChan <- pos:
	default:
		select {
		case <-p.seekChan:
		default:
		}
		select {
		case p.seekChan <- pos:
		default:
		}
	}
}

func (p *Player) seekLoop() {
	for pos := range p.seekChan {
		p.doSeek(pos)
	}
}

// doSeek mutes output, moves the decoder and unmutes after seekMuteWindow.
// Seeking at or past the end counts as the track finishing.
func (p *Player) doSeek(pos time.Duration) {
	p.mu.Lock()
	if p.streamer == nil || p.volume == nil {
		p.mu.Unlock()
		return
	}
	target := max(p.format.SampleRate.N(pos), 0)
	if target >= p.streamer.Len() {
		p.mu.Unlock()
		p.signalFinished()
		return
	}

	speaker.Lock()
	p.volume.Silent = true
	_ = p.streamer.Seek(target)
	speaker.Unlock()
	p.seeking = true
	p.mu.Unlock()

	time.Sleep(seekMuteWindow)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.seeking = false
	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.volume.Silent = p.muted
	speaker.Unlock()
}
