package playback

import "time"

// watchFinished turns transport end-of-track signals into scheduler
// transitions, one at a time.
func (s *serviceImpl) watchFinished() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case <-s.player.FinishedChan():
			s.handleTrackFinished()
		}
	}
}

// monitor publishes position updates while playing and the duration once a
// newly loaded track reports one.
func (s *serviceImpl) monitor() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var lastPos, lastDur time.Duration
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
		}

		if d := s.player.Duration(); d != lastDur {
			lastDur = d
			if d > 0 {
				s.broadcast(func(sub *Subscription) {
					sub.sendDuration(DurationChange{Duration: d})
				})
			}
		}
		if s.State() != StatePlaying {
			continue
		}
		if pos := s.player.Position(); pos != lastPos {
			lastPos = pos
			s.broadcast(func(sub *Subscription) {
				sub.sendPosition(PositionChange{Position: pos})
			})
		}
	}
}
