package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/playback"
)

const (
	fallbackIcon = "audio-x-generic"
	timeoutMs    = 5000
)

// NowPlaying announces each track that starts playing, replacing the
// previous announcement.
type NowPlaying struct {
	service   playback.Service
	notifier  Notifier
	log       *zap.Logger
	thumbnail func(*catalog.AlbumArt) (string, error)

	lastID   uint32
	notified string // id of the last announced track
}

// NewNowPlaying creates an announcer for service.
func NewNowPlaying(service playback.Service, n Notifier, log *zap.Logger) *NowPlaying {
	if log == nil {
		log = zap.NewNop()
	}
	return &NowPlaying{
		service:   service,
		notifier:  n,
		log:       log.Named("notify"),
		thumbnail: Thumbnail,
	}
}

// Run consumes sub until it closes or ctx is done.
func (p *NowPlaying) Run(ctx context.Context, sub *playback.Subscription) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Done:
			return
		case e := <-sub.TrackChanged:
			p.notified = ""
			if e.Current != nil && p.service.State() == playback.StatePlaying {
				p.announce(*e.Current)
			}
		case e := <-sub.StateChanged:
			// Resuming from pause is not a new start.
			if e.Previous != playback.StateStopped || e.Current != playback.StatePlaying {
				continue
			}
			if t := p.service.CurrentTrack(); t != nil {
				p.announce(*t)
			}
		}
	}
}

func (p *NowPlaying) announce(t catalog.Track) {
	if p.notified == t.ID {
		return
	}
	p.notified = t.ID

	icon, err := p.thumbnail(t.AlbumArt)
	if err != nil {
		p.log.Debug("cover thumbnail", zap.String("path", t.Path), zap.Error(err))
	}
	if icon == "" {
		icon = fallbackIcon
	}

	id, err := p.notifier.Notify(Notification{
		Title:      t.DisplayTitle(),
		Body:       t.Artist(),
		Icon:       icon,
		Timeout:    timeoutMs,
		ReplacesID: p.lastID,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		p.log.Warn("send notification", zap.Error(err))
		return
	}
	p.lastID = id
}
