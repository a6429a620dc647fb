package app

import (
	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/playback"
)

func (m *Model) syncAll() {
	m.syncTracks()
	m.syncQueue()
	m.syncCurrent()
}

// syncTracks lists the catalog in the effective custom order, then applies
// the presentation sort.
func (m *Model) syncTracks() {
	cat := m.Service.Catalog()
	ids := m.Service.Order()
	tracks := make([]catalog.Track, 0, len(ids))
	for _, id := range ids {
		if t, err := cat.Get(id); err == nil {
			tracks = append(tracks, t)
		}
	}
	m.TrackList.SetTracks(catalog.Sort(tracks, m.Sort))
}

func (m *Model) syncQueue() {
	userQueue := m.Service.UserQueue()
	m.QueuePanel.SetQueue(m.Service.UpcomingQueue(), len(userQueue))
	m.QueuePanel.SetModes(m.Service.Shuffle(), m.Service.LoopMode())
	m.TrackList.SetQueued(userQueue)
}

func (m *Model) syncCurrent() {
	id := ""
	if t := m.Service.CurrentTrack(); t != nil {
		id = t.ID
	}
	m.TrackList.SetCurrent(id, m.Service.State() == playback.StatePlaying)
}
