package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/playback"
	"github.com/llehouerou/dhwani/internal/player"
)

type fakeNotifier struct {
	mu   sync.Mutex
	sent []Notification
}

func (f *fakeNotifier) Notify(n Notification) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, n)
	return 7, nil
}

func (f *fakeNotifier) Close(uint32) error { return nil }

func (f *fakeNotifier) notifications() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Notification(nil), f.sent...)
}

func startNowPlaying(t *testing.T) (playback.Service, *fakeNotifier) {
	t.Helper()
	svc := playback.New(player.NewMock(), playback.Options{})
	t.Cleanup(func() { _ = svc.Close() })

	cat := catalog.New(
		catalog.Track{ID: "/m/a.mp3", Path: "/m/a.mp3", Title: "Alpha", Artists: []string{"Ann"}},
		catalog.Track{ID: "/m/b.mp3", Path: "/m/b.mp3", Title: "Bravo"},
	)
	require.NoError(t, svc.LoadFolder(context.Background(), "/m", cat))

	fake := &fakeNotifier{}
	np := NewNowPlaying(svc, fake, nil)
	np.thumbnail = func(*catalog.AlbumArt) (string, error) { return "", nil }

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go np.Run(ctx, svc.Subscribe())
	return svc, fake
}

func TestNowPlaying_AnnouncesStarts(t *testing.T) {
	svc, fake := startNowPlaying(t)

	require.NoError(t, svc.Play())
	require.Eventually(t, func() bool { return len(fake.notifications()) == 1 }, time.Second, 5*time.Millisecond)

	n := fake.notifications()[0]
	assert.Equal(t, "Alpha", n.Title)
	assert.Equal(t, "Ann", n.Body)
	assert.Equal(t, fallbackIcon, n.Icon)
	assert.Zero(t, n.ReplacesID)

	require.NoError(t, svc.Next(context.Background()))
	require.Eventually(t, func() bool { return len(fake.notifications()) == 2 }, time.Second, 5*time.Millisecond)

	n = fake.notifications()[1]
	assert.Equal(t, "Bravo", n.Title)
	assert.Equal(t, uint32(7), n.ReplacesID, "replaces the previous announcement")
}

func TestNowPlaying_ResumeIsNotAnnounced(t *testing.T) {
	svc, fake := startNowPlaying(t)

	require.NoError(t, svc.Play())
	require.Eventually(t, func() bool { return len(fake.notifications()) == 1 }, time.Second, 5*time.Millisecond)

	svc.Pause()
	require.NoError(t, svc.Play())
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, fake.notifications(), 1)
}
