// Package playback drives the transport from the scheduler. It owns the
// scheduling state, serializes every decision, and publishes events.
package playback

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/order"
	"github.com/llehouerou/dhwani/internal/player"
	"github.com/llehouerou/dhwani/internal/schedule"
)

// Service defines the playback service contract.
type Service interface {
	// Folder and catalog
	LoadFolder(ctx context.Context, folder string, cat *catalog.Catalog) error
	Refresh(ctx context.Context, cat *catalog.Catalog) error

	// Scheduling
	Select(id string) error
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	ToggleShuffle() bool
	ToggleLoop() schedule.LoopMode
	Enqueue(id string)
	RemoveFromQueue(index int)
	Reorder(ctx context.Context, from, to int) error

	// Transport
	Play() error
	Pause()
	Toggle() error
	Stop()
	Seek(delta time.Duration)
	SeekTo(position time.Duration)
	SetVolume(level float64)
	SetMuted(muted bool)
	ToggleMute() bool

	// Queries
	State() State
	Position() time.Duration
	Duration() time.Duration
	Volume() float64
	Muted() bool
	Folder() string
	Catalog() *catalog.Catalog
	CurrentTrack() *catalog.Track
	UpcomingQueue() []catalog.Track
	UserQueue() []catalog.Track
	Order() []string
	LoopMode() schedule.LoopMode
	Shuffle() bool
	History() schedule.History
	Snapshot() schedule.State
	Player() player.Interface

	Subscribe() *Subscription
	Close() error
}

// DefaultPositionInterval is how often position updates are published while playing.
const DefaultPositionInterval = 250 * time.Millisecond

// Options configures a Service. The zero value is usable.
type Options struct {
	// Store holds custom track orders. Nil keeps orders in memory.
	Store order.Store
	// Logger receives swallowed errors. Nil discards them.
	Logger *zap.Logger
	// Shuffler permutes shuffle queues. Nil uses schedule.RandomShuffler.
	Shuffler schedule.Shuffler
	// PositionInterval overrides DefaultPositionInterval.
	PositionInterval time.Duration
}
