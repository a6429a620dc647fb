package playback

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/order"
	"github.com/llehouerou/dhwani/internal/player"
	"github.com/llehouerou/dhwani/internal/schedule"
)

var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	// mu serializes scheduling decisions, including the order lookup in Previous.
	mu sync.Mutex

	player player.Interface
	store  order.Store
	log    *zap.Logger

	sched  schedule.State
	folder string
	order  []string
	// loaded is the id of the track handed to the transport, empty when none.
	loaded string

	subs   []*Subscription
	subsMu sync.RWMutex

	interval time.Duration
	done     chan struct{}
	wg       sync.WaitGroup
	closed   bool
}

// New creates a playback service driving p and starts its background
// watchers. Close stops them.
func New(p player.Interface, opts Options) Service {
	if opts.Store == nil {
		opts.Store = order.NewMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.PositionInterval <= 0 {
		opts.PositionInterval = DefaultPositionInterval
	}

	s := &serviceImpl{
		player:   p,
		store:    opts.Store,
		log:      opts.Logger.Named("playback"),
		sched:    schedule.New(opts.Shuffler),
		interval: opts.PositionInterval,
		done:     make(chan struct{}),
	}
	s.wg.Add(2)
	go s.watchFinished()
	go s.monitor()
	return s
}

// State returns the current playback state.
func (s *serviceImpl) State() State {
	return fromPlayerState(s.player.State())
}

// Position returns the current playback position.
func (s *serviceImpl) Position() time.Duration {
	return s.player.Position()
}

// Duration returns the current track duration.
func (s *serviceImpl) Duration() time.Duration {
	return s.player.Duration()
}

func (s *serviceImpl) Volume() float64 { return s.player.Volume() }

func (s *serviceImpl) Muted() bool { return s.player.Muted() }

func (s *serviceImpl) Player() player.Interface { return s.player }

func (s *serviceImpl) Folder() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.folder
}

func (s *serviceImpl) Catalog() *catalog.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched.Catalog()
}

// CurrentTrack returns a copy of the current track, or nil if none.
func (s *serviceImpl) CurrentTrack() *catalog.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked()
}

func (s *serviceImpl) currentLocked() *catalog.Track {
	t, ok := s.sched.Current()
	if !ok {
		return nil
	}
	return &t
}

// UpcomingQueue returns the user queue followed by the shuffle queue.
func (s *serviceImpl) UpcomingQueue() []catalog.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched.Upcoming()
}

func (s *serviceImpl) UserQueue() []catalog.Track {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched.UserQueue()
}

// Order returns the effective custom order of the current folder.
func (s *serviceImpl) Order() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

func (s *serviceImpl) LoopMode() schedule.LoopMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched.Loop()
}

func (s *serviceImpl) Shuffle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched.Shuffle()
}

func (s *serviceImpl) History() schedule.History {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched.History()
}

// Snapshot returns the scheduler state. It is a value and safe to keep.
func (s *serviceImpl) Snapshot() schedule.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched
}

// Subscribe creates a new event subscription.
func (s *serviceImpl) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	select {
	case <-s.done:
		sub.close()
		return sub
	default:
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Close stops the background watchers and closes every subscription.
// The transport is left as is.
func (s *serviceImpl) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.done)
	s.mu.Unlock()

	s.wg.Wait()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()
	return nil
}

func (s *serviceImpl) broadcast(fn func(*Subscription)) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for _, sub := range s.subs {
		fn(sub)
	}
}

func (s *serviceImpl) emitState(prev State) {
	cur := s.State()
	if cur == prev {
		return
	}
	s.broadcast(func(sub *Subscription) {
		sub.sendState(StateChange{Previous: prev, Current: cur})
	})
}

func (s *serviceImpl) emitTrack(prev, cur *catalog.Track) {
	if prev == nil && cur == nil {
		return
	}
	if prev != nil && cur != nil && prev.ID == cur.ID {
		return
	}
	s.broadcast(func(sub *Subscription) {
		sub.sendTrack(TrackChange{Previous: prev, Current: cur})
	})
}

// emitQueueLocked publishes the queues and order. Callers hold s.mu.
func (s *serviceImpl) emitQueueLocked() {
	e := QueueChange{
		Upcoming:     s.sched.Upcoming(),
		UserQueueLen: len(s.sched.UserQueue()),
		Order:        append([]string(nil), s.order...),
	}
	s.broadcast(func(sub *Subscription) { sub.sendQueue(e) })
}

func (s *serviceImpl) emitModeLocked() {
	e := ModeChange{Loop: s.sched.Loop(), Shuffle: s.sched.Shuffle()}
	s.broadcast(func(sub *Subscription) { sub.sendMode(e) })
}

func (s *serviceImpl) emitError(op, path string, err error) {
	s.log.Warn(op, zap.String("path", path), zap.Error(err))
	s.broadcast(func(sub *Subscription) {
		sub.sendError(ErrorEvent{Operation: op, Path: path, Err: err})
	})
}
