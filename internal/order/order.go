// Package order reconciles a persisted, user-defined track order with the live catalog.
package order

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/llehouerou/dhwani/internal/catalog"
)

// Store persists a custom track order per folder.
type Store interface {
	// LoadOrder returns the persisted order for folder, or an empty slice.
	LoadOrder(ctx context.Context, folder string) ([]string, error)
	// SaveOrder overwrites the persisted order for folder.
	SaveOrder(ctx context.Context, folder string, ids []string) error
}

// Reconcile merges a persisted order with the catalog.
// Persisted ids still in the catalog come first, in persisted order; catalog
// tracks missing from the persisted order follow in catalog order. Stale and
// duplicate ids are dropped, so every catalog track appears exactly once.
func Reconcile(persisted []string, cat *catalog.Catalog) []catalog.Track {
	result := make([]catalog.Track, 0, cat.Len())
	seen := make(map[string]bool, cat.Len())

	for _, id := range persisted {
		if seen[id] {
			continue
		}
		t, err := cat.Get(id)
		if err != nil {
			continue
		}
		seen[id] = true
		result = append(result, t)
	}
	for _, t := range cat.Tracks() {
		if !seen[t.ID] {
			result = append(result, t)
		}
	}
	return result
}

// Effective loads the persisted order for folder and reconciles it with cat.
// A failing store degrades to catalog order; the error is logged, never returned.
func Effective(ctx context.Context, store Store, folder string, cat *catalog.Catalog, log *zap.Logger) []catalog.Track {
	if store == nil {
		return cat.Tracks()
	}
	persisted, err := store.LoadOrder(ctx, folder)
	if err != nil {
		if log != nil && !errors.Is(err, context.Canceled) {
			log.Warn("load track order", zap.String("folder", folder), zap.Error(err))
		}
		return cat.Tracks()
	}
	return Reconcile(persisted, cat)
}

// MemoryStore is an in-memory Store, used when no database is available and in tests.
type MemoryStore struct {
	mu     sync.Mutex
	orders map[string][]string
	err    error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[string][]string)}
}

func (s *MemoryStore) LoadOrder(_ context.Context, folder string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	ids := s.orders[folder]
	result := make([]string, len(ids))
	copy(result, ids)
	return result, nil
}

func (s *MemoryStore) SaveOrder(_ context.Context, folder string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	saved := make([]string, len(ids))
	copy(saved, ids)
	s.orders[folder] = saved
	return nil
}

// SetError makes every subsequent call fail with err (nil restores normal behavior).
func (s *MemoryStore) SetError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Verify MemoryStore implements Store at compile time.
var _ Store = (*MemoryStore)(nil)
