package order

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/dhwani/internal/catalog"
)

func newCatalog(ids ...string) *catalog.Catalog {
	tracks := make([]catalog.Track, len(ids))
	for i, id := range ids {
		tracks[i] = catalog.Track{ID: id, Path: id}
	}
	return catalog.New(tracks...)
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name      string
		persisted []string
		catalog   []string
		want      []string
	}{
		{"no persisted order", nil, []string{"A", "B", "C"}, []string{"A", "B", "C"}},
		{"full custom order", []string{"C", "A", "B"}, []string{"A", "B", "C"}, []string{"C", "A", "B"}},
		{"stale ids dropped", []string{"X", "B", "Y"}, []string{"A", "B"}, []string{"B", "A"}},
		{"new tracks appended in catalog order", []string{"C"}, []string{"A", "B", "C", "D"}, []string{"C", "A", "B", "D"}},
		{"duplicates collapsed", []string{"B", "B", "A"}, []string{"A", "B"}, []string{"B", "A"}},
		{"empty catalog", []string{"A"}, nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.IDs(Reconcile(tt.persisted, newCatalog(tt.catalog...)))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Reconcile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReconcile_IsPermutationOfCatalog(t *testing.T) {
	cat := newCatalog("A", "B", "C", "D", "E")
	persisted := []string{"E", "gone", "C", "E", "A", "other"}

	got := catalog.IDs(Reconcile(persisted, cat))

	assert.Len(t, got, cat.Len())
	assert.ElementsMatch(t, cat.IDs(), got)
}

func TestEffective_StoreFailureFallsBackToCatalogOrder(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveOrder(context.Background(), "/music", []string{"B", "A"}))
	store.SetError(errors.New("disk gone"))

	got := catalog.IDs(Effective(context.Background(), store, "/music", newCatalog("A", "B"), nil))

	assert.Equal(t, []string{"A", "B"}, got)
}

func TestEffective_UsesPersistedOrder(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveOrder(context.Background(), "/music", []string{"B", "A"}))

	got := catalog.IDs(Effective(context.Background(), store, "/music", newCatalog("A", "B", "C"), nil))

	assert.Equal(t, []string{"B", "A", "C"}, got)
}

func TestMemoryStore_LoadUnknownFolderIsEmpty(t *testing.T) {
	store := NewMemoryStore()

	ids, err := store.LoadOrder(context.Background(), "/nowhere")

	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestMemoryStore_SaveOverwrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.SaveOrder(ctx, "/f", []string{"A", "B", "C"}))
	require.NoError(t, store.SaveOrder(ctx, "/f", []string{"C"}))

	ids, err := store.LoadOrder(ctx, "/f")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, ids)
}
