package catalog

import (
	"slices"
	"testing"
	"time"
)

func TestSort(t *testing.T) {
	list := []Track{
		{ID: "b", Title: "beta", Duration: 3 * time.Minute},
		{ID: "a", Title: "Alpha", Duration: 5 * time.Minute},
		{ID: "c", Title: "gamma", Duration: time.Minute},
	}

	tests := []struct {
		mode SortMode
		want []string
	}{
		{SortCustom, []string{"b", "a", "c"}},
		{SortTitleAsc, []string{"a", "b", "c"}},
		{SortTitleDesc, []string{"c", "b", "a"}},
		{SortDurationAsc, []string{"c", "b", "a"}},
		{SortDurationDesc, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := IDs(Sort(list, tt.mode))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Sort(%v) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}

	if list[0].ID != "b" {
		t.Error("Sort mutated its input")
	}
}

func TestSortMode_NextCycles(t *testing.T) {
	m := SortCustom
	for range 5 {
		m = m.Next()
	}
	if m != SortCustom {
		t.Errorf("after 5 Next() = %v, want %v", m, SortCustom)
	}
}

func TestMove(t *testing.T) {
	ids := []string{"A", "B", "C", "D"}

	tests := []struct {
		name     string
		from, to int
		want     []string
		ok       bool
	}{
		{"forward", 0, 2, []string{"B", "C", "A", "D"}, true},
		{"backward", 3, 1, []string{"A", "D", "B", "C"}, true},
		{"same", 1, 1, []string{"A", "B", "C", "D"}, true},
		{"from out of range", 4, 0, nil, false},
		{"to negative", 0, -1, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Move(ids, tt.from, tt.to)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !slices.Equal(got, tt.want) {
				t.Errorf("Move() = %v, want %v", got, tt.want)
			}
		})
	}
	if !slices.Equal(ids, []string{"A", "B", "C", "D"}) {
		t.Error("Move mutated its input")
	}
}
