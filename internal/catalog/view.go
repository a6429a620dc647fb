package catalog

import (
	"cmp"
	"slices"
	"strings"
)

// SortMode selects how a track list is presented.
type SortMode int

const (
	SortCustom SortMode = iota // persisted custom order, drag-reorderable
	SortTitleAsc
	SortTitleDesc
	SortDurationAsc
	SortDurationDesc
)

// String returns the sort mode label.
func (m SortMode) String() string {
	switch m {
	case SortCustom:
		return "Custom Order"
	case SortTitleAsc:
		return "Title (A-Z)"
	case SortTitleDesc:
		return "Title (Z-A)"
	case SortDurationAsc:
		return "Duration (Shortest)"
	case SortDurationDesc:
		return "Duration (Longest)"
	default:
		return "Unknown"
	}
}

// Next cycles to the following sort mode.
func (m SortMode) Next() SortMode {
	return (m + 1) % (SortDurationDesc + 1)
}

// Sort returns a sorted copy of tracks. SortCustom keeps the given order.
func Sort(tracks []Track, mode SortMode) []Track {
	result := slices.Clone(tracks)
	switch mode {
	case SortTitleAsc:
		slices.SortStableFunc(result, func(a, b Track) int {
			return strings.Compare(strings.ToLower(a.DisplayTitle()), strings.ToLower(b.DisplayTitle()))
		})
	case SortTitleDesc:
		slices.SortStableFunc(result, func(a, b Track) int {
			return strings.Compare(strings.ToLower(b.DisplayTitle()), strings.ToLower(a.DisplayTitle()))
		})
	case SortDurationAsc:
		slices.SortStableFunc(result, func(a, b Track) int {
			return cmp.Compare(a.Duration, b.Duration)
		})
	case SortDurationDesc:
		slices.SortStableFunc(result, func(a, b Track) int {
			return cmp.Compare(b.Duration, a.Duration)
		})
	case SortCustom:
	}
	return result
}

// Move returns a copy of ids with the element at from moved to to.
// Returns false if either index is out of bounds.
func Move(ids []string, from, to int) ([]string, bool) {
	if from < 0 || from >= len(ids) || to < 0 || to >= len(ids) {
		return nil, false
	}
	result := slices.Clone(ids)
	if from == to {
		return result, true
	}
	id := result[from]
	result = slices.Delete(result, from, from+1)
	result = slices.Insert(result, to, id)
	return result, true
}
