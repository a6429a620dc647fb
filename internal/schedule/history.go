package schedule

import "github.com/llehouerou/dhwani/internal/catalog"

// HistorySize is the maximum number of entries kept in the play history.
const HistorySize = 10

// History is a bounded back/forward stack of played tracks with a cursor.
// The zero value is empty; a non-empty History keeps 0 <= cursor < len <= HistorySize.
// History has value semantics: every operation returns a new History.
type History struct {
	entries []catalog.Track
	cursor  int
}

// NewHistory creates a history holding only first, with the cursor on it.
func NewHistory(first catalog.Track) History {
	return History{entries: []catalog.Track{first}}
}

// Len returns the number of entries.
func (h History) Len() int {
	return len(h.entries)
}

// Cursor returns the cursor position, or -1 for an empty history.
func (h History) Cursor() int {
	if len(h.entries) == 0 {
		return -1
	}
	return h.cursor
}

// Entries returns a copy of the entries, oldest first.
func (h History) Entries() []catalog.Track {
	result := make([]catalog.Track, len(h.entries))
	copy(result, h.entries)
	return result
}

// Current returns the entry under the cursor.
func (h History) Current() (catalog.Track, bool) {
	if len(h.entries) == 0 {
		return catalog.Track{}, false
	}
	return h.entries[h.cursor], true
}

// Push records t after the cursor.
// Entries after the cursor are discarded first, then the oldest entries are
// evicted so that at most HistorySize remain. The cursor ends on t.
func (h History) Push(t catalog.Track) History {
	keep := 0
	if len(h.entries) > 0 {
		keep = h.cursor + 1
	}
	entries := make([]catalog.Track, keep, keep+1)
	copy(entries, h.entries[:keep])
	entries = append(entries, t)

	if excess := len(entries) - HistorySize; excess > 0 {
		entries = entries[excess:]
	}
	return History{entries: entries, cursor: len(entries) - 1}
}

// Back moves the cursor one step towards the oldest entry, clamped at 0,
// and returns the entry now under the cursor.
func (h History) Back() (History, catalog.Track, bool) {
	if len(h.entries) == 0 {
		return h, catalog.Track{}, false
	}
	cursor := max(h.cursor-1, 0)
	return History{entries: h.entries, cursor: cursor}, h.entries[cursor], true
}

// retain keeps only entries that keep reports true for, replacing them with
// the returned track, and moves the cursor to the nearest surviving entry
// at or before its old position.
func (h History) retain(keep func(catalog.Track) (catalog.Track, bool)) History {
	var entries []catalog.Track
	cursor := -1
	for i, e := range h.entries {
		t, ok := keep(e)
		if !ok {
			continue
		}
		entries = append(entries, t)
		if i <= h.cursor {
			cursor = len(entries) - 1
		}
	}
	if len(entries) == 0 {
		return History{}
	}
	return History{entries: entries, cursor: max(cursor, 0)}
}
