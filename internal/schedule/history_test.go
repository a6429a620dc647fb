package schedule

import (
	"fmt"
	"testing"

	"github.com/llehouerou/dhwani/internal/catalog"
)

func track(id string) catalog.Track {
	return catalog.Track{ID: id, Path: id, Title: id}
}

func ids(tracks []catalog.Track) []string {
	result := make([]string, len(tracks))
	for i, t := range tracks {
		result[i] = t.ID
	}
	return result
}

func TestHistory_Empty(t *testing.T) {
	var h History
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
	if h.Cursor() != -1 {
		t.Errorf("Cursor() = %d, want -1", h.Cursor())
	}
	if _, ok := h.Current(); ok {
		t.Error("Current() ok on empty history")
	}
	if _, _, ok := h.Back(); ok {
		t.Error("Back() ok on empty history")
	}
}

func TestHistory_PushCapsAtTen(t *testing.T) {
	var h History
	for i := range 15 {
		h = h.Push(track(fmt.Sprintf("t%d", i)))
	}

	if h.Len() != HistorySize {
		t.Fatalf("Len() = %d, want %d", h.Len(), HistorySize)
	}
	if h.Cursor() != HistorySize-1 {
		t.Errorf("Cursor() = %d, want %d", h.Cursor(), HistorySize-1)
	}
	if got := h.Entries()[0].ID; got != "t5" {
		t.Errorf("oldest = %q, want t5", got)
	}
	if cur, _ := h.Current(); cur.ID != "t14" {
		t.Errorf("Current() = %q, want t14", cur.ID)
	}
}

func TestHistory_BackClampsAtOldest(t *testing.T) {
	h := NewHistory(track("a")).Push(track("b")).Push(track("c"))

	want := []string{"b", "a", "a", "a"}
	for i, w := range want {
		var got catalog.Track
		h, got, _ = h.Back()
		if got.ID != w {
			t.Errorf("Back() #%d = %q, want %q", i+1, got.ID, w)
		}
	}
	if h.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", h.Cursor())
	}
}

func TestHistory_PushAfterBackTruncatesFuture(t *testing.T) {
	h := NewHistory(track("a")).Push(track("b")).Push(track("c"))
	h, _, _ = h.Back()
	h, _, _ = h.Back()

	h = h.Push(track("d"))

	got := ids(h.Entries())
	want := []string{"a", "d"}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}
	if h.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", h.Cursor())
	}
}

func TestHistory_PushDoesNotAlias(t *testing.T) {
	base := NewHistory(track("a")).Push(track("b"))
	back, _, _ := base.Back()

	_ = back.Push(track("x"))

	if got := ids(base.Entries()); fmt.Sprint(got) != "[a b]" {
		t.Errorf("original Entries() = %v, want [a b]", got)
	}
}

func TestHistory_Retain(t *testing.T) {
	h := NewHistory(track("a")).Push(track("b")).Push(track("c")).Push(track("d"))
	h, _, _ = h.Back() // cursor on c

	h = h.retain(func(t catalog.Track) (catalog.Track, bool) {
		return t, t.ID != "c"
	})

	if got := ids(h.Entries()); fmt.Sprint(got) != "[a b d]" {
		t.Errorf("Entries() = %v, want [a b d]", got)
	}
	if cur, _ := h.Current(); cur.ID != "b" {
		t.Errorf("Current() = %q, want b", cur.ID)
	}
}
