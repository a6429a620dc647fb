//nolint:goconst // test file with repeated string literals
package catalog

import (
	"errors"
	"testing"
)

func tracks(ids ...string) []Track {
	result := make([]Track, len(ids))
	for i, id := range ids {
		result[i] = Track{ID: id, Path: id, Title: id}
	}
	return result
}

func TestNew_DropsDuplicates(t *testing.T) {
	c := New(append(tracks("/a.mp3", "/b.mp3"), Track{ID: "/a.mp3", Title: "dup"})...)

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	got, err := c.Get("/a.mp3")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "/a.mp3" {
		t.Errorf("Title = %q, want first occurrence to win", got.Title)
	}
}

func TestCatalog_EmptyIsSafe(t *testing.T) {
	var nilCat *Catalog
	for name, c := range map[string]*Catalog{"nil": nilCat, "empty": New()} {
		t.Run(name, func(t *testing.T) {
			if !c.IsEmpty() {
				t.Error("IsEmpty() = false, want true")
			}
			if _, ok := c.Successor("/x.mp3"); ok {
				t.Error("Successor() ok on empty catalog")
			}
			if _, ok := c.Predecessor("/x.mp3"); ok {
				t.Error("Predecessor() ok on empty catalog")
			}
			if c.IsLast("/x.mp3") {
				t.Error("IsLast() = true on empty catalog")
			}
			if _, ok := c.At(0); ok {
				t.Error("At(0) ok on empty catalog")
			}
		})
	}
}

func TestCatalog_Get_NotFound(t *testing.T) {
	c := New(tracks("/a.mp3")...)

	_, err := c.Get("/missing.mp3")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestCatalog_SuccessorPredecessor(t *testing.T) {
	c := New(tracks("A", "B", "C")...)

	tests := []struct {
		name string
		fn   func(string) (Track, bool)
		id   string
		want string
	}{
		{"successor middle", c.Successor, "A", "B"},
		{"successor wraps", c.Successor, "C", "A"},
		{"successor unknown starts at first", c.Successor, "Z", "A"},
		{"predecessor middle", c.Predecessor, "B", "A"},
		{"predecessor wraps", c.Predecessor, "A", "C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.fn(tt.id)
			if !ok {
				t.Fatal("ok = false, want true")
			}
			if got.ID != tt.want {
				t.Errorf("got %q, want %q", got.ID, tt.want)
			}
		})
	}
}

func TestCatalog_IsLast(t *testing.T) {
	c := New(tracks("A", "B")...)

	if c.IsLast("A") {
		t.Error("IsLast(A) = true, want false")
	}
	if !c.IsLast("B") {
		t.Error("IsLast(B) = false, want true")
	}
}

func TestCatalog_TracksReturnsCopy(t *testing.T) {
	c := New(tracks("A", "B")...)

	got := c.Tracks()
	got[0].Title = "changed"

	first, _ := c.At(0)
	if first.Title != "A" {
		t.Errorf("catalog mutated through Tracks(): Title = %q", first.Title)
	}
}

func TestTrack_DisplayTitle(t *testing.T) {
	tr := Track{Path: "/music/01 - Song.flac"}
	if got := tr.DisplayTitle(); got != "01 - Song" {
		t.Errorf("DisplayTitle() = %q, want %q", got, "01 - Song")
	}
	tr.Title = "Song"
	if got := tr.DisplayTitle(); got != "Song" {
		t.Errorf("DisplayTitle() = %q, want %q", got, "Song")
	}
}

func TestTrack_Artist(t *testing.T) {
	tr := Track{Artists: []string{"One", "Two"}}
	if got := tr.Artist(); got != "One, Two" {
		t.Errorf("Artist() = %q, want %q", got, "One, Two")
	}
}
