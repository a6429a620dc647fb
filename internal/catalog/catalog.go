package catalog

import "errors"

// ErrNotFound is returned when a track identity is not part of the catalog.
var ErrNotFound = errors.New("track not in catalog")

// Catalog holds an ordered collection of tracks, unique by ID.
// A Catalog is never mutated after New; a folder refresh builds a new one.
type Catalog struct {
	tracks []Track
	index  map[string]int
}

// New creates a catalog from tracks in the given order.
// Duplicate IDs are dropped, the first occurrence wins.
func New(tracks ...Track) *Catalog {
	c := &Catalog{
		tracks: make([]Track, 0, len(tracks)),
		index:  make(map[string]int, len(tracks)),
	}
	for _, t := range tracks {
		if _, dup := c.index[t.ID]; dup {
			continue
		}
		c.index[t.ID] = len(c.tracks)
		c.tracks = append(c.tracks, t)
	}
	return c
}

// Len returns the number of tracks. A nil catalog is empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.tracks)
}

// IsEmpty returns true if the catalog has no tracks.
func (c *Catalog) IsEmpty() bool {
	return c.Len() == 0
}

// At returns the track at index i, or false if out of bounds.
func (c *Catalog) At(i int) (Track, bool) {
	if i < 0 || i >= c.Len() {
		return Track{}, false
	}
	return c.tracks[i], true
}

// Tracks returns a copy of all tracks.
func (c *Catalog) Tracks() []Track {
	if c == nil {
		return nil
	}
	result := make([]Track, len(c.tracks))
	copy(result, c.tracks)
	return result
}

// IDs returns the identities of all tracks in catalog order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	return IDs(c.tracks)
}

// IndexOf returns the catalog position of id, or -1.
func (c *Catalog) IndexOf(id string) int {
	if c == nil {
		return -1
	}
	i, ok := c.index[id]
	if !ok {
		return -1
	}
	return i
}

// Contains reports whether id is part of the catalog.
func (c *Catalog) Contains(id string) bool {
	return c.IndexOf(id) >= 0
}

// Get returns the track with the given id.
func (c *Catalog) Get(id string) (Track, error) {
	i := c.IndexOf(id)
	if i < 0 {
		return Track{}, ErrNotFound
	}
	return c.tracks[i], nil
}

// Successor returns the track after id, wrapping at the end.
// An id absent from the catalog resolves to the first track.
func (c *Catalog) Successor(id string) (Track, bool) {
	n := c.Len()
	if n == 0 {
		return Track{}, false
	}
	return c.tracks[(c.IndexOf(id)+1)%n], true
}

// Predecessor returns the track before id, wrapping at the start.
func (c *Catalog) Predecessor(id string) (Track, bool) {
	n := c.Len()
	if n == 0 {
		return Track{}, false
	}
	i := c.IndexOf(id)
	if i < 0 {
		i = 0
	}
	return c.tracks[(i-1+n)%n], true
}

// IsLast reports whether id is the final track in catalog order.
func (c *Catalog) IsLast(id string) bool {
	n := c.Len()
	return n > 0 && c.IndexOf(id) == n-1
}
