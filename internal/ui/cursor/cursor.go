// Package cursor tracks a selection and scroll window over a list.
package cursor

// Cursor holds a position and the first visible row. List length and
// viewport height are passed in because both change with the window and
// the filter.
type Cursor struct {
	pos    int
	offset int
	margin int
}

// New creates a Cursor that keeps margin rows visible around the selection.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected index.
func (c Cursor) Pos() int { return c.pos }

// Offset returns the first visible index.
func (c Cursor) Offset() int { return c.offset }

// Move shifts the selection by delta, clamped to the list.
func (c *Cursor) Move(delta, n, height int) {
	c.Jump(c.pos+delta, n, height)
}

// Jump selects pos, clamped to the list, and scrolls it into view.
func (c *Cursor) Jump(pos, n, height int) {
	if n == 0 {
		c.pos, c.offset = 0, 0
		return
	}
	c.pos = min(max(pos, 0), n-1)
	c.scroll(n, height)
}

func (c *Cursor) scroll(n, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = min(max(c.offset, 0), max(n-height, 0))
}

// Visible returns the half-open range of rows to draw.
func (c Cursor) Visible(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, n)
}

// HandleKey applies list navigation keys and reports whether key was one.
func (c *Cursor) HandleKey(key string, n, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, n, height)
	case "k", "up":
		c.Move(-1, n, height)
	case "g", "home":
		c.Jump(0, n, height)
	case "G", "end":
		c.Jump(n-1, n, height)
	case "ctrl+d", "pgdown":
		c.Move(height/2, n, height)
	case "ctrl+u", "pgup":
		c.Move(-height/2, n, height)
	default:
		return false
	}
	return true
}
