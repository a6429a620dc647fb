// Package playerbar renders the now-playing panel.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/dhwani/internal/catalog"
	"github.com/llehouerou/dhwani/internal/icons"
	"github.com/llehouerou/dhwani/internal/ui/render"
	"github.com/llehouerou/dhwani/internal/ui/styles"
)

// Height is the rendered height: two content rows and the border.
const Height = 4

// State holds everything needed to render the player bar.
type State struct {
	Track    *catalog.Track
	Playing  bool
	Paused   bool
	Position time.Duration
	Duration time.Duration
	Volume   float64
	Muted    bool
}

// Render returns the player bar for the given total width.
func Render(s State, width int) string {
	if width <= 2 {
		return ""
	}
	t := styles.T()
	inner := width - 2

	top := t.S().Subtle.Render(render.Fit("nothing selected", inner))
	if s.Track != nil {
		top = renderTitle(s, inner)
	}
	bottom := renderProgress(s, inner)

	return t.Panel(false).Width(inner).Render(top + "\n" + bottom)
}

func renderTitle(s State, width int) string {
	st := styles.T().S()

	status := icons.Status(s.Playing, s.Paused)

	right := coverInfo(s.Track.AlbumArt)
	leftWidth := max(width-len([]rune(right))-1, 0)

	title := s.Track.DisplayTitle()
	if a := s.Track.Artist(); a != "" {
		title += " · " + a
	}
	left := status + " " + render.Truncate(title, max(leftWidth-2, 0))

	return render.Row(st.Playing.Render(left), st.Subtle.Render(right), width)
}

// coverInfo describes the cover image, e.g. "cover png 12 kB".
func coverInfo(art *catalog.AlbumArt) string {
	if art == nil || len(art.Data) == 0 {
		return ""
	}
	format := strings.TrimPrefix(art.Format, "image/")
	return fmt.Sprintf("cover %s %s", format, humanize.Bytes(uint64(len(art.Data))))
}

func renderProgress(s State, width int) string {
	st := styles.T().S()

	times := render.Duration(s.Position) + " / " + render.Duration(s.Duration)
	vol := volumeLabel(s.Volume, s.Muted)
	barWidth := width - len(times) - len([]rune(vol)) - 4
	if barWidth < 5 {
		return render.Row(st.Muted.Render(times), st.Muted.Render(vol), width)
	}

	filled := 0
	if s.Duration > 0 {
		filled = int(float64(barWidth) * float64(min(s.Position, s.Duration)) / float64(s.Duration))
	}
	bar := st.Playing.Render(strings.Repeat("━", filled)) +
		st.Subtle.Render(strings.Repeat("─", barWidth-filled))

	return render.Row(st.Muted.Render(times)+"  "+bar, st.Muted.Render(vol), width)
}

func volumeLabel(volume float64, muted bool) string {
	if muted {
		return "muted"
	}
	return fmt.Sprintf("vol %3d%%", int(volume*100+0.5))
}
