// Package visualizer draws spectrum frames as terminal bars.
package visualizer

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/dhwani/internal/ui/styles"
	viz "github.com/llehouerou/dhwani/internal/visualizer"
)

const (
	// heightScale leaves headroom above a full-scale bin.
	heightScale = 0.8
	minOpacity  = 0.3
	// Bins above this level count as visible.
	visibleLevel = 0.001
	lineGlyph    = '━'
)

var (
	dhwanifyFrom = colorful.Color{R: 111.0 / 255, G: 93.0 / 255, B: 252.0 / 255}
	dhwanifyTo   = colorful.Color{R: 46.0 / 255, G: 222.0 / 255, B: 250.0 / 255}
	white        = colorful.Color{R: 1, G: 1, B: 1}

	eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
)

// Phase returns the hue rotation of the rainbow theme at t, in degrees.
// The hue cycles once every 18 seconds.
func Phase(t time.Time) float64 {
	return math.Mod(float64(t.UnixMilli())/50, 360)
}

// Render draws frame into height lines of width columns.
// Classic draws filled bars, alternative only the top edge of each bar.
func Render(frame viz.Frame, s viz.Settings, width, height int, phase float64) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	bg := styles.Color(styles.T().Background)
	bins := visibleBins(len(frame), s.Style)

	grid := make([][]string, height)
	for row := range grid {
		grid[row] = make([]string, width)
	}

	for col := range width {
		var percent float64
		bin := 0
		if bins > 0 {
			bin = col * bins / width
			percent = float64(frame[bin]) / 255
		}
		level := percent * heightScale * float64(height)
		opacity := 1.0
		if s.OpacityScaling {
			opacity = minOpacity + percent*(1-minOpacity)
		}
		top, bottom := barColors(s.Theme, bin, len(frame), phase)

		for row := range height {
			k := height - 1 - row // cells counted from the bottom
			r := glyph(s.Style, level, percent, k)
			if r == ' ' {
				grid[row][col] = " "
				continue
			}
			t := 0.0
			if level > 0 {
				t = clamp01(1 - (float64(k)+0.5)/level)
			}
			c := top.BlendRgb(bottom, t)
			c = shade(c, bg, opacity*(1-0.5*t))
			grid[row][col] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r))
		}
	}

	lines := make([]string, height)
	for row := range grid {
		lines[row] = strings.Join(grid[row], "")
	}
	return strings.Join(lines, "\n")
}

// visibleBins is how many leading bins fit the canvas. Wide bars push the
// upper bins off the right edge.
func visibleBins(n int, style viz.Style) int {
	if n == 0 {
		return 0
	}
	if style == viz.StyleAlternative {
		return max(n*2/5, 1)
	}
	return max(n/2, 1)
}

// glyph returns the character for cell k (from the bottom) of a bar.
func glyph(style viz.Style, level, percent float64, k int) rune {
	if percent <= visibleLevel {
		return ' '
	}
	full := int(level)
	frac := level - float64(full)
	if style == viz.StyleAlternative {
		top := full
		if frac == 0 && full > 0 {
			top = full - 1
		}
		if k == top {
			return lineGlyph
		}
		return ' '
	}
	switch {
	case k < full:
		return eighths[8]
	case k == full:
		return eighths[int(frac*8)]
	}
	return ' '
}

// barColors returns the colours at the top and bottom of bin's bar.
func barColors(theme viz.Theme, bin, n int, phase float64) (top, bottom colorful.Color) {
	mix := 0.0
	if n > 0 {
		mix = float64(bin) / float64(n)
	}
	switch theme {
	case viz.ThemeGradient:
		hue := math.Mod(360*mix+phase, 360)
		return colorful.Hsl(hue, 1, 0.5), colorful.Hsl(hue, 1, 0.7)
	case viz.ThemeWhite:
		return white, white
	case viz.ThemeDhwanify:
	}
	c := dhwanifyFrom.BlendRgb(dhwanifyTo, mix)
	return c, c
}

// shade fades c toward the background to emulate opacity on a terminal.
func shade(c, bg colorful.Color, opacity float64) colorful.Color {
	return bg.BlendRgb(c, clamp01(opacity)).Clamped()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
