package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal colour gradient, one colour
// per grapheme cluster.
func ApplyGradient(text string, from, to lipgloss.Color, bold bool) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	colors := Blend(len(clusters), Color(from), Color(to))

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i].Hex()))
		if bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// Blend returns size colours from a to b, blended in HCL space.
func Blend(size int, a, b colorful.Color) []colorful.Color {
	if size < 1 {
		return nil
	}
	if size == 1 {
		return []colorful.Color{a}
	}
	out := make([]colorful.Color, size)
	out[0], out[size-1] = a, b
	for i := 1; i < size-1; i++ {
		out[i] = a.BlendHcl(b, float64(i)/float64(size-1)).Clamped()
	}
	return out
}

// Color converts a hex lipgloss colour. ANSI palette indices fall back to gray.
func Color(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return col
}
