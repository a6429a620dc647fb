// Package overlay draws popups on top of a rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Center draws box in the middle of base. base is width columns wide and
// height lines tall; box lines replace the base cells they cover and the
// rest of each base line keeps its styling.
func Center(base, box string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	boxLines := strings.Split(box, "\n")

	boxWidth := 0
	for _, l := range boxLines {
		boxWidth = max(boxWidth, ansi.StringWidth(l))
	}
	top := max((height-len(boxLines))/2, 0)
	left := max((width-boxWidth)/2, 0)

	for i, line := range boxLines {
		row := top + i
		if row >= len(baseLines) {
			break
		}
		baseLine := baseLines[row]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}
		end := left + ansi.StringWidth(line)
		baseLines[row] = ansi.Cut(baseLine, 0, left) + line + ansi.Cut(baseLine, end, width)
	}
	return strings.Join(baseLines, "\n")
}
