package app

import (
	"strings"

	"github.com/llehouerou/dhwani/internal/keymap"
	"github.com/llehouerou/dhwani/internal/ui/render"
	"github.com/llehouerou/dhwani/internal/ui/styles"
)

const helpKeyWidth = 14

var contextTitles = map[keymap.Context]string{
	keymap.ContextGlobal:     "General",
	keymap.ContextPlayback:   "Playback",
	keymap.ContextTrackList:  "Tracks",
	keymap.ContextQueue:      "Queue",
	keymap.ContextVisualizer: "Visualizer",
}

// renderHelp lists every binding grouped by context.
func (m Model) renderHelp() string {
	t := styles.T()
	var lines []string
	for i, ctx := range keymap.Contexts {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.S().Playing.Render(contextTitles[ctx]))
		for _, b := range keymap.ByContext(ctx) {
			keys := make([]string, len(b.Keys))
			for j, k := range b.Keys {
				keys[j] = keyLabel(k)
			}
			lines = append(lines,
				t.S().Queued.Render(render.Fit(strings.Join(keys, "/"), helpKeyWidth))+
					t.S().Base.Render(b.Description))
		}
	}
	return t.Panel(true).Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
