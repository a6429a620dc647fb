package tracklist

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/dhwani/internal/catalog"
)

func testTracks() []catalog.Track {
	mk := func(title, artist string) catalog.Track {
		return catalog.Track{
			ID:       "/m/" + title + ".mp3",
			Path:     "/m/" + title + ".mp3",
			Title:    title,
			Artists:  []string{artist},
			Duration: 3 * time.Minute,
		}
	}
	return []catalog.Track{
		mk("Yaman", "Ravi Shankar"),
		mk("Bhairavi", "Bismillah Khan"),
		mk("Darbari", "Ravi Shankar"),
	}
}

func newModel() Model {
	m := New()
	m.SetSize(60, 5)
	m.SetTracks(testTracks())
	return m
}

func TestFilter(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Yaman", "Bhairavi", "Darbari"}},
		{"ravi", []string{"Yaman", "Bhairavi", "Darbari"}},
		{"RAVI SH", []string{"Yaman", "Darbari"}},
		{"darb", []string{"Darbari"}},
		{"shankr", []string{"Yaman", "Darbari"}},
		{"nothing", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			m := newModel()
			m.SetFilter(tt.query)
			var got []string
			for _, i := range m.visible {
				got = append(got, m.tracks[i].Title)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_KeepsSelection(t *testing.T) {
	m := newModel()
	m.HandleKey("G")
	sel, _ := m.Selected()
	assert.Equal(t, "Darbari", sel.Title)

	m.SetFilter("shankar")
	sel, ok := m.Selected()
	assert.True(t, ok)
	assert.Equal(t, "Darbari", sel.Title)
	assert.Equal(t, 2, m.Position(), "position is the order index")

	m.SetFilter("bhairavi")
	sel, _ = m.Selected()
	assert.Equal(t, "Bhairavi", sel.Title)
}

func TestSetTracks_FollowsSelectedTrack(t *testing.T) {
	m := newModel()
	m.HandleKey("j")

	tracks := testTracks()
	tracks[0], tracks[1] = tracks[1], tracks[0]
	m.SetTracks(tracks)

	sel, _ := m.Selected()
	assert.Equal(t, "Bhairavi", sel.Title)
	assert.Equal(t, 0, m.Position())
}

func TestSelected_Empty(t *testing.T) {
	m := New()
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Equal(t, -1, m.Position())
}

func TestView(t *testing.T) {
	m := newModel()
	m.SetCurrent("/m/Bhairavi.mp3", true)
	m.SetQueued([]catalog.Track{testTracks()[2]})

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	assert.Len(t, lines, 5)
	for _, l := range lines {
		assert.Equal(t, 60, ansi.StringWidth(l))
	}
	assert.True(t, strings.HasPrefix(lines[1], "▶ Bhairavi"), lines[1])
	assert.Contains(t, lines[2], "[1]")
	assert.True(t, strings.HasSuffix(lines[0], "3:00"), lines[0])
}

func TestView_NoMatches(t *testing.T) {
	m := newModel()
	m.SetFilter("zzz")
	out := ansi.Strip(m.View())
	assert.Contains(t, out, `no tracks match "zzz"`)
}
