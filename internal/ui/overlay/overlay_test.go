package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestCenter(t *testing.T) {
	base := strings.Join([]string{
		"..........",
		"..........",
		"..........",
		"..........",
	}, "\n")

	got := strings.Split(Center(base, "ab\ncd", 10, 4), "\n")
	want := []string{
		"..........",
		"....ab....",
		"....cd....",
		"..........",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCenter_StyledBase(t *testing.T) {
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000"))
	base := red.Render("xxxxxx") + "\n" + red.Render("xxxxxx")

	got := Center(base, "O", 6, 2)
	lines := strings.Split(got, "\n")
	if plain := ansi.Strip(lines[0]); plain != "xxOxxx" {
		t.Errorf("line 0 = %q, want %q", plain, "xxOxxx")
	}
	if w := ansi.StringWidth(lines[0]); w != 6 {
		t.Errorf("line 0 width = %d, want 6", w)
	}
}

func TestCenter_ShortBase(t *testing.T) {
	got := Center("", "hi", 4, 3)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[1] != " hi " {
		t.Errorf("line 1 = %q, want %q", lines[1], " hi ")
	}
}
