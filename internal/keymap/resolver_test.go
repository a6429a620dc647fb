package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	r := Default()

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"n", ActionNextTrack},
		{"J", ActionMoveItemDown},
		{"[", ActionDetailDown},
		{"}", ActionSmoothingUp},
		{"S", ActionToggleSaveState},
		{"unknown", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
		{ActionQuit, []string{"q"}, "Quit", ContextQueue},
	})
	if got := r.KeysFor(ActionQuit); !slices.Equal(got, []string{"q", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v, want [q ctrl+c]", got)
	}
	if got := r.KeysFor(ActionHelp); got != nil {
		t.Errorf("KeysFor(help) = %v, want nil", got)
	}
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionRemove, []string{"x"}, "Remove", ContextQueue},
		{ActionEnqueue, []string{"x"}, "Add", ContextTrackList},
	})
	if got := r.Resolve("x"); got != ActionEnqueue {
		t.Errorf("Resolve(x) = %q, want %q", got, ActionEnqueue)
	}
}
