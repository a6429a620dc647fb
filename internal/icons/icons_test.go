package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to none", "", noneIcons},
		{"unknown style defaults to none", "invalid", noneIcons},
		{"case sensitive", "NERD", noneIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if Current() != tt.expected {
				t.Errorf("Init(%q) selected %+v", tt.style, Current())
			}
		})
	}

	Init("none")
}

func TestLabels(t *testing.T) {
	tests := []struct {
		style   string
		dir     string
		shuffle string
		loopOne string
	}{
		{"none", "music", "shuffle", "loop one"},
		{"unicode", "📁 music", "🔀 shuffle", "🔂 loop one"},
		{"nerd", "\uf07b music", "\U000f049f shuffle", "\U000f0458 loop one"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			Init(tt.style)
			defer Init("none")

			if got := FormatDir("music"); got != tt.dir {
				t.Errorf("FormatDir() = %q, want %q", got, tt.dir)
			}
			if got := Shuffle("shuffle"); got != tt.shuffle {
				t.Errorf("Shuffle() = %q, want %q", got, tt.shuffle)
			}
			if got := LoopOne("loop one"); got != tt.loopOne {
				t.Errorf("LoopOne() = %q, want %q", got, tt.loopOne)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	Init("none")
	tests := []struct {
		playing, paused bool
		want            string
	}{
		{true, false, "▶"},
		{false, true, "⏸"},
		{false, false, "■"},
	}
	for _, tt := range tests {
		if got := Status(tt.playing, tt.paused); got != tt.want {
			t.Errorf("Status(%v, %v) = %q, want %q", tt.playing, tt.paused, got, tt.want)
		}
	}
}
