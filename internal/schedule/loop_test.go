package schedule

import "testing"

func TestLoopMode_Cycle(t *testing.T) {
	tests := []struct {
		mode LoopMode
		want LoopMode
	}{
		{LoopNone, LoopTrack},
		{LoopTrack, LoopPlaylist},
		{LoopPlaylist, LoopNone},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := tt.mode.Next(); got != tt.want {
				t.Errorf("Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLoopMode(t *testing.T) {
	for _, m := range []LoopMode{LoopNone, LoopTrack, LoopPlaylist} {
		if got := ParseLoopMode(m.String()); got != m {
			t.Errorf("ParseLoopMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if got := ParseLoopMode("bogus"); got != LoopNone {
		t.Errorf("ParseLoopMode(bogus) = %v, want none", got)
	}
}
