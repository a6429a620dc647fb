package tags

import (
	"slices"
	"testing"
)

func TestTag_Year(t *testing.T) {
	tests := []struct {
		name string
		date string
		want int
	}{
		{"empty", "", 0},
		{"year only", "2023", 2023},
		{"full date", "2023-06-15", 2023},
		{"invalid", "invalid", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := &Tag{Date: tt.date}
			if got := tag.Year(); got != tt.want {
				t.Errorf("Year() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSplitArtists(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"Asha Bhosle", []string{"Asha Bhosle"}},
		{"Asha Bhosle; Kishore Kumar", []string{"Asha Bhosle", "Kishore Kumar"}},
		{"A/B", []string{"A", "B"}},
		{"A, B; C", []string{"A", "B", "C"}},
		{"Various Artists", nil},
		{"various artists; Lata Mangeshkar", []string{"Lata Mangeshkar"}},
		{" ; ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SplitArtists(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("SplitArtists(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTag_Finish(t *testing.T) {
	tag := &Tag{Title: "  Padded  ", Artist: "X; Y"}
	tag.finish()
	if tag.Title != "Padded" {
		t.Errorf("Title = %q, want trimmed", tag.Title)
	}
	if tag.AlbumArtist != "X; Y" {
		t.Errorf("AlbumArtist = %q, want artist fallback", tag.AlbumArtist)
	}
	if !slices.Equal(tag.Artists, []string{"X", "Y"}) {
		t.Errorf("Artists = %q, want [X Y]", tag.Artists)
	}

	preset := &Tag{Artist: "ignored", Artists: []string{"Various Artists", "Z"}}
	preset.finish()
	if !slices.Equal(preset.Artists, []string{"Z"}) {
		t.Errorf("Artists = %q, want [Z]", preset.Artists)
	}
}

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"song.flac", true},
		{"song.opus", true},
		{"song.ogg", true},
		{"song.m4a", true},
		{"song.wav", true},
		{"song.txt", false},
		{"song", false},
		{"/path/to/music.flac", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsMusicFile(tt.path); got != tt.want {
				t.Errorf("IsMusicFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
