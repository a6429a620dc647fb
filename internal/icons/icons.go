// Package icons holds the glyphs drawn next to folder names and playback
// mode labels.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for one style. An empty icon means the
// plain label is shown alone.
type Icons struct {
	Folder  string
	Shuffle string
	LoopAll string
	LoopOne string
	Playing string
	Paused  string
	Stopped string
}

var (
	nerdIcons = Icons{
		Folder:  "\uf07b",     // nf-fa-folder
		Shuffle: "\U000f049f", // nf-md-shuffle
		LoopAll: "\U000f0456", // nf-md-repeat
		LoopOne: "\U000f0458", // nf-md-repeat_once
		Playing: "\uf04b",     // nf-fa-play
		Paused:  "\uf04c",     // nf-fa-pause
		Stopped: "\uf04d",     // nf-fa-stop
	}

	unicodeIcons = Icons{
		Folder:  "📁",
		Shuffle: "🔀",
		LoopAll: "🔁",
		LoopOne: "🔂",
		Playing: "▶",
		Paused:  "⏸",
		Stopped: "■",
	}

	noneIcons = Icons{
		Playing: "▶",
		Paused:  "⏸",
		Stopped: "■",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init selects the icon set. Call this once at startup with the config
// value; unknown styles fall back to none.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Current returns the active icon set.
func Current() Icons { return current }

// FormatDir prefixes a directory name with the folder icon.
func FormatDir(name string) string { return prefix(current.Folder, name) }

// Shuffle labels the shuffle mode.
func Shuffle(label string) string { return prefix(current.Shuffle, label) }

// LoopAll labels the loop-playlist mode.
func LoopAll(label string) string { return prefix(current.LoopAll, label) }

// LoopOne labels the loop-track mode.
func LoopOne(label string) string { return prefix(current.LoopOne, label) }

// Status returns the transport glyph for the playing and paused flags.
func Status(playing, paused bool) string {
	switch {
	case playing:
		return current.Playing
	case paused:
		return current.Paused
	default:
		return current.Stopped
	}
}

func prefix(icon, s string) string {
	if icon == "" {
		return s
	}
	return icon + " " + s
}
