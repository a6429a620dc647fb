package visualizer

import "slices"

// Style selects how bins are drawn.
type Style string

const (
	StyleClassic     Style = "classic"
	StyleAlternative Style = "alternative"
)

// Theme selects the bar colours.
type Theme string

const (
	ThemeDhwanify Theme = "dhwanify"
	ThemeGradient Theme = "gradient"
	ThemeWhite    Theme = "white"
)

var (
	styles = []Style{StyleClassic, StyleAlternative}
	themes = []Theme{ThemeDhwanify, ThemeGradient, ThemeWhite}
)

// Settings are the user-facing visualizer preferences.
type Settings struct {
	Style          Style
	Theme          Theme
	OpacityScaling bool
	Resolution     int
	Smoothing      float64
}

// DefaultSettings returns the settings used when nothing is saved.
func DefaultSettings() Settings {
	return Settings{
		Style:          StyleClassic,
		Theme:          ThemeDhwanify,
		OpacityScaling: true,
		Resolution:     256,
		Smoothing:      0.85,
	}
}

// Normalize replaces unknown or out-of-range fields with their defaults.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	if slices.Index(styles, s.Style) < 0 {
		s.Style = def.Style
	}
	if slices.Index(themes, s.Theme) < 0 {
		s.Theme = def.Theme
	}
	if !ValidResolution(s.Resolution) {
		s.Resolution = def.Resolution
	}
	s.Smoothing = ClampSmoothing(s.Smoothing)
	return s
}

// NextStyle cycles through the drawing styles.
func (s Settings) NextStyle() Settings {
	s.Style = styles[(slices.Index(styles, s.Style)+1)%len(styles)]
	return s
}

// NextTheme cycles through the colour themes.
func (s Settings) NextTheme() Settings {
	s.Theme = themes[(slices.Index(themes, s.Theme)+1)%len(themes)]
	return s
}

// Label returns the display name of the theme.
func (t Theme) Label() string {
	switch t {
	case ThemeGradient:
		return "Rainbow"
	case ThemeWhite:
		return "White"
	default:
		return "Dhwanify"
	}
}

// ResolutionForLevel maps a detail slider level 1..5 to a bin count.
// Levels outside the range are clamped.
func ResolutionForLevel(level int) int {
	level = min(max(level, 1), len(Resolutions))
	return Resolutions[level-1]
}

// LevelForResolution maps a bin count back to its slider level, or 0 if the
// resolution is not supported.
func LevelForResolution(r int) int {
	return slices.Index(Resolutions, r) + 1
}
