package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DefaultFolder string   `koanf:"default_folder"`
	Extensions    []string `koanf:"extensions"` // audio file extensions to list, e.g. ".mp3"
	Icons         string   `koanf:"icons"`      // "nerd", "unicode", or "none"

	// SaveState keeps the last folder and volume between runs (default: true).
	SaveState *bool `koanf:"save_state"`

	// SeekStep is the arrow-key seek distance in seconds (default: 5).
	SeekStep int `koanf:"seek_step"`

	Visualizer    VisualizerConfig `koanf:"visualizer"`
	Log           LogConfig        `koanf:"log"`
	MPRIS         MPRISConfig      `koanf:"mpris"`
	Notifications NotifyConfig     `koanf:"notifications"`
}

// VisualizerConfig seeds the visualizer when no preference is saved yet.
type VisualizerConfig struct {
	Style          string   `koanf:"style"`           // "classic" or "alternative"
	Theme          string   `koanf:"theme"`           // "dhwanify", "gradient" or "white"
	OpacityScaling *bool    `koanf:"opacity_scaling"` // default: true
	Resolution     int      `koanf:"resolution"`      // 64, 128, 256, 512 or 1024
	Smoothing      *float64 `koanf:"smoothing"`       // 0.0-0.99 (default: 0.85)
	FPS            int      `koanf:"fps"`             // redraw rate (1-60, default: 30)
}

// LogConfig holds log output settings.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn" or "error" (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/dhwani/dhwani.log
}

// MPRISConfig controls the D-Bus media session.
type MPRISConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// NotifyConfig controls the now-playing desktop notification.
type NotifyConfig struct {
	Enabled *bool `koanf:"enabled"` // default: true
}

// DefaultExtensions are the audio files listed when none are configured.
var DefaultExtensions = []string{".mp3", ".wav", ".flac", ".ogg", ".m4a"}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files in order, later files overriding
// earlier ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		DefaultFolder: "", // empty means the last opened folder, then cwd
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.DefaultFolder != "" {
		cfg.DefaultFolder = expandPath(cfg.DefaultFolder)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}
	cfg.Extensions = normalizeExtensions(cfg.Extensions)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/dhwani/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "dhwani", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func normalizeExtensions(exts []string) []string {
	if len(exts) == 0 {
		return append([]string(nil), DefaultExtensions...)
	}
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	if len(out) == 0 {
		return append([]string(nil), DefaultExtensions...)
	}
	return out
}

// ShouldSaveState reports whether session state survives a restart.
func (c *Config) ShouldSaveState() bool {
	return c.SaveState == nil || *c.SaveState
}

// MPRISEnabled reports whether the D-Bus media session is registered.
func (c *Config) MPRISEnabled() bool {
	return c.MPRIS.Enabled == nil || *c.MPRIS.Enabled
}

// NotificationsEnabled reports whether track starts are announced on the desktop.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled == nil || *c.Notifications.Enabled
}

// SeekDuration returns the arrow-key seek step with its default applied.
func (c *Config) SeekDuration() time.Duration {
	if c.SeekStep <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.SeekStep) * time.Second
}

// GetVisualizerConfig returns the visualizer configuration with defaults applied.
func (c *Config) GetVisualizerConfig() VisualizerConfig {
	cfg := c.Visualizer

	if cfg.Style == "" {
		cfg.Style = "classic"
	}
	if cfg.Theme == "" {
		cfg.Theme = "dhwanify"
	}
	if cfg.OpacityScaling == nil {
		enabled := true
		cfg.OpacityScaling = &enabled
	}
	if cfg.Resolution <= 0 {
		cfg.Resolution = 256
	}
	if cfg.Smoothing == nil || *cfg.Smoothing < 0 || *cfg.Smoothing > 0.99 {
		smoothing := 0.85
		cfg.Smoothing = &smoothing
	}
	if cfg.FPS <= 0 || cfg.FPS > 60 {
		cfg.FPS = 30
	}

	return cfg
}
