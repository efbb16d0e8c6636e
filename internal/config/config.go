// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/wooftile/internal/theme"
)

// Default configuration values.
const (
	DefaultModKey        = "mod4"
	DefaultFont          = "Ubuntu Mono"
	DefaultFontSize      = 12
	DefaultPadding       = 3
	DefaultBarHeight     = 24
	DefaultBorderNormal  = "#635b59"
	DefaultBorderFocus   = "#71d75f"
	DefaultMargin        = 3
	DefaultWallpaper     = "~/Pictures/wallpaper.jpg"
	DefaultWallpaperMode = "fill"
	DefaultWMName        = "WoofTile"
	DefaultMinInterval   = Duration(5 * time.Second)
	DefaultDebounce      = Duration(200 * time.Millisecond)
)

// Duration is a time.Duration that can be unmarshaled from human-readable strings.
// Supports formats like "200ms", "5s", "1m", or integer milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '200ms', '5s', '1m' or milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Config represents the wooftile configuration.
type Config struct {
	Theme   ThemeConfig   `toml:"theme"`
	Hooks   HooksConfig   `toml:"hooks"`
	Desktop DesktopConfig `toml:"desktop"`
	Notify  NotifyConfig  `toml:"notify"`
	Watch   WatchConfig   `toml:"watch"`
}

// ThemeConfig selects and resolves the colour palette.
type ThemeConfig struct {
	Palette string            `toml:"palette"` // File path or "bundled:<name>"; empty = colors.json in the config dir
	Schema  string            `toml:"schema"`  // auto, nested, flat
	Strict  bool              `toml:"strict"`  // Reject unknown top-level palette keys
	Roles   map[string]string `toml:"roles"`   // Role -> palette slot overrides
}

// HooksConfig holds the startup scripts.
type HooksConfig struct {
	Enabled   bool   `toml:"enabled"`
	Autostart string `toml:"autostart"` // Runs once per session
	Start     string `toml:"start"`     // Runs on every start, including restarts
}

// DesktopConfig holds literal parameters for the host's desktop objects.
type DesktopConfig struct {
	ModKey        string `toml:"mod_key"`
	Terminal      string `toml:"terminal"` // Auto-detected if empty
	Font          string `toml:"font"`
	FontSize      int    `toml:"font_size"`
	Padding       int    `toml:"padding"`
	BarHeight     int    `toml:"bar_height"`
	BorderNormal  string `toml:"border_normal"`
	BorderFocus   string `toml:"border_focus"`
	Margin        int    `toml:"margin"`
	Wallpaper     string `toml:"wallpaper"` // Used when the palette has none
	WallpaperMode string `toml:"wallpaper_mode"`
	WMName        string `toml:"wm_name"`
}

// NotifyConfig controls desktop notifications for reload failures.
type NotifyConfig struct {
	Enabled     bool     `toml:"enabled"`
	MinInterval Duration `toml:"min_interval"` // Minimum gap between identical notifications
}

// WatchConfig controls palette hot-reload.
type WatchConfig struct {
	Debounce Duration `toml:"debounce"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Theme: ThemeConfig{
			Schema: string(theme.SchemaAuto),
			Roles:  make(map[string]string),
		},
		Hooks: HooksConfig{
			Enabled: true,
		},
		Desktop: DesktopConfig{
			ModKey:        DefaultModKey,
			Font:          DefaultFont,
			FontSize:      DefaultFontSize,
			Padding:       DefaultPadding,
			BarHeight:     DefaultBarHeight,
			BorderNormal:  DefaultBorderNormal,
			BorderFocus:   DefaultBorderFocus,
			Margin:        DefaultMargin,
			Wallpaper:     DefaultWallpaper,
			WallpaperMode: DefaultWallpaperMode,
			WMName:        DefaultWMName,
		},
		Notify: NotifyConfig{
			Enabled:     true,
			MinInterval: DefaultMinInterval,
		},
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
	}
}

// ConfigDir returns the wooftile configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "wooftile")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultPalettePath returns the palette path used when none is configured.
func DefaultPalettePath() string {
	return filepath.Join(ConfigDir(), "colors.json")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := theme.ParseSchema(c.Theme.Schema); err != nil {
		return err
	}
	if _, err := theme.RoleMapFromStrings(c.Theme.Roles); err != nil {
		return fmt.Errorf("theme.roles: %w", err)
	}
	if c.Desktop.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %d", c.Desktop.FontSize)
	}
	if c.Desktop.BarHeight <= 0 {
		return fmt.Errorf("bar_height must be positive, got %d", c.Desktop.BarHeight)
	}
	if c.Desktop.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %d", c.Desktop.Margin)
	}
	return nil
}

// PalettePath returns the configured palette path with ~ expanded.
func (c *Config) PalettePath() string {
	if c.Theme.Palette == "" {
		return DefaultPalettePath()
	}
	if theme.IsBundled(c.Theme.Palette) {
		return c.Theme.Palette
	}
	return ExpandPath(c.Theme.Palette)
}

// ThemeOptions converts the theme section into loader options.
func (c *Config) ThemeOptions() (theme.Options, error) {
	schema, err := theme.ParseSchema(c.Theme.Schema)
	if err != nil {
		return theme.Options{}, err
	}
	roles, err := theme.RoleMapFromStrings(c.Theme.Roles)
	if err != nil {
		return theme.Options{}, err
	}
	return theme.Options{
		Schema: schema,
		Roles:  roles,
		Strict: c.Theme.Strict,
	}, nil
}

// AutostartPath returns the run-once startup script path.
func (c *Config) AutostartPath() string {
	if c.Hooks.Autostart == "" {
		return filepath.Join(ConfigDir(), "autostart.sh")
	}
	return ExpandPath(c.Hooks.Autostart)
}

// StartPath returns the every-start script path.
func (c *Config) StartPath() string {
	if c.Hooks.Start == "" {
		return filepath.Join(ConfigDir(), "start.sh")
	}
	return ExpandPath(c.Hooks.Start)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
