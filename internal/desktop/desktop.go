// Package desktop describes the host window manager's configuration objects:
// key bindings, groups, layouts, the bar and its widgets, screens, mouse
// bindings and float rules. It only produces data; the host owns all
// behaviour.
package desktop

import (
	"os/exec"

	"github.com/jmylchreest/wooftile/internal/config"
	"github.com/jmylchreest/wooftile/internal/theme"
)

// Key is a keyboard binding to a host command.
type Key struct {
	Mods   []string `json:"mods" yaml:"mods" toml:"mods"`
	Key    string   `json:"key" yaml:"key" toml:"key"`
	Action string   `json:"action" yaml:"action" toml:"action"`
	Args   []string `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
	Desc   string   `json:"desc,omitempty" yaml:"desc,omitempty" toml:"desc,omitempty"`
}

// Group is a workspace.
type Group struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	Layout string `json:"layout" yaml:"layout" toml:"layout"`
}

// Layout is a tiling layout and its parameters.
type Layout struct {
	Name         string `json:"name" yaml:"name" toml:"name"`
	BorderNormal string `json:"border_normal,omitempty" yaml:"border_normal,omitempty" toml:"border_normal,omitempty"`
	BorderFocus  string `json:"border_focus,omitempty" yaml:"border_focus,omitempty" toml:"border_focus,omitempty"`
	Margin       int    `json:"margin,omitempty" yaml:"margin,omitempty" toml:"margin,omitempty"`
	NumStacks    int    `json:"num_stacks,omitempty" yaml:"num_stacks,omitempty" toml:"num_stacks,omitempty"`
}

// Widget is a bar widget and its constructor parameters.
type Widget struct {
	Type   string         `json:"type" yaml:"type" toml:"type"`
	Params map[string]any `json:"params,omitempty" yaml:"params,omitempty" toml:"params,omitempty"`
}

// WidgetDefaults are parameters shared by every widget.
type WidgetDefaults struct {
	Font     string `json:"font" yaml:"font" toml:"font"`
	FontSize int    `json:"fontsize" yaml:"fontsize" toml:"fontsize"`
	Padding  int    `json:"padding" yaml:"padding" toml:"padding"`
}

// Bar is a screen-edge bar.
type Bar struct {
	Height     int      `json:"height" yaml:"height" toml:"height"`
	Background string   `json:"background" yaml:"background" toml:"background"`
	Widgets    []Widget `json:"widgets" yaml:"widgets" toml:"widgets"`
}

// Screen is a physical output.
type Screen struct {
	Wallpaper     string `json:"wallpaper,omitempty" yaml:"wallpaper,omitempty" toml:"wallpaper,omitempty"`
	WallpaperMode string `json:"wallpaper_mode,omitempty" yaml:"wallpaper_mode,omitempty" toml:"wallpaper_mode,omitempty"`
	Top           Bar    `json:"top" yaml:"top" toml:"top"`
}

// Mouse is a pointer binding.
type Mouse struct {
	Kind   string   `json:"kind" yaml:"kind" toml:"kind"` // drag or click
	Mods   []string `json:"mods" yaml:"mods" toml:"mods"`
	Button string   `json:"button" yaml:"button" toml:"button"`
	Action string   `json:"action" yaml:"action" toml:"action"`
	Start  string   `json:"start,omitempty" yaml:"start,omitempty" toml:"start,omitempty"`
}

// FloatRule matches windows that always float.
type FloatRule struct {
	WMClass string `json:"wm_class,omitempty" yaml:"wm_class,omitempty" toml:"wm_class,omitempty"`
	Title   string `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
}

// Settings are the host's global switches.
type Settings struct {
	FollowMouseFocus        bool   `json:"follow_mouse_focus" yaml:"follow_mouse_focus" toml:"follow_mouse_focus"`
	BringFrontClick         bool   `json:"bring_front_click" yaml:"bring_front_click" toml:"bring_front_click"`
	CursorWarp              bool   `json:"cursor_warp" yaml:"cursor_warp" toml:"cursor_warp"`
	AutoFullscreen          bool   `json:"auto_fullscreen" yaml:"auto_fullscreen" toml:"auto_fullscreen"`
	FocusOnWindowActivation string `json:"focus_on_window_activation" yaml:"focus_on_window_activation" toml:"focus_on_window_activation"`
	WMName                  string `json:"wmname" yaml:"wmname" toml:"wmname"`
}

// Desktop is the complete description handed to the host.
type Desktop struct {
	Keys           []Key          `json:"keys" yaml:"keys" toml:"keys"`
	Groups         []Group        `json:"groups" yaml:"groups" toml:"groups"`
	Layouts        []Layout       `json:"layouts" yaml:"layouts" toml:"layouts"`
	WidgetDefaults WidgetDefaults `json:"widget_defaults" yaml:"widget_defaults" toml:"widget_defaults"`
	Screens        []Screen       `json:"screens" yaml:"screens" toml:"screens"`
	Mouse          []Mouse        `json:"mouse" yaml:"mouse" toml:"mouse"`
	FloatRules     []FloatRule    `json:"float_rules" yaml:"float_rules" toml:"float_rules"`
	Settings       Settings       `json:"settings" yaml:"settings" toml:"settings"`
}

// Options are the literal parameters that do not come from the palette.
type Options struct {
	ModKey        string
	Terminal      string
	Font          string
	FontSize      int
	Padding       int
	BarHeight     int
	BorderNormal  string
	BorderFocus   string
	Margin        int
	Wallpaper     string
	WallpaperMode string
	WMName        string
}

// OptionsFromConfig converts the desktop config section.
// An empty terminal is auto-detected.
func OptionsFromConfig(c config.DesktopConfig) Options {
	terminal := c.Terminal
	if terminal == "" {
		terminal = GuessTerminal()
	}
	return Options{
		ModKey:        c.ModKey,
		Terminal:      terminal,
		Font:          c.Font,
		FontSize:      c.FontSize,
		Padding:       c.Padding,
		BarHeight:     c.BarHeight,
		BorderNormal:  c.BorderNormal,
		BorderFocus:   c.BorderFocus,
		Margin:        c.Margin,
		Wallpaper:     config.ExpandPath(c.Wallpaper),
		WallpaperMode: c.WallpaperMode,
		WMName:        c.WMName,
	}
}

// Build assembles the desktop description from a scheme and options.
func Build(s *theme.Scheme, opts Options) *Desktop {
	groups := Groups()

	wallpaper := opts.Wallpaper
	if s.Wallpaper != "" {
		wallpaper = s.Wallpaper
	}

	return &Desktop{
		Keys:    append(Keys(opts.ModKey, opts.Terminal), GroupKeys(opts.ModKey, groups)...),
		Groups:  groups,
		Layouts: Layouts(opts),
		WidgetDefaults: WidgetDefaults{
			Font:     opts.Font,
			FontSize: opts.FontSize,
			Padding:  opts.Padding,
		},
		Screens: []Screen{{
			Wallpaper:     wallpaper,
			WallpaperMode: opts.WallpaperMode,
			Top: Bar{
				Height:     opts.BarHeight,
				Background: s.Bg,
				Widgets:    Widgets(s, opts.Terminal),
			},
		}},
		Mouse:      MouseBindings(opts.ModKey),
		FloatRules: FloatRules(),
		Settings: Settings{
			FollowMouseFocus:        true,
			BringFrontClick:         false,
			CursorWarp:              false,
			AutoFullscreen:          true,
			FocusOnWindowActivation: "smart",
			WMName:                  opts.WMName,
		},
	}
}

// knownTerminals is searched in order by GuessTerminal.
var knownTerminals = []string{
	"roxterm", "sakura", "hyper", "alacritty", "terminator", "termite",
	"gnome-terminal", "konsole", "xfce4-terminal", "lxterminal",
	"mate-terminal", "kitty", "yakuake", "tilix", "guake", "urxvt",
	"xterm", "st",
}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// GuessTerminal returns the first known terminal on PATH, or "xterm".
func GuessTerminal() string {
	for _, t := range knownTerminals {
		if _, err := lookPath(t); err == nil {
			return t
		}
	}
	return "xterm"
}
