package desktop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/wooftile/internal/config"
	"github.com/jmylchreest/wooftile/internal/theme"
)

func testScheme() *theme.Scheme {
	return &theme.Scheme{
		Bg:         "#1d2021",
		Fg:         "#ebdbb2",
		Power1:     "#cc241d",
		Power2:     "#458588",
		Active:     "#d3869b",
		Inactive:   "#928374",
		WindowName: "#689d6a",
		GroupName:  "#a89984",
		Butter:     "#fabd2f",
	}
}

func testOptions() Options {
	return Options{
		ModKey:        "mod4",
		Terminal:      "alacritty",
		Font:          "Ubuntu Mono",
		FontSize:      12,
		Padding:       3,
		BarHeight:     24,
		BorderNormal:  "#635b59",
		BorderFocus:   "#71d75f",
		Margin:        3,
		Wallpaper:     "/home/woof/Pictures/wallpaper.jpg",
		WallpaperMode: "fill",
		WMName:        "WoofTile",
	}
}

func findWidget(t *testing.T, widgets []Widget, kind string) Widget {
	t.Helper()
	for _, w := range widgets {
		if w.Type == kind {
			return w
		}
	}
	t.Fatalf("widget %s not found", kind)
	return Widget{}
}

func TestBuild(t *testing.T) {
	d := Build(testScheme(), testOptions())

	require.Len(t, d.Screens, 1)
	screen := d.Screens[0]
	assert.Equal(t, "/home/woof/Pictures/wallpaper.jpg", screen.Wallpaper)
	assert.Equal(t, "fill", screen.WallpaperMode)
	assert.Equal(t, 24, screen.Top.Height)
	assert.Equal(t, "#1d2021", screen.Top.Background)

	assert.Len(t, d.Groups, 8)
	assert.Len(t, d.Layouts, 5)
	assert.Len(t, d.Mouse, 3)
	assert.Len(t, d.FloatRules, 6)
	assert.Equal(t, "WoofTile", d.Settings.WMName)
	assert.Equal(t, "smart", d.Settings.FocusOnWindowActivation)
	assert.Equal(t, WidgetDefaults{Font: "Ubuntu Mono", FontSize: 12, Padding: 3}, d.WidgetDefaults)

	// Window keys plus two per group
	assert.Len(t, d.Keys, len(Keys("mod4", "alacritty"))+2*len(d.Groups))
}

func TestBuild_PaletteWallpaperWins(t *testing.T) {
	s := testScheme()
	s.Wallpaper = "/palette/wall.png"

	d := Build(s, testOptions())
	assert.Equal(t, "/palette/wall.png", d.Screens[0].Wallpaper)
}

func TestWidgets_UseRoleColours(t *testing.T) {
	s := testScheme()
	widgets := Widgets(s, "alacritty")

	gb := findWidget(t, widgets, "GroupBox")
	assert.Equal(t, s.Active, gb.Params["active"])
	assert.Equal(t, s.Inactive, gb.Params["inactive"])
	assert.Equal(t, s.Power1, gb.Params["highlight_color"])
	assert.Equal(t, s.Butter, gb.Params["foreground"])
	assert.Equal(t, s.Power2, gb.Params["background"])
	assert.Equal(t, s.WindowName, gb.Params["other_current_screen_border"])

	wn := findWidget(t, widgets, "WindowName")
	assert.Equal(t, s.WindowName, wn.Params["foreground"])

	mem := findWidget(t, widgets, "Memory")
	callbacks, ok := mem.Params["mouse_callbacks"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alacritty -e htop", callbacks["Button1"])

	clock := findWidget(t, widgets, "Clock")
	assert.Equal(t, "%A, %B %d - %H:%M ", clock.Params["format"])
}

func TestWidgets_NoEmptyColours(t *testing.T) {
	for _, w := range Widgets(testScheme(), "xterm") {
		for _, key := range []string{"foreground", "background"} {
			if v, ok := w.Params[key]; ok {
				assert.NotEmpty(t, v, "%s.%s", w.Type, key)
			}
		}
	}
}

func TestGroupKeys(t *testing.T) {
	groups := Groups()
	keys := GroupKeys("mod4", groups)
	require.Len(t, keys, 16)

	assert.Equal(t, Key{
		Mods:   []string{"mod4"},
		Key:    "1",
		Action: "group.toscreen",
		Args:   []string{"code"},
		Desc:   "Switch to group code",
	}, keys[0])
	assert.Equal(t, []string{"mod4", "shift"}, keys[1].Mods)
	assert.Equal(t, "window.togroup", keys[1].Action)
	assert.Equal(t, "8", keys[15].Key)
	assert.Equal(t, []string{"bone"}, keys[15].Args)
}

func TestKeys_UniqueBindings(t *testing.T) {
	d := Build(testScheme(), testOptions())

	seen := make(map[string]bool)
	for _, k := range d.Keys {
		id := k.Key
		for _, m := range k.Mods {
			id = m + "+" + id
		}
		assert.False(t, seen[id], "duplicate binding %s", id)
		seen[id] = true
	}
}

func TestKeys_TerminalSpawn(t *testing.T) {
	for _, k := range Keys("mod4", "kitty") {
		if k.Key == "Return" && len(k.Mods) == 1 {
			assert.Equal(t, "spawn", k.Action)
			assert.Equal(t, []string{"kitty"}, k.Args)
			return
		}
	}
	t.Fatal("terminal binding not found")
}

func TestLayouts(t *testing.T) {
	layouts := Layouts(testOptions())

	names := make([]string, 0, len(layouts))
	for _, l := range layouts {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"columns", "max", "stack", "floating", "monadtall"}, names)

	assert.Empty(t, layouts[1].BorderFocus, "max has no borders")
	assert.Equal(t, 2, layouts[2].NumStacks)
	assert.Equal(t, "#71d75f", layouts[4].BorderFocus)
}

func TestGuessTerminal(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })

	lookPath = func(name string) (string, error) {
		if name == "kitty" || name == "xterm" {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
	assert.Equal(t, "kitty", GuessTerminal())

	lookPath = func(string) (string, error) { return "", errors.New("not found") }
	assert.Equal(t, "xterm", GuessTerminal())
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Desktop.Terminal = "foot"
	cfg.Desktop.Wallpaper = "/abs/wall.jpg"

	opts := OptionsFromConfig(cfg.Desktop)
	assert.Equal(t, "foot", opts.Terminal)
	assert.Equal(t, "mod4", opts.ModKey)
	assert.Equal(t, "/abs/wall.jpg", opts.Wallpaper)
	assert.Equal(t, 24, opts.BarHeight)
}
