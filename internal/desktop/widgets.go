package desktop

import "github.com/jmylchreest/wooftile/internal/theme"

const (
	iconFont  = "Font Awesome 5 Free Solid"
	arrowSize = 43
)

func sep(padding int, fg, bg string) Widget {
	p := map[string]any{"linewidth": 0, "padding": padding}
	if fg != "" {
		p["foreground"] = fg
	}
	if bg != "" {
		p["background"] = bg
	}
	return Widget{Type: "Sep", Params: p}
}

// arrow is a powerline-style separator drawn with an icon glyph.
func arrow(glyph, fg, bg string) Widget {
	p := map[string]any{
		"font":       iconFont,
		"text":       glyph,
		"fontsize":   arrowSize,
		"padding":    0,
		"foreground": fg,
	}
	if bg != "" {
		p["background"] = bg
	}
	return Widget{Type: "TextBox", Params: p}
}

func segment(kind string, bg, fg string, extra map[string]any) Widget {
	p := map[string]any{
		"foreground": fg,
		"background": bg,
		"padding":    5,
	}
	for k, v := range extra {
		p[k] = v
	}
	return Widget{Type: kind, Params: p}
}

// Widgets returns the bar's widget list with colours taken by role.
// Segments alternate between power1 and power2 backgrounds.
func Widgets(s *theme.Scheme, terminal string) []Widget {
	return []Widget{
		sep(6, s.Fg, s.Power2),
		sep(6, s.Fg, s.Power2),
		{Type: "GroupBox", Params: map[string]any{
			"font":                        iconFont,
			"padding_y":                   5,
			"padding_x":                   3,
			"borderwidth":                 3,
			"active":                      s.Active,
			"inactive":                    s.Inactive,
			"rounded":                     false,
			"highlight_color":             s.Power1,
			"highlight_method":            "line",
			"this_current_screen_border":  s.Bg,
			"this_screen_border":          s.Power1,
			"other_current_screen_border": s.WindowName,
			"other_screen_border":         s.Bg,
			"foreground":                  s.Butter,
			"background":                  s.Power2,
		}},
		{Type: "Prompt", Params: map[string]any{
			"font":       "Ubuntu Mono",
			"padding":    10,
			"foreground": s.GroupName,
			"background": s.Power1,
		}},
		arrow("caret-right", s.Power2, ""),
		sep(40, "", ""),
		{Type: "WindowName", Params: map[string]any{
			"font":       "Ubuntu",
			"foreground": s.WindowName,
			"padding":    0,
		}},
		sep(6, "", ""),
		arrow("caret-left", s.Power2, ""),
		{Type: "Systray", Params: map[string]any{
			"background": s.Power2,
			"padding":    5,
		}},
		arrow("caret-left", s.Power1, s.Power2),
		{Type: "TextBox", Params: map[string]any{
			"text":       " 🖬",
			"foreground": s.GroupName,
			"background": s.Power1,
			"padding":    0,
			"fontsize":   14,
		}},
		segment("Memory", s.Power1, s.GroupName, map[string]any{
			"mouse_callbacks": map[string]any{
				"Button1": terminal + " -e htop",
			},
		}),
		arrow("caret-left", s.Power2, s.Power1),
		{Type: "TextBox", Params: map[string]any{
			"text":       " Vol:",
			"foreground": s.GroupName,
			"background": s.Power2,
			"padding":    0,
		}},
		segment("Volume", s.Power2, s.GroupName, nil),
		arrow("caret-left", s.Power1, s.Power2),
		segment("CurrentLayout", s.Power1, s.GroupName, nil),
		arrow("caret-left", s.Power2, s.Power1),
		{Type: "Clock", Params: map[string]any{
			"foreground": s.GroupName,
			"background": s.Power2,
			"format":     "%A, %B %d - %H:%M ",
		}},
	}
}
