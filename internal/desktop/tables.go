package desktop

import "strconv"

// Keys returns the window, layout and session bindings.
func Keys(mod, terminal string) []Key {
	m := []string{mod}
	shift := []string{mod, "shift"}
	ctrl := []string{mod, "control"}

	return []Key{
		// Focus
		{Mods: m, Key: "h", Action: "layout.left", Desc: "Move focus to left"},
		{Mods: m, Key: "l", Action: "layout.right", Desc: "Move focus to right"},
		{Mods: m, Key: "j", Action: "layout.down", Desc: "Move focus down"},
		{Mods: m, Key: "k", Action: "layout.up", Desc: "Move focus up"},
		{Mods: m, Key: "space", Action: "layout.next", Desc: "Move window focus to other window"},

		// Move windows between columns or within a stack
		{Mods: shift, Key: "h", Action: "layout.shuffle_left", Desc: "Move window to the left"},
		{Mods: shift, Key: "l", Action: "layout.shuffle_right", Desc: "Move window to the right"},
		{Mods: shift, Key: "j", Action: "layout.shuffle_down", Desc: "Move window down"},
		{Mods: shift, Key: "k", Action: "layout.shuffle_up", Desc: "Move window up"},

		// Grow
		{Mods: ctrl, Key: "h", Action: "layout.grow_left", Desc: "Grow window to the left"},
		{Mods: ctrl, Key: "l", Action: "layout.grow_right", Desc: "Grow window to the right"},
		{Mods: ctrl, Key: "j", Action: "layout.grow_down", Desc: "Grow window down"},
		{Mods: ctrl, Key: "k", Action: "layout.grow_up", Desc: "Grow window up"},
		{Mods: m, Key: "n", Action: "layout.normalize", Desc: "Reset all window sizes"},

		{Mods: shift, Key: "Return", Action: "layout.toggle_split", Desc: "Toggle between split and unsplit sides of stack"},
		{Mods: m, Key: "Return", Action: "spawn", Args: []string{terminal}, Desc: "Launch terminal"},

		{Mods: m, Key: "Tab", Action: "next_layout", Desc: "Toggle between layouts"},
		{Mods: m, Key: "w", Action: "window.kill", Desc: "Kill focused window"},

		{Mods: ctrl, Key: "r", Action: "restart", Desc: "Restart the window manager"},
		{Mods: ctrl, Key: "q", Action: "shutdown", Desc: "Shutdown the window manager"},
		{Mods: m, Key: "r", Action: "spawn", Args: []string{"rofi -show run"}, Desc: "Spawn a command using rofi"},
		{Mods: m, Key: "t", Action: "spawncmd", Desc: "Spawn a command using a prompt widget"},
	}
}

// GroupKeys binds mod+N to show group N and mod+shift+N to move the
// focused window there.
func GroupKeys(mod string, groups []Group) []Key {
	keys := make([]Key, 0, 2*len(groups))
	for i, g := range groups {
		n := strconv.Itoa(i + 1)
		keys = append(keys,
			Key{
				Mods:   []string{mod},
				Key:    n,
				Action: "group.toscreen",
				Args:   []string{g.Name},
				Desc:   "Switch to group " + g.Name,
			},
			Key{
				Mods:   []string{mod, "shift"},
				Key:    n,
				Action: "window.togroup",
				Args:   []string{g.Name},
				Desc:   "Move focused window to group " + g.Name,
			},
		)
	}
	return keys
}

// Groups returns the named workspaces. Names are Font Awesome icon names.
func Groups() []Group {
	return []Group{
		{Name: "code", Layout: "monadtall"},
		{Name: "wifi", Layout: "monadtall"},
		{Name: "box", Layout: "monadtall"},
		{Name: "headset", Layout: "monadtall"},
		{Name: "comment", Layout: "monadtall"},
		{Name: "file-word", Layout: "monadtall"},
		{Name: "gamepad", Layout: "max"},
		{Name: "bone", Layout: "monadtall"},
	}
}

// Layouts returns the available layouts in cycling order.
func Layouts(opts Options) []Layout {
	bordered := func(name string) Layout {
		return Layout{
			Name:         name,
			BorderNormal: opts.BorderNormal,
			BorderFocus:  opts.BorderFocus,
			Margin:       opts.Margin,
		}
	}

	stack := bordered("stack")
	stack.NumStacks = 2

	return []Layout{
		bordered("columns"),
		{Name: "max"},
		stack,
		bordered("floating"),
		bordered("monadtall"),
	}
}

// MouseBindings returns the floating-window pointer bindings.
func MouseBindings(mod string) []Mouse {
	m := []string{mod}
	return []Mouse{
		{Kind: "drag", Mods: m, Button: "Button1", Action: "window.set_position_floating", Start: "window.get_position"},
		{Kind: "drag", Mods: m, Button: "Button3", Action: "window.set_size_floating", Start: "window.get_size"},
		{Kind: "click", Mods: m, Button: "Button2", Action: "window.bring_to_front"},
	}
}

// FloatRules returns the windows that always float, on top of the host's
// own defaults.
func FloatRules() []FloatRule {
	return []FloatRule{
		{WMClass: "confirmreset"},
		{WMClass: "makebranch"},
		{WMClass: "maketag"},
		{WMClass: "ssh-askpass"},
		{Title: "branchdialog"},
		{Title: "pinentry"},
	}
}
