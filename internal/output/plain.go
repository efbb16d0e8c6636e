package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/wooftile/internal/desktop"
	"github.com/jmylchreest/wooftile/internal/theme"
)

// PlainFormatter writes human-readable text. Colour swatches are rendered
// with lipgloss and degrade to blanks when the terminal has no colour.
type PlainFormatter struct {
	opts       FormatterOptions
	labelStyle lipgloss.Style
}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter(opts FormatterOptions) *PlainFormatter {
	return &PlainFormatter{
		opts:       opts,
		labelStyle: lipgloss.NewStyle().Width(12),
	}
}

func (f *PlainFormatter) swatch(hex string) string {
	if !f.opts.Swatches || hex == "" {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ") + " "
}

// FormatScheme writes one line per role followed by the wallpaper and source.
func (f *PlainFormatter) FormatScheme(w io.Writer, s *theme.Scheme) error {
	var sb strings.Builder
	for _, b := range s.Bindings() {
		fmt.Fprintf(&sb, "%s%s%s\n", f.labelStyle.Render(string(b.Role)), f.swatch(b.Color), b.Color)
	}
	if s.Wallpaper != "" {
		fmt.Fprintf(&sb, "%s%s\n", f.labelStyle.Render("wallpaper"), s.Wallpaper)
	}
	if s.Source != "" {
		fmt.Fprintf(&sb, "%s%s\n", f.labelStyle.Render("source"), s.Source)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatDesktop writes a summary of the description: the key table, groups,
// layouts and bar widgets.
func (f *PlainFormatter) FormatDesktop(w io.Writer, d *desktop.Desktop) error {
	var sb strings.Builder

	sb.WriteString("Keys:\n")
	for _, k := range d.Keys {
		combo := strings.Join(append(append([]string{}, k.Mods...), k.Key), "+")
		fmt.Fprintf(&sb, "  %-22s %s\n", combo, k.Desc)
	}

	sb.WriteString("Groups:\n")
	for _, g := range d.Groups {
		fmt.Fprintf(&sb, "  %-12s %s\n", g.Name, g.Layout)
	}

	sb.WriteString("Layouts:\n")
	for _, l := range d.Layouts {
		fmt.Fprintf(&sb, "  %s\n", l.Name)
	}

	for i, scr := range d.Screens {
		fmt.Fprintf(&sb, "Screen %d:\n", i)
		if scr.Wallpaper != "" {
			fmt.Fprintf(&sb, "  wallpaper  %s (%s)\n", scr.Wallpaper, scr.WallpaperMode)
		}
		fmt.Fprintf(&sb, "  bar        %dpx %s%s\n", scr.Top.Height, f.swatch(scr.Top.Background), scr.Top.Background)
		types := make([]string, 0, len(scr.Top.Widgets))
		for _, wd := range scr.Top.Widgets {
			types = append(types, wd.Type)
		}
		fmt.Fprintf(&sb, "  widgets    %s\n", strings.Join(types, ", "))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
