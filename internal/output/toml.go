package output

import (
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/wooftile/internal/desktop"
	"github.com/jmylchreest/wooftile/internal/theme"
)

// TOMLFormatter formats values as TOML documents.
type TOMLFormatter struct {
	opts FormatterOptions
}

// NewTOMLFormatter creates a new TOML formatter.
func NewTOMLFormatter(opts FormatterOptions) *TOMLFormatter {
	return &TOMLFormatter{opts: opts}
}

// FormatScheme writes the scheme as a TOML document.
func (f *TOMLFormatter) FormatScheme(w io.Writer, s *theme.Scheme) error {
	return toml.NewEncoder(w).Encode(s)
}

// FormatDesktop writes the desktop description as a TOML document.
func (f *TOMLFormatter) FormatDesktop(w io.Writer, d *desktop.Desktop) error {
	return toml.NewEncoder(w).SetIndentTables(f.opts.Indent > 0).Encode(d)
}
