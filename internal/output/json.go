package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/jmylchreest/wooftile/internal/desktop"
	"github.com/jmylchreest/wooftile/internal/theme"
)

// JSONFormatter formats values as indented JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// FormatScheme writes the scheme as a JSON object.
func (f *JSONFormatter) FormatScheme(w io.Writer, s *theme.Scheme) error {
	return f.encode(w, s)
}

// FormatDesktop writes the desktop description as a JSON object.
func (f *JSONFormatter) FormatDesktop(w io.Writer, d *desktop.Desktop) error {
	return f.encode(w, d)
}

func (f *JSONFormatter) encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", strings.Repeat(" ", f.opts.Indent))
	return encoder.Encode(v)
}
