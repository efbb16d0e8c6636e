package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/wooftile/internal/desktop"
	"github.com/jmylchreest/wooftile/internal/theme"
)

// YAMLFormatter formats values as YAML.
type YAMLFormatter struct {
	opts FormatterOptions
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(opts FormatterOptions) *YAMLFormatter {
	return &YAMLFormatter{opts: opts}
}

// FormatScheme writes the scheme as a YAML mapping.
func (f *YAMLFormatter) FormatScheme(w io.Writer, s *theme.Scheme) error {
	return f.encode(w, s)
}

// FormatDesktop writes the desktop description as a YAML mapping.
func (f *YAMLFormatter) FormatDesktop(w io.Writer, d *desktop.Desktop) error {
	return f.encode(w, d)
}

func (f *YAMLFormatter) encode(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	if f.opts.Indent > 0 {
		encoder.SetIndent(f.opts.Indent)
	}
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
