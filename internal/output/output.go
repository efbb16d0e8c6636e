// Package output provides formatters for resolved schemes and desktop
// descriptions.
package output

import (
	"fmt"
	"io"

	"github.com/jmylchreest/wooftile/internal/desktop"
	"github.com/jmylchreest/wooftile/internal/theme"
)

// Formatter writes schemes and desktop descriptions.
type Formatter interface {
	// FormatScheme writes a resolved scheme.
	FormatScheme(w io.Writer, s *theme.Scheme) error

	// FormatDesktop writes a desktop description.
	FormatDesktop(w io.Writer, d *desktop.Desktop) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
	FormatTOML  FormatType = "toml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (FormatType, error) {
	switch FormatType(s) {
	case FormatPlain, FormatJSON, FormatYAML, FormatTOML:
		return FormatType(s), nil
	case "":
		return FormatPlain, nil
	default:
		return "", fmt.Errorf("unknown format %q: must be plain, json, yaml or toml", s)
	}
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts)
	case FormatYAML:
		return NewYAMLFormatter(opts)
	case FormatTOML:
		return NewTOMLFormatter(opts)
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Swatches bool // Render colour swatches in plain output
	Indent   int  // Indentation for structured formats
}

// DefaultFormatterOptions returns sensible defaults.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		Swatches: true,
		Indent:   2,
	}
}
