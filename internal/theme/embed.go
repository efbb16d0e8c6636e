package theme

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

// EmbeddedPalettes contains all bundled palette files.
//
//go:embed palettes/*.json
var EmbeddedPalettes embed.FS

// BundledPrefix selects a bundled palette instead of a file path,
// e.g. "bundled:gruvbox".
const BundledPrefix = "bundled:"

// BundledPalettes lists all embedded palette names.
var BundledPalettes = []string{"gruvbox", "nord", "woof"}

// GetEmbeddedPalette retrieves a bundled palette document by name.
// Returns the JSON content and whether it was found.
func GetEmbeddedPalette(name string) ([]byte, bool) {
	data, err := EmbeddedPalettes.ReadFile("palettes/" + name + ".json")
	if err != nil {
		return nil, false
	}
	return data, true
}

// ListEmbeddedPalettes returns names of all embedded palettes.
func ListEmbeddedPalettes() []string {
	var names []string

	entries, err := fs.ReadDir(EmbeddedPalettes, "palettes")
	if err != nil {
		return BundledPalettes
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ext := filepath.Ext(name); ext == ".json" {
			names = append(names, strings.TrimSuffix(name, ext))
		}
	}

	return names
}

// IsBundled reports whether path refers to a bundled palette.
func IsBundled(path string) bool {
	return strings.HasPrefix(path, BundledPrefix)
}
