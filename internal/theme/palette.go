package theme

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Schema identifies the layout of a palette document.
type Schema string

const (
	// SchemaAuto picks nested when the document has "colors" or "special",
	// flat otherwise.
	SchemaAuto Schema = "auto"
	// SchemaNested is the pywal layout: "special" and "colors" sub-objects.
	SchemaNested Schema = "nested"
	// SchemaFlat is a single object mapping slot names to colours.
	SchemaFlat Schema = "flat"
)

// ParseSchema converts a configuration string into a Schema.
func ParseSchema(s string) (Schema, error) {
	switch Schema(s) {
	case "", SchemaAuto:
		return SchemaAuto, nil
	case SchemaNested, SchemaFlat:
		return Schema(s), nil
	default:
		return "", fmt.Errorf("unknown palette schema %q: must be auto, nested or flat", s)
	}
}

const (
	keySpecial   = "special"
	keyColors    = "colors"
	keyWallpaper = "wallpaper"
)

// Palette is the raw colour data read from a theme file.
type Palette struct {
	Schema    Schema
	Special   map[string]string // background, foreground, cursor
	Colors    map[string]string // color0..color15, or role-named slots when flat
	Wallpaper string
}

// Slot returns the colour stored under a slot name.
// Special entries take precedence over colour entries.
func (p *Palette) Slot(name string) (string, bool) {
	if v, ok := p.Special[name]; ok {
		return v, true
	}
	v, ok := p.Colors[name]
	return v, ok
}

// SlotNames returns every defined slot name, sorted.
func (p *Palette) SlotNames() []string {
	names := make([]string, 0, len(p.Special)+len(p.Colors))
	for k := range p.Special {
		names = append(names, k)
	}
	for k := range p.Colors {
		if _, dup := p.Special[k]; !dup {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// ParsePalette decodes a palette document.
// In strict mode unknown top-level keys of a nested palette are rejected.
func ParsePalette(data []byte, schema Schema, strict bool) (*Palette, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &ConfigLoadError{Message: "invalid JSON", Err: err}
	}
	if root == nil {
		return nil, &ConfigLoadError{Message: "palette must be a JSON object"}
	}

	if schema == "" || schema == SchemaAuto {
		schema = detectSchema(root)
	}

	p := &Palette{
		Schema:  schema,
		Special: make(map[string]string),
		Colors:  make(map[string]string),
	}

	if raw, ok := root[keyWallpaper]; ok {
		if err := json.Unmarshal(raw, &p.Wallpaper); err != nil {
			return nil, &ConfigLoadError{Message: `"wallpaper" must be a string`, Err: err}
		}
	}

	switch schema {
	case SchemaNested:
		if err := p.parseNested(root, strict); err != nil {
			return nil, err
		}
	case SchemaFlat:
		if err := p.parseFlat(root); err != nil {
			return nil, err
		}
	default:
		return nil, &ConfigLoadError{Message: fmt.Sprintf("unknown palette schema %q", schema)}
	}

	return p, nil
}

func detectSchema(root map[string]json.RawMessage) Schema {
	_, hasColors := root[keyColors]
	_, hasSpecial := root[keySpecial]
	if hasColors || hasSpecial {
		return SchemaNested
	}
	return SchemaFlat
}

func (p *Palette) parseNested(root map[string]json.RawMessage, strict bool) error {
	if strict {
		for k := range root {
			if k != keySpecial && k != keyColors && k != keyWallpaper {
				return &ConfigLoadError{Message: fmt.Sprintf("unknown top-level key %q", k)}
			}
		}
	}

	rawColors, ok := root[keyColors]
	if !ok {
		return &ConfigLoadError{Message: `missing "colors" mapping`}
	}
	if err := decodeColorMap(rawColors, keyColors, p.Colors); err != nil {
		return err
	}

	// "special" is optional; roles bound to its slots fail at resolve time.
	if rawSpecial, ok := root[keySpecial]; ok {
		if err := decodeColorMap(rawSpecial, keySpecial, p.Special); err != nil {
			return err
		}
	}
	return nil
}

func (p *Palette) parseFlat(root map[string]json.RawMessage) error {
	for k, raw := range root {
		if k == keyWallpaper {
			continue
		}
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return &ConfigLoadError{Message: fmt.Sprintf("slot %q must be a colour string", k), Err: err}
		}
		if err := validateColor(k, v); err != nil {
			return err
		}
		p.Colors[k] = v
	}
	return nil
}

func decodeColorMap(raw json.RawMessage, section string, dst map[string]string) error {
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return &ConfigLoadError{Message: fmt.Sprintf("%q must map slot names to colour strings", section), Err: err}
	}
	if m == nil {
		return &ConfigLoadError{Message: fmt.Sprintf("%q must be an object", section)}
	}
	for k, v := range m {
		if err := validateColor(section+"."+k, v); err != nil {
			return err
		}
		dst[k] = v
	}
	return nil
}

// validateColor accepts #rgb and #rrggbb hex colours.
func validateColor(slot, v string) error {
	if _, err := colorful.Hex(v); err != nil {
		return &ConfigLoadError{Message: fmt.Sprintf("slot %q has invalid colour %q", slot, v), Err: err}
	}
	return nil
}
