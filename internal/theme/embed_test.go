package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEmbeddedPalette(t *testing.T) {
	data, found := GetEmbeddedPalette("gruvbox")
	require.True(t, found)
	assert.Contains(t, string(data), `"special"`)

	data, found = GetEmbeddedPalette("nonexistent")
	assert.False(t, found)
	assert.Nil(t, data)
}

func TestListEmbeddedPalettes(t *testing.T) {
	names := ListEmbeddedPalettes()
	assert.ElementsMatch(t, BundledPalettes, names)
}

func TestIsBundled(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"bundled:gruvbox", true},
		{"bundled:", true},
		{"/home/woof/.config/wooftile/colors.json", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsBundled(tt.path))
		})
	}
}

func TestBundledPalettes_Schemas(t *testing.T) {
	expected := map[string]Schema{
		"gruvbox": SchemaNested,
		"nord":    SchemaNested,
		"woof":    SchemaFlat,
	}

	for name, schema := range expected {
		t.Run(name, func(t *testing.T) {
			data, found := GetEmbeddedPalette(name)
			require.True(t, found)

			p, err := ParsePalette(data, SchemaAuto, true)
			require.NoError(t, err)
			assert.Equal(t, schema, p.Schema)
		})
	}
}
