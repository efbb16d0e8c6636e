package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePalette(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "colors.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_GruvboxScenario(t *testing.T) {
	path := writePalette(t, gruvboxJSON)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "#1d2021", s.Bg)
	assert.Equal(t, "#d3869b", s.Active)
	assert.Equal(t, path, s.Source)
}

func TestLoad_Deterministic(t *testing.T) {
	path := writePalette(t, gruvboxJSON)

	first, err := Load(path)
	require.NoError(t, err)
	second, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, first.Bindings(), second.Bindings())
	assert.NotSame(t, first, second)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	_, err := Load(path)
	var cle *ConfigLoadError
	require.True(t, errors.As(err, &cle))
	assert.Equal(t, path, cle.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoad_Malformed(t *testing.T) {
	path := writePalette(t, `{"colors":`)

	_, err := Load(path)
	var cle *ConfigLoadError
	require.True(t, errors.As(err, &cle))
	assert.Equal(t, path, cle.Path)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestLoad_MissingColors(t *testing.T) {
	path := writePalette(t, `{"special": {"background": "#1d2021", "foreground": "#ebdbb2"}}`)

	s, err := Load(path)
	assert.Nil(t, s)
	var cle *ConfigLoadError
	require.True(t, errors.As(err, &cle))
	assert.Contains(t, err.Error(), `missing "colors"`)
}

func TestLoad_EmptyObject(t *testing.T) {
	path := writePalette(t, `{}`)

	s, err := Load(path)
	assert.Nil(t, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bg")
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	var cle *ConfigLoadError
	require.True(t, errors.As(err, &cle))
}

func TestLoadWithOptions_SchemaAndRoles(t *testing.T) {
	path := writePalette(t, gruvboxJSON)

	s, err := LoadWithOptions(path, Options{
		Schema: SchemaNested,
		Roles:  RoleMap{RoleActive: "color5"},
	})
	require.NoError(t, err)
	assert.Equal(t, "#b16286", s.Active)

	// Forcing flat on a nested document leaves no role-named slots.
	_, err = LoadWithOptions(path, Options{Schema: SchemaFlat})
	assert.Error(t, err)
}

func TestLoadWithOptions_Strict(t *testing.T) {
	path := writePalette(t, `{"special": {"background": "#000000"}, "colors": {}, "checksum": "x"}`)

	_, err := LoadWithOptions(path, Options{Strict: true})
	var cle *ConfigLoadError
	require.True(t, errors.As(err, &cle))
	assert.Contains(t, err.Error(), "checksum")
}

func TestLoad_Bundled(t *testing.T) {
	for _, name := range BundledPalettes {
		t.Run(name, func(t *testing.T) {
			s, err := Load(BundledPrefix + name)
			require.NoError(t, err)
			for _, b := range s.Bindings() {
				assert.NotEmpty(t, b.Color, "role %s", b.Role)
			}
		})
	}

	_, err := Load(BundledPrefix + "missing")
	var cle *ConfigLoadError
	require.True(t, errors.As(err, &cle))
}

func TestLoader_ReloadKeepsPreviousOnFailure(t *testing.T) {
	path := writePalette(t, gruvboxJSON)

	l := NewLoader(path, Options{}, nil)
	assert.Nil(t, l.Current())

	s, err := l.Load()
	require.NoError(t, err)
	assert.Same(t, s, l.Current())

	require.NoError(t, os.WriteFile(path, []byte(`{"colors":`), 0644))
	ev := l.Reload()
	require.Error(t, ev.Err)
	assert.Same(t, s, ev.Scheme)
	assert.Same(t, s, l.Current())
	assert.NotEmpty(t, ev.ID.String())
	assert.Equal(t, path, ev.Path)
}

func TestLoader_ReloadPicksUpChanges(t *testing.T) {
	path := writePalette(t, gruvboxJSON)

	l := NewLoader(path, Options{}, nil)
	_, err := l.Load()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(flatJSON), 0644))
	ev := l.Reload()
	require.NoError(t, ev.Err)
	assert.Equal(t, "#71d75f", ev.Scheme.Active)
	assert.Equal(t, "#71d75f", l.Current().Active)
}

func TestLoader_LoadFailure(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "missing.json"), Options{}, nil)
	_, err := l.Load()
	assert.Error(t, err)
	assert.Nil(t, l.Current())
}

func TestLoader_ReloadEventIDsAreUnique(t *testing.T) {
	path := writePalette(t, gruvboxJSON)
	l := NewLoader(path, Options{}, nil)

	a := l.Reload()
	b := l.Reload()
	assert.NotEqual(t, a.ID, b.ID)
}
