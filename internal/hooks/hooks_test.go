package hooks

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript creates an executable script that touches marker.
func writeScript(t *testing.T, dir, name, marker string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := "#!/bin/sh\ntouch '" + marker + "'\nexit 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0755))
	return path
}

func fileAppears(path string) func() bool {
	return func() bool {
		_, err := os.Stat(path)
		return err == nil
	}
}

func TestRunner_StartupRunsBoth(t *testing.T) {
	dir := t.TempDir()
	onceMarker := filepath.Join(dir, "once.done")
	startMarker := filepath.Join(dir, "start.done")

	r := NewRunner(
		writeScript(t, dir, "autostart.sh", onceMarker),
		writeScript(t, dir, "start.sh", startMarker),
		nil,
	)

	// Non-zero exit codes are not reported
	require.NoError(t, r.Startup(false))

	assert.Eventually(t, fileAppears(onceMarker), 5*time.Second, 10*time.Millisecond)
	assert.Eventually(t, fileAppears(startMarker), 5*time.Second, 10*time.Millisecond)
}

func TestRunner_RestartSkipsAutostart(t *testing.T) {
	dir := t.TempDir()
	onceMarker := filepath.Join(dir, "once.done")
	startMarker := filepath.Join(dir, "start.done")

	r := NewRunner(
		writeScript(t, dir, "autostart.sh", onceMarker),
		writeScript(t, dir, "start.sh", startMarker),
		nil,
	)

	require.NoError(t, r.Startup(true))

	assert.Eventually(t, fileAppears(startMarker), 5*time.Second, 10*time.Millisecond)
	_, err := os.Stat(onceMarker)
	assert.True(t, os.IsNotExist(err), "autostart should not run on restart")
}

func TestRunner_MissingScriptIsSkipped(t *testing.T) {
	dir := t.TempDir()
	r := NewRunner(filepath.Join(dir, "missing.sh"), "", nil)

	assert.NoError(t, r.Fire(EventStartupOnce))
	assert.NoError(t, r.Fire(EventStartup))
	assert.NoError(t, r.Startup(false))
}

func TestRunner_NotExecutable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "start.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0644))

	r := NewRunner("", path, nil)
	err := r.Fire(EventStartup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not start")

	assert.Error(t, r.Startup(true))
}

func TestRunner_UnknownEvent(t *testing.T) {
	r := NewRunner("", "", nil)
	assert.Error(t, r.Fire(Event("shutdown")))
}
