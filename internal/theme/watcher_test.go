package theme

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_DetectsWrite(t *testing.T) {
	path := writePalette(t, gruvboxJSON)

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)

	changed := make(chan struct{}, 1)
	w.SetChangeCallback(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	require.NoError(t, w.Start(context.Background()))
	assert.True(t, w.IsRunning())

	require.NoError(t, os.WriteFile(path, []byte(flatJSON), 0644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("expected change callback")
	}

	require.NoError(t, w.Stop())
	assert.False(t, w.IsRunning())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	path := writePalette(t, gruvboxJSON)

	w, err := NewWatcher(path, nil)
	require.NoError(t, err)
	w.SetDebounce(10 * time.Millisecond)

	changed := make(chan struct{}, 1)
	w.SetChangeCallback(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})

	require.NoError(t, w.Start(context.Background()))
	defer func() { _ = w.Stop() }()

	other := filepath.Join(filepath.Dir(path), "other.json")
	require.NoError(t, os.WriteFile(other, []byte("{}"), 0644))

	select {
	case <-changed:
		t.Fatal("unexpected change callback for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "colors.json"), nil)
	require.NoError(t, err)
	assert.NoError(t, w.Stop())
}

func TestLoader_HotReload(t *testing.T) {
	path := writePalette(t, gruvboxJSON)

	l := NewLoader(path, Options{}, nil)
	_, err := l.Load()
	require.NoError(t, err)

	events := make(chan ReloadEvent, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, l.StartHotReload(ctx, 20*time.Millisecond, func(ev ReloadEvent) {
		select {
		case events <- ev:
		default:
		}
	}))
	defer l.StopHotReload()

	require.NoError(t, os.WriteFile(path, []byte(flatJSON), 0644))

	// A reload may observe the truncated file first; wait for a good one.
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			if ev.Err != nil {
				continue
			}
			assert.Equal(t, "#71d75f", ev.Scheme.Active)
			assert.Equal(t, "#71d75f", l.Current().Active)
			return
		case <-deadline:
			t.Fatal("expected successful reload event")
		}
	}
}

func TestLoader_HotReloadSkipsBundled(t *testing.T) {
	l := NewLoader(BundledPrefix+"gruvbox", Options{}, nil)
	assert.NoError(t, l.StartHotReload(context.Background(), 0, nil))
	l.StopHotReload()
}
