package theme

import (
	"context"
	"crypto/rand"
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Options controls how a palette is parsed and resolved.
type Options struct {
	Schema Schema  // SchemaAuto when empty
	Roles  RoleMap // Overrides on top of the schema defaults
	Strict bool    // Reject unknown top-level keys in nested palettes
}

// Load reads a palette file and resolves it with default options.
func Load(path string) (*Scheme, error) {
	return LoadWithOptions(path, Options{})
}

// LoadWithOptions reads a palette and resolves it into a Scheme.
// Paths with the "bundled:" prefix load an embedded palette.
func LoadWithOptions(path string, opts Options) (*Scheme, error) {
	data, err := readPalette(path)
	if err != nil {
		return nil, err
	}

	palette, err := ParsePalette(data, opts.Schema, opts.Strict)
	if err != nil {
		var cle *ConfigLoadError
		if errors.As(err, &cle) && cle.Path == "" {
			cle.Path = path
		}
		return nil, err
	}

	scheme, err := Resolve(palette, opts.Roles)
	if err != nil {
		return nil, err
	}
	scheme.Source = path
	return scheme, nil
}

func readPalette(path string) ([]byte, error) {
	if path == "" {
		return nil, &ConfigLoadError{Message: "no palette path configured"}
	}

	if IsBundled(path) {
		name := strings.TrimPrefix(path, BundledPrefix)
		data, ok := GetEmbeddedPalette(name)
		if !ok {
			return nil, &ConfigLoadError{
				Path:    path,
				Message: "no bundled palette named " + name,
			}
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		msg := "cannot read palette file"
		if errors.Is(err, os.ErrNotExist) {
			msg = "palette file does not exist"
		}
		return nil, &ConfigLoadError{Path: path, Message: msg, Err: err}
	}
	return data, nil
}

// ReloadEvent describes the outcome of a single reload.
type ReloadEvent struct {
	ID     ulid.ULID
	Path   string
	Time   time.Time
	Scheme *Scheme // The active scheme after the reload
	Err    error   // Non-nil when the reload failed and the previous scheme was kept
}

// Loader owns the active scheme and re-evaluates it on reload.
type Loader struct {
	mu      sync.RWMutex
	logger  *slog.Logger
	path    string
	opts    Options
	scheme  *Scheme
	watcher *Watcher
}

// NewLoader creates a loader for the given palette path.
func NewLoader(path string, opts Options, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger: logger,
		path:   path,
		opts:   opts,
	}
}

// Load performs the initial load. A failure here is fatal to the caller.
func (l *Loader) Load() (*Scheme, error) {
	scheme, err := LoadWithOptions(l.path, l.opts)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.scheme = scheme
	l.mu.Unlock()

	l.logger.Info("loaded palette", "path", l.path, "schema", scheme.Schema)
	return scheme, nil
}

// Reload re-reads the palette. On failure the previous scheme stays active.
func (l *Loader) Reload() ReloadEvent {
	now := time.Now()
	ev := ReloadEvent{
		ID:   ulid.MustNew(ulid.Timestamp(now), rand.Reader),
		Path: l.path,
		Time: now,
	}

	scheme, err := LoadWithOptions(l.path, l.opts)

	l.mu.Lock()
	if err == nil {
		l.scheme = scheme
	}
	ev.Scheme = l.scheme
	l.mu.Unlock()

	if err != nil {
		ev.Err = err
		l.logger.Warn("palette reload failed, keeping previous scheme",
			"path", l.path, "reload_id", ev.ID, "error", err)
		return ev
	}

	l.logger.Info("reloaded palette", "path", l.path, "reload_id", ev.ID)
	return ev
}

// Current returns the active scheme, or nil before the first successful load.
func (l *Loader) Current() *Scheme {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.scheme
}

// Path returns the palette path this loader reads.
func (l *Loader) Path() string {
	return l.path
}

// StartHotReload watches the palette file and reloads it on change.
// Bundled palettes are never watched.
func (l *Loader) StartHotReload(ctx context.Context, debounce time.Duration, onReload func(ReloadEvent)) error {
	if IsBundled(l.path) {
		l.logger.Debug("not starting hot-reload for bundled palette", "path", l.path)
		return nil
	}

	l.mu.Lock()
	if l.watcher != nil {
		l.mu.Unlock()
		return nil
	}
	w, err := NewWatcher(l.path, l.logger)
	if err != nil {
		l.mu.Unlock()
		return err
	}
	if debounce > 0 {
		w.SetDebounce(debounce)
	}
	w.SetChangeCallback(func() {
		ev := l.Reload()
		if onReload != nil {
			onReload(ev)
		}
	})
	l.watcher = w
	l.mu.Unlock()

	return w.Start(ctx)
}

// StopHotReload stops watching the palette file.
func (l *Loader) StopHotReload() {
	l.mu.Lock()
	w := l.watcher
	l.watcher = nil
	l.mu.Unlock()

	if w != nil {
		if err := w.Stop(); err != nil {
			l.logger.Debug("failed to stop palette watcher", "error", err)
		}
	}
}
