// Package hooks launches the user's startup scripts.
// Scripts are fire-and-forget: their exit status and output are ignored.
package hooks

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// Event is a host lifecycle event that can trigger a script.
type Event string

const (
	// EventStartupOnce fires on the first start of a session only.
	EventStartupOnce Event = "startup_once"
	// EventStartup fires on every start, including restarts.
	EventStartup Event = "startup"
)

// Runner maps lifecycle events to scripts.
type Runner struct {
	logger  *slog.Logger
	scripts map[Event]string
}

// NewRunner creates a runner that starts autostart on EventStartupOnce and
// start on EventStartup. An empty path disables that event.
func NewRunner(autostart, start string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		logger: logger,
		scripts: map[Event]string{
			EventStartupOnce: autostart,
			EventStartup:     start,
		},
	}
}

// Fire launches the script bound to event and returns without waiting for it.
// A missing script is skipped.
func (r *Runner) Fire(event Event) error {
	path, ok := r.scripts[event]
	if !ok {
		return fmt.Errorf("unknown hook event %q", event)
	}
	if path == "" {
		r.logger.Debug("no script configured for hook", "event", event)
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.Info("hook script not found, skipping", "event", event, "path", path)
			return nil
		}
		return fmt.Errorf("hook %s: %w", event, err)
	}

	c := exec.Command(path)
	if err := c.Start(); err != nil {
		return fmt.Errorf("hook %s: could not start %s: %w", event, path, err)
	}
	r.logger.Debug("started hook script", "event", event, "path", path, "pid", c.Process.Pid)

	// Reap the child; its result is not inspected.
	go func() {
		_ = c.Wait()
	}()
	return nil
}

// Startup fires the hooks for a host start. On a restart only the
// every-start script runs. All events are attempted; errors are joined.
func (r *Runner) Startup(restart bool) error {
	var errs []error
	if !restart {
		if err := r.Fire(EventStartupOnce); err != nil {
			errs = append(errs, err)
		}
	}
	if err := r.Fire(EventStartup); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
