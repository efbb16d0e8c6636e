package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/wooftile/internal/notify"
	"github.com/jmylchreest/wooftile/internal/output"
	"github.com/jmylchreest/wooftile/internal/theme"
)

var watchOpts struct {
	format string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload the palette whenever it changes",
	Long: `Load the palette, print the scheme, then watch the palette file and
print the scheme again after every successful reload. A failed reload keeps
the previous scheme and raises a desktop notification.

Runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchOpts.format, "format", "f", "json",
		"Output format (plain, json, yaml, toml)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(watchOpts.format)
	if err != nil {
		return err
	}
	formatter := output.NewFormatter(format, output.DefaultFormatterOptions())

	loader, err := newLoader()
	if err != nil {
		return err
	}
	scheme, err := loader.Load()
	if err != nil {
		return err
	}
	if err := formatter.FormatScheme(os.Stdout, scheme); err != nil {
		return err
	}

	notifier, closeBus := newNotifier()
	defer closeBus()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Reload callbacks run serially on the watcher goroutine.
	failing := false
	err = loader.StartHotReload(ctx, cfg.Watch.Debounce.Duration(), func(ev theme.ReloadEvent) {
		if ev.Err != nil {
			failing = true
			notifier.NotifyPaletteError(ev.Path, ev.Err)
			return
		}
		if failing {
			failing = false
			notifier.NotifyPaletteReloaded(ev.Path)
		}
		if err := formatter.FormatScheme(os.Stdout, ev.Scheme); err != nil {
			logger.Error("failed to write scheme", "reload_id", ev.ID, "error", err)
		}
	})
	if err != nil {
		return err
	}
	defer loader.StopHotReload()

	logger.Info("watching palette", "path", loader.Path())
	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}

// newNotifier connects to the session bus when notifications are enabled.
// Without a bus the notifier is inert.
func newNotifier() (*notify.Notifier, func()) {
	var sender notify.Sender
	closeBus := func() {}
	if cfg.Notify.Enabled {
		s, err := notify.NewDBusSender("wooftile")
		if err != nil {
			logger.Warn("desktop notifications unavailable", "error", err)
		} else {
			sender = s
			closeBus = func() { _ = s.Close() }
		}
	}
	n := notify.NewNotifier(sender, cfg.Notify.MinInterval.Duration(), logger)
	n.SetEnabled(cfg.Notify.Enabled)
	return n, closeBus
}
