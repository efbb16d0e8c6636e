// Package main provides the CLI entrypoint for wooftile.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/wooftile/internal/config"
	"github.com/jmylchreest/wooftile/internal/theme"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		palette    string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wooftile",
	Short: "Palette-driven theming for a tiling window manager",
	Long: `wooftile loads a colour palette produced by a wallpaper-based colour
extractor, binds its colours to named roles and builds the desktop
description (keys, groups, layouts, bar widgets) handed to the window
manager.

Palettes may be files on disk or one of the bundled palettes, selected
with "bundled:<name>".`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if globalOpts.palette != "" {
			cfg.Theme.Palette = globalOpts.palette
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/wooftile/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&globalOpts.palette, "palette", "p", "",
		"Palette file or bundled:<name> (default: ~/.config/wooftile/colors.json)")
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	// stderr keeps stdout clean for output
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// newLoader builds a palette loader from the active config.
func newLoader() (*theme.Loader, error) {
	opts, err := cfg.ThemeOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid theme config: %w", err)
	}
	return theme.NewLoader(cfg.PalettePath(), opts, logger), nil
}

// loadScheme performs a one-shot load of the configured palette.
func loadScheme() (*theme.Scheme, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, err
	}
	return loader.Load()
}
