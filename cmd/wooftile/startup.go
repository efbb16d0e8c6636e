package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/wooftile/internal/hooks"
)

var startupOpts struct {
	restart bool
}

var startupCmd = &cobra.Command{
	Use:   "startup",
	Short: "Run the startup hook scripts",
	Long: `Fire the startup hooks. autostart.sh runs only on a fresh start,
start.sh runs on every start including restarts. Scripts are started in
the background and not waited for.`,
	RunE: runStartup,
}

func init() {
	rootCmd.AddCommand(startupCmd)

	startupCmd.Flags().BoolVar(&startupOpts.restart, "restart", false,
		"The window manager is restarting; skip run-once scripts")
}

func runStartup(cmd *cobra.Command, args []string) error {
	if !cfg.Hooks.Enabled {
		logger.Debug("startup hooks disabled")
		return nil
	}

	runner := hooks.NewRunner(cfg.AutostartPath(), cfg.StartPath(), logger)
	return runner.Startup(startupOpts.restart)
}
