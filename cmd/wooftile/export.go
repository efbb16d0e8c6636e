package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/wooftile/internal/desktop"
	"github.com/jmylchreest/wooftile/internal/output"
)

var exportOpts struct {
	format string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the desktop description for the window manager",
	Long: `Build the full desktop description (keys, groups, layouts, bar
widgets, screens, mouse bindings and float rules) from the resolved scheme
and print it.

Examples:
  # Human-readable summary
  wooftile export

  # Feed the host configuration
  wooftile export --format json > ~/.cache/wooftile/desktop.json`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOpts.format, "format", "f", "json",
		"Output format (plain, json, yaml, toml)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(exportOpts.format)
	if err != nil {
		return err
	}

	scheme, err := loadScheme()
	if err != nil {
		return err
	}

	d := desktop.Build(scheme, desktop.OptionsFromConfig(cfg.Desktop))
	return output.NewFormatter(format, output.DefaultFormatterOptions()).FormatDesktop(os.Stdout, d)
}
