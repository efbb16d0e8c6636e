package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/wooftile/internal/output"
	"github.com/jmylchreest/wooftile/internal/theme"
)

var schemeOpts struct {
	format   string
	copyRole string
	noColor  bool
}

var schemeCmd = &cobra.Command{
	Use:   "scheme",
	Short: "Print the resolved colour scheme",
	Long: `Load the palette, bind its colours to roles and print the result.

Examples:
  # Show the scheme with colour swatches
  wooftile scheme

  # Machine-readable output
  wooftile scheme --format json

  # Copy the bar background colour to the clipboard
  wooftile scheme --copy bg`,
	RunE: runScheme,
}

func init() {
	rootCmd.AddCommand(schemeCmd)

	schemeCmd.Flags().StringVarP(&schemeOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml, toml)")
	schemeCmd.Flags().StringVar(&schemeOpts.copyRole, "copy", "",
		"Copy the colour of a role to the clipboard")
	schemeCmd.Flags().BoolVar(&schemeOpts.noColor, "no-color", false,
		"Disable colour swatches in plain output")
}

func runScheme(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(schemeOpts.format)
	if err != nil {
		return err
	}

	scheme, err := loadScheme()
	if err != nil {
		return err
	}

	if schemeOpts.copyRole != "" {
		return copyRole(scheme, schemeOpts.copyRole)
	}

	opts := output.DefaultFormatterOptions()
	opts.Swatches = !schemeOpts.noColor
	return output.NewFormatter(format, opts).FormatScheme(os.Stdout, scheme)
}

func copyRole(scheme *theme.Scheme, name string) error {
	role, err := theme.ParseRole(name)
	if err != nil {
		return err
	}

	color, _ := scheme.Color(role)
	if err := clipboard.WriteAll(color); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	logger.Debug("copied colour", "role", role, "color", color)
	fmt.Fprintln(os.Stderr, color)
	return nil
}
