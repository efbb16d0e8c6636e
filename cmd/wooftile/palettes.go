package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/wooftile/internal/theme"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List bundled palettes",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range theme.ListEmbeddedPalettes() {
			fmt.Println(theme.BundledPrefix + name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(palettesCmd)
}
