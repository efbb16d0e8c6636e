package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/wooftile/internal/theme"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the configured palette",
	Long: `Load and resolve the palette without emitting anything else.

Exits non-zero when the palette cannot be read, is malformed, or leaves a
role unbound.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := cfg.PalettePath()

	scheme, err := loadScheme()
	if err != nil {
		return err
	}

	fmt.Printf("Palette: %s\n", path)
	if theme.IsBundled(path) {
		fmt.Println("  bundled")
	} else if info, err := os.Stat(path); err == nil {
		fmt.Printf("  size:     %s\n", humanize.Bytes(uint64(info.Size())))
		fmt.Printf("  modified: %s\n", humanize.RelTime(info.ModTime(), time.Now(), "ago", "from now"))
	}
	fmt.Printf("  schema:   %s\n", scheme.Schema)
	fmt.Printf("  roles:    %d bound\n", len(scheme.Bindings()))
	if scheme.Wallpaper != "" {
		fmt.Printf("  wallpaper: %s\n", scheme.Wallpaper)
	}
	fmt.Println("OK")
	return nil
}
