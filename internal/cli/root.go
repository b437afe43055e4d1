// Package cli wires the iconsync commands together.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/megalamo/iconsync/pkg/iconsync"
)

var rootCmd = &cobra.Command{
	Use:   "iconsync",
	Short: "Material Symbols icon inventory and font sync for template trees",
	Long: `iconsync keeps a template tree's Material Symbols usage and its local font
files in step.

The scan command inventories icon usage across Jet and templ templates and
can fetch updated woff2 files for exactly the icons in use, bumping the
stylesheet cache-busting version when a font actually changed. The rewrite
command migrates the icon-class convention from inline SVG files to template
call sites.

Exit Codes:
  0  - Success (including a scan that found nothing)
  1  - Usage error, missing directory, or failed sync
  3  - Panic or unexpected system error`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation: usage to stderr, nonzero exit
		_ = cmd.Usage()
		return iconsync.ErrUsage
	},
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
