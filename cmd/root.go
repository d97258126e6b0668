// Package cmd provides command-line interface functionality for discchk.
// discchk verifies the EDC/ECC integrity of raw CD-ROM disc images.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// It provides the main entry point for the discchk application.
var rootCmd = &cobra.Command{
	Use:   "discchk",
	Short: "Verify EDC/ECC integrity of raw CD-ROM images",
	Long: `discchk - CD image EDC/ECC checker.

Scans a raw disc image sector by sector, classifies each 2352-byte sector
by its on-disc format (Mode 0, Mode 1, Mode 2 Form 1, Mode 2 Form 2) and
validates the embedded error-detection and error-correction fields,
reporting every sector that fails its checks. No repair is attempted and
the image is never modified.

Examples:
  discchk check image.bin
  discchk check -v image.bin
  discchk check -r report.yaml image.bin

Use 'discchk [command] --help' for more information about a command.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main() and serves as the entry point for command execution.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
