// Package cmd provides the command-line interface for checking CD images.
// This file contains the command that scans a disc image and reports the
// per-format sector and error tallies.
package cmd

import (
	"fmt"

	"github.com/hansbonini/discchk/pkg"
	"github.com/hansbonini/discchk/pkg/common"
	"github.com/spf13/cobra"
)

// checkCmd scans a CD image file and validates every sector's EDC/ECC
// fields. Detected errors are logged to the error stream as they are found;
// the final tallies go to standard output and, optionally, to a YAML file.
var checkCmd = &cobra.Command{
	Use:   "check [image_file]",
	Short: "Check the EDC/ECC integrity of a CD image file",
	Long: `Check the EDC/ECC integrity of a CD image file (.bin/.img raw format).

This command reads a raw CD image composed of 2352-byte sectors, classifies
each sector by its on-disc format and validates the embedded checksums:
  - Mode 0: payload must be all zero
  - Mode 1: EDC checksum plus P/Q parity over header and data
  - Mode 2 Form 1: EDC checksum plus P/Q parity over subheader and data
  - Mode 2 Form 2: EDC checksum only

Sectors that fail their format's checks are reported on the error stream
with the sector's own BCD address. The scan always runs to the end of the
image; the exit status reflects only fatal errors, not sector errors.

Example:
  discchk check image.bin
  discchk check -v image.bin
  discchk check -r report.yaml image.bin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]

		// Enable verbose mode if requested
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return fmt.Errorf("error getting verbose flag: %w", err)
		}
		common.SetVerboseMode(verbose)

		reportFile, err := cmd.Flags().GetString("report")
		if err != nil {
			return fmt.Errorf("error getting report flag: %w", err)
		}

		checker := pkg.NewCDChecker()
		if _, err := checker.Check(inputFile, reportFile); err != nil {
			return fmt.Errorf("failed to check CD image file: %w", err)
		}

		return nil
	},
}

// init initializes the check command with its flags.
func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolP("verbose", "v", false, "Enable verbose output with per-sector debug information")
	checkCmd.Flags().StringP("report", "r", "", "Write the final tallies to this file as YAML")
}
