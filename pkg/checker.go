package pkg

import (
	"fmt"
	"os"

	"github.com/hansbonini/discchk/pkg/cdrom"
	"github.com/hansbonini/discchk/pkg/common"
	"github.com/hansbonini/discchk/pkg/ecc"
	"gopkg.in/yaml.v3"
)

// ImageChecker verifies the sector integrity of a disc image file.
type ImageChecker interface {
	Check(inputFile string, reportFile string) (*cdrom.Report, error)
}

// CDChecker is the default ImageChecker over raw 2352-byte sector images.
type CDChecker struct {
	tables *ecc.Tables
}

// NewCDChecker creates a checker with freshly built EDC/ECC tables. The
// tables depend on nothing at runtime and are reused across Check calls.
func NewCDChecker() *CDChecker {
	return &CDChecker{tables: ecc.NewTables()}
}

// Check scans the image at inputFile, prints the summary table to stdout
// and, when reportFile is non-empty, writes the tallies there as YAML.
// Per-sector integrity errors do not fail the call; only fatal I/O does.
func (c *CDChecker) Check(inputFile string, reportFile string) (*cdrom.Report, error) {
	file, err := os.Open(inputFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", common.ErrFailedToOpenImage, err)
	}
	defer file.Close()

	fmt.Printf("Checking %s...\n", inputFile)

	scanner, err := cdrom.NewScanner(file, c.tables)
	if err != nil {
		return nil, err
	}
	report, err := scanner.Scan()
	if err != nil {
		return nil, err
	}

	report.WriteSummary(os.Stdout)
	common.LogDebug(common.DebugWholeFileEDC, report.FileEDC)

	if reportFile != "" {
		if err := c.exportReport(report, reportFile); err != nil {
			return nil, err
		}
		common.LogInfo(common.InfoReportWritten, reportFile)
	}

	fmt.Println("Done")
	return report, nil
}

// exportReport writes the tallies to path as YAML.
func (c *CDChecker) exportReport(report *cdrom.Report, path string) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("%s: %w", common.ErrFailedToMarshalReport, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%s: %w", common.ErrFailedToWriteReport, err)
	}
	return nil
}
