// Package pkg provides tests for the image checker processor
package pkg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hansbonini/discchk/pkg/cdrom"
	"gopkg.in/yaml.v3"
)

var rawSync = []byte{
	0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00,
}

func TestCDCheckerCheck(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "image.bin")
	reportPath := filepath.Join(dir, "report.yaml")

	// One all-zero window (no sync, non-data) followed by a valid Mode 0
	// sector (sync, mode byte 0, zero payload).
	image := make([]byte, 2*cdrom.SectorSize)
	copy(image[cdrom.SectorSize:], rawSync)
	image[cdrom.SectorSize+0x00D] = 0x02 // BCD address 00:02:00

	if err := os.WriteFile(imagePath, image, 0644); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}

	checker := NewCDChecker()
	report, err := checker.Check(imagePath, reportPath)
	if err != nil {
		t.Fatalf("Check() failed: %v", err)
	}

	if report.NonDataSectors != 1 || report.Mode0Sectors != 1 ||
		report.TotalSectors != 2 || report.TotalErrors != 0 {
		t.Errorf("Check() report = %+v", *report)
	}

	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	var exported cdrom.Report
	if err := yaml.Unmarshal(data, &exported); err != nil {
		t.Fatalf("report file is not valid YAML: %v", err)
	}
	if exported != *report {
		t.Errorf("exported report = %+v, want %+v", exported, *report)
	}
}

func TestCDCheckerCheckMissingFile(t *testing.T) {
	checker := NewCDChecker()
	if _, err := checker.Check(filepath.Join(t.TempDir(), "missing.bin"), ""); err == nil {
		t.Error("Check() should fail when the image file does not exist")
	}
}

// Tables are reused across runs; repeated checks of the same image must
// agree.
func TestCDCheckerCheckRepeatable(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "image.bin")
	if err := os.WriteFile(imagePath, make([]byte, cdrom.SectorSize), 0644); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}

	checker := NewCDChecker()
	first, err := checker.Check(imagePath, "")
	if err != nil {
		t.Fatalf("first Check() failed: %v", err)
	}
	second, err := checker.Check(imagePath, "")
	if err != nil {
		t.Fatalf("second Check() failed: %v", err)
	}
	if *first != *second {
		t.Errorf("repeated checks differ: %+v vs %+v", *first, *second)
	}
}
