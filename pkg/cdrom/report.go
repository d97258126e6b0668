package cdrom

import (
	"fmt"
	"io"
)

// Report accumulates the per-format sector and error tallies of one scan.
// Each Scan call builds a fresh Report and hands it to the caller; the
// package itself keeps no tallies between runs.
type Report struct {
	NonDataSectors    uint32 `yaml:"nondata_sectors"`
	Mode0Sectors      uint32 `yaml:"mode0_sectors"`
	Mode0Errors       uint32 `yaml:"mode0_errors"`
	Mode1Sectors      uint32 `yaml:"mode1_sectors"`
	Mode1Errors       uint32 `yaml:"mode1_errors"`
	Mode2Form1Sectors uint32 `yaml:"mode2_form1_sectors"`
	Mode2Form1Errors  uint32 `yaml:"mode2_form1_errors"`
	Mode2Form2Sectors uint32 `yaml:"mode2_form2_sectors"`
	Mode2Form2Errors  uint32 `yaml:"mode2_form2_errors"`
	TotalSectors      uint32 `yaml:"total_sectors"`
	TotalErrors       uint32 `yaml:"total_errors"`
	FileEDC           uint32 `yaml:"file_edc"`
}

// WriteSummary renders the final tallies as a fixed-order table.
func (r *Report) WriteSummary(w io.Writer) {
	fmt.Fprintf(w, "Non-data sectors........ %d\n", r.NonDataSectors)
	fmt.Fprintf(w, "Mode 0 sectors.......... %d\n", r.Mode0Sectors)
	fmt.Fprintf(w, "\twith errors..... %d\n", r.Mode0Errors)
	fmt.Fprintf(w, "Mode 1 sectors.......... %d\n", r.Mode1Sectors)
	fmt.Fprintf(w, "\twith errors..... %d\n", r.Mode1Errors)
	fmt.Fprintf(w, "Mode 2 form 1 sectors... %d\n", r.Mode2Form1Sectors)
	fmt.Fprintf(w, "\twith errors..... %d\n", r.Mode2Form1Errors)
	fmt.Fprintf(w, "Mode 2 form 2 sectors... %d\n", r.Mode2Form2Sectors)
	fmt.Fprintf(w, "\twith errors..... %d\n", r.Mode2Form2Errors)
	fmt.Fprintf(w, "Total sectors........... %d\n", r.TotalSectors)
	fmt.Fprintf(w, "Total errors............ %d\n", r.TotalErrors)
}
