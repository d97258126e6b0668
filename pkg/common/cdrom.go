// Package common provides common utilities for CD-ROM operations.
// This file contains functions for MSF conversion and sector address
// rendering shared by diagnostics and reporting.
package common

import "fmt"

// LBAToMSF converts LBA (Logical Block Address) to MSF (Minutes:Seconds:Frames) format
// LBA to MSF conversion: LBA + 150 (pregap)
func LBAToMSF(lba uint32) string {
	totalFrames := lba + 150

	minutes := totalFrames / (60 * 75)
	seconds := (totalFrames % (60 * 75)) / 75
	frames := totalFrames % 75

	return fmt.Sprintf("%02d:%02d:%02d", minutes, seconds, frames)
}

// BCDAddress renders a sector's 3-byte BCD minute:second:frame address the
// way it is stamped on disc, in hexadecimal.
func BCDAddress(addr []byte) string {
	return fmt.Sprintf("%02X:%02X:%02X", addr[0], addr[1], addr[2])
}
