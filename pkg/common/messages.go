package common

import (
	log "github.com/sirupsen/logrus"
)

// Global variable to control debug output
var VerboseMode bool = false

// SetVerboseMode enables or disables verbose/debug output
func SetVerboseMode(verbose bool) {
	VerboseMode = verbose
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// Error messages
const (
	ErrFailedToOpenImage     = "failed to open image file"
	ErrFailedToStatImage     = "failed to stat image file"
	ErrFailedToReadImage     = "failed to read image file"
	ErrFailedToMarshalReport = "failed to marshal report"
	ErrFailedToWriteReport   = "failed to write report file"
)

// Info messages
const (
	InfoReportWritten = "Report written to %s"
)

// Debug messages
const (
	DebugWholeFileEDC   = "Whole-file EDC: %08X"
	DebugSectorPosition = "Sector %d in image (MSF %s)"
)

// Warning messages (per-sector integrity diagnostics)
const (
	WarnMode0SectorError      = "Mode 0 sector with error at address: %s"
	WarnMode1SectorError      = "Mode 1 sector with error at address: %s"
	WarnMode2Form1SectorError = "Mode 2 form 1 sector with error at address: %s"
	WarnMode2Form2SectorError = "Mode 2 form 2 sector with error at address: %s"
)

// LogInfo logs an informational message
func LogInfo(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Infof(message, args...)
	} else {
		log.Info(message)
	}
}

// LogWarn logs a warning message
func LogWarn(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Warnf(message, args...)
	} else {
		log.Warn(message)
	}
}

// LogError logs an error message
func LogError(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Errorf(message, args...)
	} else {
		log.Error(message)
	}
}

// LogDebug logs a debug message (only if VerboseMode is enabled)
func LogDebug(message string, args ...interface{}) {
	if !VerboseMode {
		return
	}
	if len(args) > 0 {
		log.Debugf(message, args...)
	} else {
		log.Debug(message)
	}
}
