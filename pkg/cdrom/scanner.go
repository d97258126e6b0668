package cdrom

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hansbonini/discchk/pkg/common"
	"github.com/hansbonini/discchk/pkg/ecc"
)

// queueCapacity bounds the scan buffer, so peak memory stays constant no
// matter how large the image is.
const queueCapacity = 0x40000

// Scanner reads a disc image in bounded chunks and presents consecutive
// sector windows to the format checks. All state belongs to one scan of one
// file; nothing is shared between runs.
type Scanner struct {
	file   *os.File
	size   int64
	tables *ecc.Tables

	queue      []byte
	queueStart int
	queueAvail int
	queued     int64 // bytes read from the file so far

	fileEDC uint32
	lba     int64 // index of the window currently being checked

	progress io.Writer
	bucket   int64 // last megabyte bucket reported
}

// NewScanner prepares a scanner over an open image file. Progress is
// rendered to the error stream; per-sector diagnostics go through the
// logging layer.
func NewScanner(file *os.File, tables *ecc.Tables) (*Scanner, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", common.ErrFailedToStatImage, err)
	}
	return &Scanner{
		file:     file,
		size:     info.Size(),
		tables:   tables,
		queue:    make([]byte, queueCapacity),
		progress: os.Stderr,
		bucket:   -1,
	}, nil
}

// Scan consumes the image sector by sector and returns the tallies. Fatal
// read errors abort the scan; per-sector integrity failures are counted and
// logged, never returned. Sectors are checked strictly in file order.
func (s *Scanner) Scan() (*Report, error) {
	report := &Report{}
	for {
		if err := s.refill(); err != nil {
			return nil, err
		}
		if s.queueAvail == 0 {
			break
		}
		want := SectorSize
		if want > s.queueAvail {
			want = s.queueAvail
		}
		s.checkWindow(s.queue[s.queueStart:s.queueStart+want], report)
		s.queueStart += want
		s.queueAvail -= want
		s.lba++
	}
	report.FileEDC = s.fileEDC
	return report, nil
}

// refill tops the queue up to capacity when fewer than a full sector of
// bytes remain buffered and the file still has unqueued data. Remaining
// bytes are compacted to the front of the queue first, and every chunk read
// is folded into the whole-file EDC as it arrives.
func (s *Scanner) refill() error {
	if s.queueAvail >= SectorSize || s.queued >= s.size {
		return nil
	}
	if s.queueStart > 0 {
		copy(s.queue, s.queue[s.queueStart:s.queueStart+s.queueAvail])
		s.queueStart = 0
	}
	want := s.size - s.queued
	if room := int64(len(s.queue) - s.queueAvail); want > room {
		want = room
	}
	if want == 0 {
		return nil
	}
	s.reportProgress()
	chunk := s.queue[s.queueAvail : s.queueAvail+int(want)]
	if _, err := io.ReadFull(s.file, chunk); err != nil {
		return fmt.Errorf("%s: %w", common.ErrFailedToReadImage, err)
	}
	s.fileEDC = s.tables.ComputeEDC(s.fileEDC, chunk)
	s.queued += want
	s.queueAvail += int(want)
	return nil
}

// reportProgress rewrites the percentage on the error stream, but only when
// the megabyte bucket of queued bytes has changed.
func (s *Scanner) reportProgress() {
	bucket := s.queued >> 20
	if bucket == s.bucket {
		return
	}
	s.bucket = bucket
	done := (s.queued + 64) / 128
	total := (s.size + 64) / 128
	if total == 0 {
		total = 1
	}
	fmt.Fprintf(s.progress, "Analyze(%02d%%)\r", 100*done/total)
}

// checkWindow classifies one sector window and updates the tallies. Every
// window lands in exactly one counter; a window that looks like format X but
// fails X's integrity checks is counted as a format-X error, while a window
// that is not a recognizable data sector at all counts as non-data.
func (s *Scanner) checkWindow(window []byte, report *Report) {
	report.TotalSectors++

	if len(window) < SectorSize || !bytes.Equal(window[:SyncSize], syncPattern[:]) {
		report.NonDataSectors++
		return
	}

	addr := window[addressOffset : addressOffset+3]

	switch window[modeOffset] {
	case 0x00:
		report.Mode0Sectors++
		// Mode 0 carries no checksum; the whole payload must be zero.
		if !isZero(window[payloadOffset:SectorSize]) {
			report.Mode0Errors++
			report.TotalErrors++
			s.reportSectorError(common.WarnMode0SectorError, addr)
		}
	case 0x01:
		report.Mode1Sectors++
		if !mode1Valid(s.tables, window) || !isZero(window[mode1ReservedOffset:mode1ECCOffset]) {
			report.Mode1Errors++
			report.TotalErrors++
			s.reportSectorError(common.WarnMode1SectorError, addr)
		}
	case 0x02:
		// Both forms share the mode byte; the submode flag bit selects the
		// form before the matching check is applied.
		m2 := window[payloadOffset:]
		if window[submodeOffset]&submodeForm2 != 0 {
			report.Mode2Form2Sectors++
			if !form2Valid(s.tables, m2) {
				report.Mode2Form2Errors++
				report.TotalErrors++
				s.reportSectorError(common.WarnMode2Form2SectorError, addr)
			}
		} else {
			report.Mode2Form1Sectors++
			if !form1Valid(s.tables, m2) {
				report.Mode2Form1Errors++
				report.TotalErrors++
				s.reportSectorError(common.WarnMode2Form1SectorError, addr)
			}
		}
	default:
		report.NonDataSectors++
	}
}

func (s *Scanner) reportSectorError(message string, addr []byte) {
	common.LogWarn(message, common.BCDAddress(addr))
	common.LogDebug(common.DebugSectorPosition, s.lba, common.LBAToMSF(uint32(s.lba)))
}
