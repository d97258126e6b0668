package cdrom

import (
	"bytes"

	"github.com/hansbonini/discchk/pkg/common"
	"github.com/hansbonini/discchk/pkg/ecc"
)

// mode1Valid reports whether a full raw sector passes the Mode 1 ECC and
// EDC checks. The ECC covers the header address plus the data payload; the
// EDC covers everything up to its own field.
func mode1Valid(t *ecc.Tables, sector []byte) bool {
	return t.CheckSector(
		sector[addressOffset:addressOffset+4],
		sector[payloadOffset:],
		sector[mode1ECCOffset:mode1ECCOffset+ECCSize],
	) &&
		t.ComputeEDC(0, sector[:mode1EDCOffset]) == common.Get32LSB(sector[mode1EDCOffset:])
}

// form1Valid reports whether a headerless Mode 2 sector passes the Form 1
// ECC and EDC checks. Form 1 parity is computed over a zero address, since
// the sector header is excluded from it.
func form1Valid(t *ecc.Tables, m2 []byte) bool {
	return t.CheckSector(
		zeroAddress[:],
		m2,
		m2[form1ECCOffset:form1ECCOffset+ECCSize],
	) &&
		t.ComputeEDC(0, m2[:form1EDCOffset]) == common.Get32LSB(m2[form1EDCOffset:])
}

// form2Valid reports whether a headerless Mode 2 sector passes the Form 2
// EDC check. Form 2 carries no ECC.
func form2Valid(t *ecc.Tables, m2 []byte) bool {
	return t.ComputeEDC(0, m2[:form2EDCOffset]) == common.Get32LSB(m2[form2EDCOffset:])
}

// Classify determines the format of a single sector window. It is a pure
// function of the window bytes and never reads outside len(sector).
//
// The boolean result reports integrity. It is false only when the window is
// structurally a Mode 1 sector whose EDC or ECC check fails; such a window
// stays tagged Mode 1 rather than being reclassified. A Mode 2 window that
// fails both form checks is FormatLiteral, since the two forms can only be
// told apart by one of their checks succeeding.
func Classify(t *ecc.Tables, sector []byte) (Format, bool) {
	if len(sector) >= SectorSize &&
		bytes.Equal(sector[:SyncSize], syncPattern[:]) &&
		sector[modeOffset] == 0x01 &&
		isZero(sector[mode1ReservedOffset:mode1ECCOffset]) {
		if mode1Valid(t, sector) {
			return FormatMode1, true
		}
		return FormatMode1, false
	}

	if len(sector) >= HeaderlessSize &&
		bytes.Equal(sector[0:4], sector[4:8]) {
		// Might be Mode 2, Form 1 or 2; the layout here is headerless, so
		// all offsets are relative to the flags field.
		if form1Valid(t, sector) {
			return FormatMode2Form1, true
		}
		if form2Valid(t, sector) {
			return FormatMode2Form2, true
		}
	}

	return FormatLiteral, true
}
