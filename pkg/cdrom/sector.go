// Package cdrom classifies raw CD-ROM sectors and scans whole disc images,
// validating the EDC/ECC fields embedded in each sector.
//
// Raw sector layouts handled here:
//
// Mode 1
// -----------------------------------------------------
//        0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
// 0000h 00 FF FF FF FF FF FF FF FF FF FF 00 [-ADDR-] 01
// 0010h [---DATA...
// ...
// 0800h                                     ...DATA---]
// 0810h [---EDC---] 00 00 00 00 00 00 00 00 [---ECC...
// ...
// 0920h                                      ...ECC---]
//
// Mode 2 (XA), form 1
// -----------------------------------------------------
//        0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
// 0000h 00 FF FF FF FF FF FF FF FF FF FF 00 [-ADDR-] 02
// 0010h [--FLAGS--] [--FLAGS--] [---DATA...
// ...
// 0810h             ...DATA---] [---EDC---] [---ECC...
// ...
// 0920h                                      ...ECC---]
//
// Mode 2 (XA), form 2
// -----------------------------------------------------
//        0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
// 0000h 00 FF FF FF FF FF FF FF FF FF FF 00 [-ADDR-] 02
// 0010h [--FLAGS--] [--FLAGS--] [---DATA...
// ...
// 0920h                         ...DATA---] [---EDC---]
//
// The 4-byte FLAGS field of Mode 2 sectors is repeated for redundancy.
// ADDR is the sector address as minutes:seconds:frames in BCD.
package cdrom

// Sector size constants for raw CD-ROM images.
const (
	SectorSize     = 2352 // full raw sector
	HeaderlessSize = 2336 // Mode 2 sector without sync and header
	DataSize       = 2048 // user data in Mode 1 and Mode 2 Form 1
	Form2DataSize  = 2324 // user data in Mode 2 Form 2
	SyncSize       = 12   // sync pattern
	ECCSize        = 276  // P and Q parity block
)

// Byte offsets within a full raw sector.
const (
	addressOffset = 0x00C // 3 address bytes, BCD MSF
	modeOffset    = 0x00F
	payloadOffset = 0x010

	mode1EDCOffset      = 0x810
	mode1ReservedOffset = 0x814
	mode1ECCOffset      = 0x81C

	submodeOffset = 0x012 // first copy of the XA submode byte
	submodeForm2  = 0x20  // form select bit
)

// Byte offsets relative to the start of the Mode 2 flags field, i.e. within
// the headerless 2336-byte layout.
const (
	form1EDCOffset = 0x808
	form1ECCOffset = 0x80C
	form2EDCOffset = 0x91C
)

// syncPattern is the fixed 12-byte marker opening every raw sector.
var syncPattern = [SyncSize]byte{
	0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00,
}

// zeroAddress is the address used when checking Mode 2 Form 1 ECC, which
// excludes the sector header from the parity computation.
var zeroAddress = [4]byte{}

// Format identifies the on-disc layout variant of a classified window.
type Format int

const (
	FormatLiteral Format = iota // not recognized as a data sector
	FormatMode1
	FormatMode2Form1
	FormatMode2Form2
)

func (f Format) String() string {
	switch f {
	case FormatMode1:
		return "Mode 1"
	case FormatMode2Form1:
		return "Mode 2 Form 1"
	case FormatMode2Form2:
		return "Mode 2 Form 2"
	default:
		return "Literal"
	}
}

func isZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
