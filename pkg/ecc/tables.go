// Package ecc implements the error detection and correction primitives of
// the CD-ROM (Yellow Book) sector format: the GF(256) lookup tables, the
// 32-bit EDC checksum and the P/Q parity product-code verifier.
package ecc

// Tables holds the precomputed lookup tables shared by every EDC and ECC
// routine. Built once by NewTables and treated as read-only afterwards.
type Tables struct {
	Forward  [256]byte   // GF(256) multiplication by the generator element
	Backward [256]byte   // inverse of i -> i XOR Forward[i]
	EDC      [256]uint32 // per-byte EDC polynomial remainders
}

// NewTables builds the lookup tables from the generator polynomial 0x11D
// and the EDC polynomial 0xD8018001, both fixed by the CD-ROM standard.
func NewTables() *Tables {
	t := &Tables{}
	for i := 0; i < 256; i++ {
		f := i << 1
		if i&0x80 != 0 {
			f ^= 0x11D
		}
		f &= 0xFF
		t.Forward[i] = byte(f)
		t.Backward[i^f] = byte(i)

		edc := uint32(i)
		for j := 0; j < 8; j++ {
			if edc&1 != 0 {
				edc = (edc >> 1) ^ 0xD8018001
			} else {
				edc >>= 1
			}
		}
		t.EDC[i] = edc
	}
	return t
}
