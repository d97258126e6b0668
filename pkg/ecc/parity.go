package ecc

// CheckParity verifies one parity plane (P or Q) of the sector product code.
// The plane covers a virtual buffer formed by the 4-byte address followed by
// data, with indices wrapping modulo majorCount*minorCount. Returns true
// only if every stored parity byte matches; no correction is attempted.
func (t *Tables) CheckParity(
	address []byte,
	data []byte,
	majorCount int,
	minorCount int,
	majorStride int,
	minorStride int,
	eccBlock []byte,
) bool {
	size := majorCount * minorCount
	for major := 0; major < majorCount; major++ {
		index := (major>>1)*majorStride + (major & 1)
		var a, b byte
		for minor := 0; minor < minorCount; minor++ {
			var v byte
			if index < 4 {
				v = address[index]
			} else {
				v = data[index-4]
			}
			index += minorStride
			if index >= size {
				index -= size
			}
			a ^= v
			b ^= v
			a = t.Forward[a]
		}
		a = t.Backward[t.Forward[a]^b]
		if eccBlock[major] != a || eccBlock[major+majorCount] != a^b {
			return false
		}
	}
	return true
}

// CheckSector verifies both parity planes of a sector's 276-byte ECC block.
// The plane geometries are fixed by the CD-ROM standard.
func (t *Tables) CheckSector(address, data, eccBlock []byte) bool {
	return t.CheckParity(address, data, 86, 24, 2, 86, eccBlock[:0xAC]) && // P
		t.CheckParity(address, data, 52, 43, 86, 88, eccBlock[0xAC:]) // Q
}
