package common

import (
	"encoding/binary"
)

// Get32LSB reads a uint32 stored least-significant-byte first, the byte
// order of every multi-byte field in a raw sector.
func Get32LSB(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// Put32LSB stores a uint32 least-significant-byte first.
func Put32LSB(b []byte, value uint32) {
	binary.LittleEndian.PutUint32(b, value)
}
