package ecc

// ComputeEDC folds buf into the running EDC checksum seeded with edc.
// Sector region checks seed with zero; a caller checksumming a stream in
// pieces seeds each call with the previous result.
func (t *Tables) ComputeEDC(edc uint32, buf []byte) uint32 {
	for _, b := range buf {
		edc = (edc >> 8) ^ t.EDC[(edc^uint32(b))&0xFF]
	}
	return edc
}
