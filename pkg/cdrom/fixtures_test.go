// Package cdrom provides sector fixtures for the classifier and scanner
// tests. The parity generator runs the same column walk as the verifier but
// stores the resulting parity bytes instead of comparing them.
package cdrom

import (
	"github.com/hansbonini/discchk/pkg/common"
	"github.com/hansbonini/discchk/pkg/ecc"
)

func genParity(t *ecc.Tables, address, data []byte, majorCount, minorCount, majorStride, minorStride int, eccOut []byte) {
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
		eccOut[major] = a
		eccOut[major+majorCount] = a ^ b
	}
}

// genSectorECC fills a 276-byte ECC block. P must be generated before Q,
// because the Q plane covers the P parity bytes when data aliases the
// sector body.
func genSectorECC(t *ecc.Tables, address, data, eccOut []byte) {
	genParity(t, address, data, 86, 24, 2, 86, eccOut[:0xAC])
	genParity(t, address, data, 52, 43, 86, 88, eccOut[0xAC:])
}

// buildMode1Sector returns a valid Mode 1 sector with an all-zero payload
// at BCD address 00:02:00.
func buildMode1Sector(t *ecc.Tables) []byte {
	sector := make([]byte, SectorSize)
	copy(sector, syncPattern[:])
	sector[addressOffset+1] = 0x02
	sector[modeOffset] = 0x01
	common.Put32LSB(sector[mode1EDCOffset:], t.ComputeEDC(0, sector[:mode1EDCOffset]))
	genSectorECC(t,
		sector[addressOffset:addressOffset+4],
		sector[payloadOffset:],
		sector[mode1ECCOffset:mode1ECCOffset+ECCSize])
	return sector
}

// buildMode0Sector returns a Mode 0 sector, optionally with a nonzero
// payload byte that makes it invalid.
func buildMode0Sector(corrupt bool) []byte {
	sector := make([]byte, SectorSize)
	copy(sector, syncPattern[:])
	sector[addressOffset+1] = 0x02
	sector[addressOffset+2] = 0x01
	if corrupt {
		sector[payloadOffset+512] = 0xAA
	}
	return sector
}

// buildHeaderlessMode2 returns a valid headerless (2336-byte) Mode 2 sector
// of the requested form, flags field duplicated.
func buildHeaderlessMode2(t *ecc.Tables, form2 bool) []byte {
	m2 := make([]byte, HeaderlessSize)
	m2[0] = 0x01 // file number
	if form2 {
		m2[2] = submodeForm2 | 0x08
	} else {
		m2[2] = 0x08
	}
	copy(m2[4:8], m2[0:4])

	if form2 {
		common.Put32LSB(m2[form2EDCOffset:], t.ComputeEDC(0, m2[:form2EDCOffset]))
	} else {
		common.Put32LSB(m2[form1EDCOffset:], t.ComputeEDC(0, m2[:form1EDCOffset]))
		genSectorECC(t, zeroAddress[:], m2, m2[form1ECCOffset:form1ECCOffset+ECCSize])
	}
	return m2
}

// buildMode2Sector returns a valid full raw Mode 2 sector of the requested
// form at BCD address 00:02:01.
func buildMode2Sector(t *ecc.Tables, form2 bool) []byte {
	sector := make([]byte, SectorSize)
	copy(sector, syncPattern[:])
	sector[addressOffset+1] = 0x02
	sector[addressOffset+2] = 0x01
	sector[modeOffset] = 0x02
	copy(sector[payloadOffset:], buildHeaderlessMode2(t, form2))
	return sector
}
