// Package common provides tests for CD-ROM address helpers
package common

import "testing"

func TestLBAToMSF(t *testing.T) {
	testCases := []struct {
		name     string
		lba      uint32
		expected string
	}{
		{"start of data area", 0, "00:02:00"},
		{"one frame in", 1, "00:02:01"},
		{"one second of frames", 75, "00:03:00"},
		{"one minute", 4350, "01:00:00"},
		{"typical file position", 23456, "05:14:56"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LBAToMSF(tc.lba); got != tc.expected {
				t.Errorf("LBAToMSF(%d) = %q, want %q", tc.lba, got, tc.expected)
			}
		})
	}
}

func TestBCDAddress(t *testing.T) {
	testCases := []struct {
		name     string
		addr     []byte
		expected string
	}{
		{"zero address", []byte{0x00, 0x00, 0x00}, "00:00:00"},
		{"data area start", []byte{0x00, 0x02, 0x00}, "00:02:00"},
		{"bcd digits", []byte{0x12, 0x34, 0x56}, "12:34:56"},
		{"high nibbles", []byte{0xAB, 0xCD, 0xEF}, "AB:CD:EF"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BCDAddress(tc.addr); got != tc.expected {
				t.Errorf("BCDAddress(% X) = %q, want %q", tc.addr, got, tc.expected)
			}
		})
	}
}
