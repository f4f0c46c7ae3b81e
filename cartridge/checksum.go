package cartridge

import "encoding/binary"

// bootLogo is the bitmap every licensed cartridge carries at 0x104-0x133.
var bootLogo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// HeaderChecksum computes the 8-bit header checksum over 0x134-0x14C.
//
// The running value starts at zero and for every byte b becomes
// value - b - 1 (mod 256).
func HeaderChecksum(block []byte) byte {
	var sum byte
	for addr := offsetTitle; addr <= offsetROMVersion; addr++ {
		sum = sum - block[addr] - 1
	}
	return sum
}

// GlobalChecksum computes the 16-bit sum of every byte of a ROM image except
// the two checksum bytes themselves.
func GlobalChecksum(image []byte) uint16 {
	var sum uint16
	for i, b := range image {
		if i == offsetGlobalChecksum || i == offsetGlobalChecksum+1 {
			continue
		}
		sum += uint16(b)
	}
	return sum
}

// VerifyGlobalChecksum compares the computed global checksum of a full ROM
// image with the value stored at 0x14E-0x14F.
func VerifyGlobalChecksum(image []byte) bool {
	if len(image) < HeaderEnd {
		return false
	}
	return GlobalChecksum(image) == binary.BigEndian.Uint16(image[offsetGlobalChecksum:])
}

func logoValid(block []byte) bool {
	for i, b := range bootLogo {
		if block[offsetLogo+i] != b {
			return false
		}
	}
	return true
}
