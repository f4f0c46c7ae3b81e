package sim

import (
	"encoding/binary"

	"github.com/moffa90/go-gbxcart/cartridge"
)

// boot logo expected at 0x104 by the console and by cartridge.Header.LogoValid
var bootLogo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
	0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
	0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// ROMSpec describes a synthetic ROM image.
type ROMSpec struct {
	Title       string
	CGBFlag     byte
	SGB         bool
	Mapper      cartridge.Mapper
	ROMSizeCode byte
	RAMSizeCode byte

	// Banks overrides the image size derived from ROMSizeCode when non-zero
	Banks int
}

// BuildROM returns a ROM image with a valid logo, header checksum and global
// checksum. Every bank is filled with a pattern that differs from every other
// bank so misplaced bank reads are detectable.
func BuildROM(cfg ROMSpec) []byte {
	banks := cfg.Banks
	if banks == 0 {
		banks = 2
		if cfg.ROMSizeCode > 1 {
			banks = 2 << cfg.ROMSizeCode
		}
	}

	rom := make([]byte, banks*0x4000)
	for i := range rom {
		bank := i / 0x4000
		rom[i] = byte(i) ^ byte(bank*37) ^ byte(i>>8)
	}

	// entry point area and header
	for i := 0x100; i < 0x150; i++ {
		rom[i] = 0
	}
	copy(rom[0x104:], bootLogo[:])
	title := []byte(cfg.Title)
	if len(title) > 16 {
		title = title[:16]
	}
	copy(rom[0x134:0x144], title)
	if cfg.CGBFlag != 0 {
		rom[0x143] = cfg.CGBFlag
	}
	if cfg.SGB {
		rom[0x146] = 0x03
	}
	rom[0x147] = byte(cfg.Mapper)
	rom[0x148] = cfg.ROMSizeCode
	rom[0x149] = cfg.RAMSizeCode
	rom[0x14B] = 0x33
	rom[0x14C] = 0x00
	rom[0x14D] = cartridge.HeaderChecksum(rom)
	binary.BigEndian.PutUint16(rom[0x14E:], cartridge.GlobalChecksum(rom))

	return rom
}
