package cartridge

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Header layout offsets.
const (
	// HeaderBlockSize is the number of bytes read from the device to decode
	// a header (0x0000-0x017F)
	HeaderBlockSize = 0x180

	// HeaderEnd is one past the last header byte; shorter input cannot be decoded
	HeaderEnd = 0x150

	offsetLogo           = 0x104
	offsetTitle          = 0x134
	offsetCGBFlag        = 0x143
	offsetSGBFlag        = 0x146
	offsetMapper         = 0x147
	offsetROMSize        = 0x148
	offsetRAMSize        = 0x149
	offsetDestination    = 0x14A
	offsetROMVersion     = 0x14C
	offsetHeaderChecksum = 0x14D
	offsetGlobalChecksum = 0x14E

	titleLength      = 16
	colorTitleLength = 15

	flagEnhanced = 0x80
	flagColor    = 0xC0
	flagSGB      = 0x03
)

// CartridgeType is the console family a cartridge targets.
type CartridgeType int

const (
	Gameboy CartridgeType = iota
	GameboyEnhanced
	GameboyColor

	// GameboyAdvance is never produced by Decode
	GameboyAdvance
)

func (t CartridgeType) String() string {
	switch t {
	case Gameboy:
		return "Gameboy"
	case GameboyEnhanced:
		return "Gameboy (Color enhanced)"
	case GameboyColor:
		return "Gameboy Color"
	case GameboyAdvance:
		return "Gameboy Advance"
	default:
		return "Unknown"
	}
}

// Header is the decoded cartridge header.
type Header struct {
	// Title is the raw ASCII title. It may contain NUL padding; use SafeTitle
	// for filenames.
	Title string

	// Type is derived from the CGB flag at 0x143
	Type CartridgeType

	// SGBEnhanced is set when the cartridge supports Super Game Boy functions
	SGBEnhanced bool

	// Mapper is the cartridge type byte at 0x147
	Mapper Mapper

	// ROMBanks is the number of 16KB ROM banks (at least 2)
	ROMBanks uint32

	// RAMBanks is the number of 8KB RAM banks
	RAMBanks uint32

	// ChecksumValid reports whether the computed header checksum matches 0x14D
	ChecksumValid bool

	ROMSizeCode    byte
	RAMSizeCode    byte
	Destination    byte
	ROMVersion     byte
	HeaderChecksum byte
	GlobalChecksum uint16

	// LogoValid reports whether the boot logo at 0x104 is intact. A bad logo
	// usually means dirty cartridge contacts.
	LogoValid bool
}

// Decode interprets a raw header block read from address 0x0000.
// A checksum mismatch is reported through ChecksumValid, not as an error.
func Decode(block []byte) (*Header, error) {
	if len(block) < HeaderEnd {
		return nil, &ShortHeaderError{Length: len(block), Want: HeaderEnd}
	}

	var cartType CartridgeType
	switch block[offsetCGBFlag] {
	case flagEnhanced:
		cartType = GameboyEnhanced
	case flagColor:
		cartType = GameboyColor
	default:
		cartType = Gameboy
	}

	n := colorTitleLength
	if cartType == Gameboy {
		n = titleLength
	}

	mapper := Mapper(block[offsetMapper])
	romCode := block[offsetROMSize]
	ramCode := block[offsetRAMSize]

	h := &Header{
		Title:          string(block[offsetTitle : offsetTitle+n]),
		Type:           cartType,
		SGBEnhanced:    block[offsetSGBFlag] == flagSGB,
		Mapper:         mapper,
		ROMBanks:       romBanks(romCode),
		RAMBanks:       ramBanks(mapper, ramCode),
		ChecksumValid:  HeaderChecksum(block) == block[offsetHeaderChecksum],
		ROMSizeCode:    romCode,
		RAMSizeCode:    ramCode,
		Destination:    block[offsetDestination],
		ROMVersion:     block[offsetROMVersion],
		HeaderChecksum: block[offsetHeaderChecksum],
		GlobalChecksum: binary.BigEndian.Uint16(block[offsetGlobalChecksum : offsetGlobalChecksum+2]),
		LogoValid:      logoValid(block),
	}

	return h, nil
}

// Codes whose bank count would not fit in 32 bits fall back to the minimum.
func romBanks(code byte) uint32 {
	if code > 1 && code < 31 {
		return 2 << code
	}
	return 2
}

// ramBanks applies the mapper default first; the size code overrides it.
func ramBanks(m Mapper, code byte) uint32 {
	var banks uint32
	if m == MBC2Battery {
		banks = 1
	}
	switch code {
	case 2:
		banks = 1
	case 3:
		banks = 4
	case 4:
		banks = 16
	case 5:
		banks = 8
	}
	return banks
}

// SafeTitle returns the title with NUL bytes replaced by spaces.
func (h *Header) SafeTitle() string {
	return strings.ReplaceAll(h.Title, "\x00", " ")
}

// FileName returns the suggested output file name for the ROM image.
func (h *Header) FileName() string {
	return h.SafeTitle() + ".gb"
}

// Family returns the bank-select family of the header's mapper.
func (h *Header) Family() Family {
	return FamilyOf(h.Mapper)
}

// ROMSize returns the size of the full ROM image in bytes.
func (h *Header) ROMSize() int {
	return int(h.ROMBanks) * 0x4000
}

// ROMText describes the ROM size for display.
func (h *Header) ROMText() string {
	switch h.ROMBanks {
	case 2:
		return "32KB"
	case 4:
		return "64KB (4 banks)"
	case 8:
		return "128KB (8 banks)"
	case 16:
		return "256KB (16 banks)"
	case 32:
		return "512KB (32 banks)"
	case 64:
		return "1MB (64 banks)"
	case 128:
		return "2MB (128 banks)"
	case 256:
		return "4MB (256 banks)"
	case 512:
		return "8MB (512 banks)"
	default:
		return "Unknown"
	}
}

// RAMText describes the RAM size for display.
func (h *Header) RAMText() string {
	switch h.RAMBanks {
	case 0:
		return "0KB"
	case 1:
		return "8KB"
	case 4:
		return "32KB (4 banks of 8KB)"
	case 8:
		return "64KB (8 banks of 8KB)"
	case 16:
		return "128KB (16 banks of 8KB)"
	default:
		return "Unknown"
	}
}

// ChecksumText describes the header checksum state for display.
func (h *Header) ChecksumText() string {
	if h.ChecksumValid {
		return "OK"
	}
	return "Invalid"
}

func (h *Header) String() string {
	return fmt.Sprintf("%q %s, %s, ROM %s, RAM %s, checksum %s",
		h.SafeTitle(), h.Type, h.Mapper, h.ROMText(), h.RAMText(), h.ChecksumText())
}
