package sim

import "github.com/moffa90/go-gbxcart/cartridge"

// bankController models the ROM side of a cartridge mapper: register writes
// below 0x8000 and reads from the two ROM windows.
type bankController interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

func newBankController(m cartridge.Mapper, rom []byte) bankController {
	switch m {
	case cartridge.ROMOnly, cartridge.ROMRAM, cartridge.ROMRAMBattery:
		return &romOnly{rom: rom}
	case cartridge.MBC1, cartridge.MBC1RAM, cartridge.MBC1RAMBattery:
		return &mbc1{rom: rom, bankLow5: 1}
	case cartridge.MBC2, cartridge.MBC2Battery:
		return &mbc2{rom: rom, bank: 1}
	case cartridge.MBC3TimerBattery, cartridge.MBC3TimerRAMBattery,
		cartridge.MBC3, cartridge.MBC3RAM, cartridge.MBC3RAMBattery:
		return &mbc3{rom: rom, bank: 1}
	default:
		return &mbc5{rom: rom, bank: 1}
	}
}

func readBank(rom []byte, bank int, addr uint16) byte {
	off := bank*0x4000 + int(addr&0x3FFF)
	if off < len(rom) {
		return rom[off]
	}
	return 0xFF
}

type romOnly struct {
	rom []byte
}

func (m *romOnly) Read(addr uint16) byte {
	if int(addr) < len(m.rom) && addr < 0x8000 {
		return m.rom[addr]
	}
	return 0xFF
}

func (m *romOnly) Write(uint16, byte) {}

// mbc1 models ROM banking only; cartridge RAM is not emulated.
type mbc1 struct {
	rom []byte

	bankLow5  byte // 0 is remapped to 1
	bankHigh2 byte
	mode      byte
}

func (m *mbc1) Read(addr uint16) byte {
	switch {
	case addr < 0x4000:
		bank := 0
		if m.mode == 1 {
			bank = int(m.bankHigh2) << 5
		}
		return readBank(m.rom, bank, addr)
	case addr < 0x8000:
		return readBank(m.rom, int(m.bankHigh2)<<5|int(m.bankLow5), addr)
	default:
		return 0xFF
	}
}

func (m *mbc1) Write(addr uint16, value byte) {
	switch {
	case addr < 0x2000:
		// RAM enable
	case addr < 0x4000:
		m.bankLow5 = value & 0x1F
		if m.bankLow5 == 0 {
			m.bankLow5 = 1
		}
	case addr < 0x6000:
		m.bankHigh2 = value & 0x03
	case addr < 0x8000:
		m.mode = value & 0x01
	}
}

type mbc2 struct {
	rom  []byte
	bank byte
}

func (m *mbc2) Read(addr uint16) byte {
	switch {
	case addr < 0x4000:
		return readBank(m.rom, 0, addr)
	case addr < 0x8000:
		return readBank(m.rom, int(m.bank), addr)
	default:
		return 0xFF
	}
}

// Address bit 8 selects between RAM enable (clear) and ROM bank (set).
func (m *mbc2) Write(addr uint16, value byte) {
	if addr < 0x4000 && addr&0x0100 != 0 {
		m.bank = value & 0x0F
		if m.bank == 0 {
			m.bank = 1
		}
	}
}

type mbc3 struct {
	rom  []byte
	bank byte
}

func (m *mbc3) Read(addr uint16) byte {
	switch {
	case addr < 0x4000:
		return readBank(m.rom, 0, addr)
	case addr < 0x8000:
		return readBank(m.rom, int(m.bank), addr)
	default:
		return 0xFF
	}
}

func (m *mbc3) Write(addr uint16, value byte) {
	if addr >= 0x2000 && addr < 0x4000 {
		m.bank = value & 0x7F
		if m.bank == 0 {
			m.bank = 1
		}
	}
}

type mbc5 struct {
	rom  []byte
	bank uint16 // 9 bits
}

func (m *mbc5) Read(addr uint16) byte {
	switch {
	case addr < 0x4000:
		return readBank(m.rom, 0, addr)
	case addr < 0x8000:
		return readBank(m.rom, int(m.bank), addr)
	default:
		return 0xFF
	}
}

func (m *mbc5) Write(addr uint16, value byte) {
	switch {
	case addr >= 0x2000 && addr < 0x3000:
		m.bank = m.bank&0x100 | uint16(value)
	case addr >= 0x3000 && addr < 0x4000:
		m.bank = m.bank&0xFF | uint16(value&0x01)<<8
	}
}
