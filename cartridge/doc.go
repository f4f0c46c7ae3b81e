// Package cartridge decodes Game Boy cartridge headers and describes how
// each mapper family selects ROM banks.
//
// # Header
//
// The header lives at 0x100-0x14F of ROM bank 0. Decode takes the raw block
// read from the reader (HeaderBlockSize bytes starting at 0x0000):
//
//	h, err := cartridge.Decode(block)
//	fmt.Println(h.Title, h.Mapper, h.ROMText(), h.ChecksumText())
//
// The header checksum is always recomputed. A mismatch is reported through
// Header.ChecksumValid so callers can decide whether to continue.
//
// # Bank Selection
//
// Only 32KB of ROM is visible at once: bank 0 at 0x0000-0x3FFF and a
// switchable bank at 0x4000-0x7FFF. Family.BankWrites returns the mapper
// register writes that select a bank:
//
//	for _, w := range h.Family().BankWrites(bank) {
//	    // write w.Value to w.Address on the cartridge bus
//	}
//
// # ROM Images
//
// ParseFile and ParseReader decode the header of an existing dump, and
// VerifyGlobalChecksum checks the 16-bit checksum over a full image.
package cartridge
