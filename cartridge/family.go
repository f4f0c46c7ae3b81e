package cartridge

// Family groups mappers by the register layout used to select a ROM bank.
type Family int

const (
	// FamilyMBC1 covers codes below 0x05: ROM-only and the MBC1 variants.
	// The bank number is split across two registers and the banking mode
	// must be forced to ROM banking first.
	FamilyMBC1 Family = iota

	// FamilyMBC2Plus covers MBC2 and every later controller. The low 8
	// bits go to 0x2100 and the ninth bit to 0x3000.
	FamilyMBC2Plus
)

func (f Family) String() string {
	switch f {
	case FamilyMBC1:
		return "MBC1"
	case FamilyMBC2Plus:
		return "MBC2+"
	default:
		return "Unknown"
	}
}

// FamilyOf returns the bank-select family of a mapper.
func FamilyOf(m Mapper) Family {
	if m < MBC2 {
		return FamilyMBC1
	}
	return FamilyMBC2Plus
}

// Mapper register addresses written during bank selection.
const (
	RegMBC1BankLow   = 0x2000
	RegMBC1BankHigh  = 0x4000
	RegMBC1Mode      = 0x6000
	RegBankLow       = 0x2100
	RegBankHigh      = 0x3000
	highBankSelector = 1
)

// BankWrite is a single mapper register write.
type BankWrite struct {
	Address uint16
	Value   uint16
}

// BankWrites returns the register writes that map bank into the switchable
// window 0x4000-0x7FFF, in the order they must be sent.
func (f Family) BankWrites(bank uint16) []BankWrite {
	switch f {
	case FamilyMBC1:
		return []BankWrite{
			{Address: RegMBC1Mode, Value: 0},
			{Address: RegMBC1BankHigh, Value: (bank >> 5) & 0x03},
			{Address: RegMBC1BankLow, Value: bank & 0x1F},
		}
	default:
		writes := []BankWrite{{Address: RegBankLow, Value: bank & 0xFF}}
		if bank >= 256 {
			writes = append(writes, BankWrite{Address: RegBankHigh, Value: highBankSelector})
		}
		return writes
	}
}
