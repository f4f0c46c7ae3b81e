package protocol

// Command opcodes understood by the reader firmware. Every command is a
// single ASCII byte; addressing and bank commands carry a NUL-terminated
// numeric argument.
const (
	// CmdReset resets the device and its cartridge addressing
	CmdReset = '0'

	// CmdContinue requests the next chunk of an in-progress read
	CmdContinue = '1'

	// CmdReadPCBVersion returns the board revision as a single byte
	CmdReadPCBVersion = 'h'

	// CmdReadFirmwareVersion returns the firmware version as a single byte
	CmdReadFirmwareVersion = 'V'

	// CmdReadROMRAM begins a read at the previously set start address
	CmdReadROMRAM = 'R'

	// CmdSetStartAddress sets the read cursor (hex argument)
	CmdSetStartAddress = 'A'

	// CmdSetBank writes a mapper register; sent twice, first with the
	// register address in hex and then with the value in decimal
	CmdSetBank = 'B'

	// CmdVoltage5V switches the cartridge slot to 5V (Game Boy)
	CmdVoltage5V = '5'

	// CmdVoltage3V switches the cartridge slot to 3.3V (Game Boy Advance)
	CmdVoltage3V = '3'

	// CmdReadMode returns the current voltage/mode byte
	CmdReadMode = 'C'
)

// Terminator ends every command that carries an argument.
const Terminator = 0x00

// Raw mode codes reported by CmdReadMode on boards with a mode switch.
// They are never sent as commands.
const (
	ModeGameboy        = 1
	ModeGameboyAdvance = 2
)

// Raw board revision codes reported by CmdReadPCBVersion.
const (
	PCBVersion1_0  = 1
	PCBVersion1_1  = 2
	PCBVersion1_3  = 4
	PCBVersionXMAS = 90
)

// Serial link parameters expected by the firmware.
const (
	// DefaultBaudRate is the fixed link speed of the reader
	DefaultBaudRate = 1000000

	// ChunkSize is the number of bytes the device sends per read/continue
	ChunkSize = 64

	// MaxAddress is the highest address the firmware accepts
	MaxAddress = 0xFFFF
)

// Cartridge address map as seen through the reader.
const (
	// FixedBankStart is the start of ROM bank 0
	FixedBankStart = 0x0000

	// SwitchableBankStart is the start of the switchable 16KB window
	SwitchableBankStart = 0x4000

	// SwitchableBankEnd is one past the last byte of the switchable window
	SwitchableBankEnd = 0x8000

	// BankSize is the size of a ROM bank
	BankSize = 0x4000
)
