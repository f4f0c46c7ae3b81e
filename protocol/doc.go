// Package protocol implements the command set of the GBxCart-style serial
// cartridge reader.
//
// # Protocol Overview
//
// The firmware is polled and speaks a minimal ASCII protocol. Commands are a
// single opcode byte, optionally followed by a numeric argument and a NUL:
//
//	Plain:    [OP]
//	Address:  [OP][HEX DIGITS...][NUL]
//	Bank:     [OP][DECIMAL DIGITS...][NUL]
//
// Reads are chunked. After CmdSetStartAddress and CmdReadROMRAM the device
// sends ChunkSize bytes and waits; each CmdContinue releases the next chunk.
// Queries such as CmdReadPCBVersion and CmdReadMode reply with one byte.
//
// # Command Encoders
//
// Use the Encode* functions to render command frames:
//
//	frame := protocol.EncodeCommand(protocol.CmdReadROMRAM)
//	frame, err := protocol.EncodeSetStartAddress(0x4000) // "A4000\x00"
//	frame, err := protocol.EncodeSetBankValue(12)        // "B12\x00"
//
// # Reply Parsers
//
//	version := protocol.ParseBoardVersion(raw)
//	voltage := protocol.ParseVoltage(raw)
package protocol
