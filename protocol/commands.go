package protocol

import "strconv"

// EncodeCommand renders an argument-less command.
//
// Frame structure:
//
//	[OP]
func EncodeCommand(op byte) []byte {
	return []byte{op}
}

// EncodeHex renders a command with a lowercase hexadecimal argument.
//
// Frame structure:
//
//	[OP][HEX DIGITS...][NUL]
func EncodeHex(op byte, n uint32) []byte {
	frame := make([]byte, 0, 10)
	frame = append(frame, op)
	frame = strconv.AppendUint(frame, uint64(n), 16)
	return append(frame, Terminator)
}

// EncodeDecimal renders a command with a decimal argument.
//
// Frame structure:
//
//	[OP][DECIMAL DIGITS...][NUL]
func EncodeDecimal(op byte, n uint32) []byte {
	frame := make([]byte, 0, 12)
	frame = append(frame, op)
	frame = strconv.AppendUint(frame, uint64(n), 10)
	return append(frame, Terminator)
}

// EncodeSetStartAddress builds the command that moves the device read cursor.
func EncodeSetStartAddress(addr uint32) ([]byte, error) {
	if addr > MaxAddress {
		return nil, &ArgumentError{Command: CmdSetStartAddress, Value: addr}
	}
	return EncodeHex(CmdSetStartAddress, addr), nil
}

// EncodeSetBankAddress builds the first half of a bank write: the mapper
// register address the next value is written to.
func EncodeSetBankAddress(addr uint32) ([]byte, error) {
	if addr > MaxAddress {
		return nil, &ArgumentError{Command: CmdSetBank, Value: addr}
	}
	return EncodeHex(CmdSetBank, addr), nil
}

// EncodeSetBankValue builds the second half of a bank write: the value
// latched into the register selected by EncodeSetBankAddress.
func EncodeSetBankValue(value uint32) ([]byte, error) {
	if value > MaxAddress {
		return nil, &ArgumentError{Command: CmdSetBank, Value: value}
	}
	return EncodeDecimal(CmdSetBank, value), nil
}
