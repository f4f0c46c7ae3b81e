package protocol

// ParseBoardVersion interprets the single-byte reply to CmdReadPCBVersion.
// Unrecognised values map to BoardUnknown.
func ParseBoardVersion(raw byte) BoardVersion {
	switch raw {
	case PCBVersion1_0:
		return BoardV1_0
	case PCBVersion1_1:
		return BoardV1_1
	case PCBVersion1_3:
		return BoardV1_3
	case PCBVersionXMAS:
		return BoardXMAS
	default:
		return BoardUnknown
	}
}

// ParseVoltage interprets the single-byte reply to CmdReadMode.
//
// Depending on the firmware the reply is either the ASCII voltage command
// that was last applied ('5' or '3') or the numeric mode code (1 or 2).
func ParseVoltage(raw byte) Voltage {
	switch raw {
	case CmdVoltage5V, ModeGameboy:
		return VoltageGameboy
	case CmdVoltage3V, ModeGameboyAdvance:
		return VoltageGameboyAdvance
	default:
		return VoltageUnknown
	}
}
