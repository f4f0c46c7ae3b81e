package protocol

// BoardVersion is the hardware revision of the reader PCB.
type BoardVersion int

// Known board revisions.
const (
	BoardUnknown BoardVersion = iota
	BoardV1_0
	BoardV1_1
	BoardV1_3
	BoardXMAS
)

func (v BoardVersion) String() string {
	switch v {
	case BoardV1_0:
		return "v1.0"
	case BoardV1_1:
		return "v1.1"
	case BoardV1_3:
		return "v1.3"
	case BoardXMAS:
		return "XMAS"
	default:
		return "Unknown"
	}
}

// CanSwitchVoltage reports whether the revision has a software voltage switch.
// Older boards use a physical switch only.
func (v BoardVersion) CanSwitchVoltage() bool {
	return v == BoardV1_3 || v == BoardXMAS
}

// Voltage is the cartridge slot voltage, named after the console family
// that uses it.
type Voltage int

// Slot voltages.
const (
	VoltageUnknown Voltage = iota
	VoltageGameboy
	VoltageGameboyAdvance
)

func (v Voltage) String() string {
	switch v {
	case VoltageGameboy:
		return "Gameboy"
	case VoltageGameboyAdvance:
		return "Gameboy Advance"
	default:
		return "Unknown"
	}
}

// Command returns the opcode that selects the voltage.
// The second result is false for VoltageUnknown.
func (v Voltage) Command() (byte, bool) {
	switch v {
	case VoltageGameboy:
		return CmdVoltage5V, true
	case VoltageGameboyAdvance:
		return CmdVoltage3V, true
	default:
		return 0, false
	}
}

// ParseVoltageName converts a display name back into a Voltage.
func ParseVoltageName(s string) (Voltage, error) {
	switch s {
	case "Gameboy", "gb", "5v", "5V":
		return VoltageGameboy, nil
	case "Gameboy Advance", "gba", "3v", "3V":
		return VoltageGameboyAdvance, nil
	default:
		return VoltageUnknown, &ArgumentError{Command: CmdReadMode, Reason: "unknown voltage " + s}
	}
}
