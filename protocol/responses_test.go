package protocol

import "testing"

func TestParseBoardVersion(t *testing.T) {
	tests := []struct {
		raw  byte
		want BoardVersion
	}{
		{raw: 1, want: BoardV1_0},
		{raw: 2, want: BoardV1_1},
		{raw: 3, want: BoardUnknown},
		{raw: 4, want: BoardV1_3},
		{raw: 90, want: BoardXMAS},
		{raw: 0, want: BoardUnknown},
		{raw: 0xFF, want: BoardUnknown},
	}

	for _, tt := range tests {
		if got := ParseBoardVersion(tt.raw); got != tt.want {
			t.Errorf("ParseBoardVersion(%d) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestBoardVersionCanSwitchVoltage(t *testing.T) {
	tests := []struct {
		version BoardVersion
		want    bool
	}{
		{BoardUnknown, false},
		{BoardV1_0, false},
		{BoardV1_1, false},
		{BoardV1_3, true},
		{BoardXMAS, true},
	}

	for _, tt := range tests {
		if got := tt.version.CanSwitchVoltage(); got != tt.want {
			t.Errorf("%v.CanSwitchVoltage() = %v, want %v", tt.version, got, tt.want)
		}
	}
}

func TestParseVoltage(t *testing.T) {
	tests := []struct {
		name string
		raw  byte
		want Voltage
	}{
		{name: "ascii 5", raw: '5', want: VoltageGameboy},
		{name: "mode gameboy", raw: 1, want: VoltageGameboy},
		{name: "ascii 3", raw: '3', want: VoltageGameboyAdvance},
		{name: "mode advance", raw: 2, want: VoltageGameboyAdvance},
		{name: "zero", raw: 0, want: VoltageUnknown},
		{name: "garbage", raw: 'x', want: VoltageUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseVoltage(tt.raw); got != tt.want {
				t.Errorf("ParseVoltage(%d) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestVoltageCommand(t *testing.T) {
	if op, ok := VoltageGameboy.Command(); !ok || op != CmdVoltage5V {
		t.Errorf("VoltageGameboy.Command() = %q, %v", op, ok)
	}
	if op, ok := VoltageGameboyAdvance.Command(); !ok || op != CmdVoltage3V {
		t.Errorf("VoltageGameboyAdvance.Command() = %q, %v", op, ok)
	}
	if _, ok := VoltageUnknown.Command(); ok {
		t.Error("VoltageUnknown.Command() should report false")
	}
}

func TestParseVoltageName(t *testing.T) {
	for _, name := range []string{VoltageGameboy.String(), VoltageGameboyAdvance.String()} {
		v, err := ParseVoltageName(name)
		if err != nil {
			t.Fatalf("ParseVoltageName(%q) error: %v", name, err)
		}
		if v.String() != name {
			t.Errorf("round trip %q -> %q", name, v.String())
		}
	}

	if _, err := ParseVoltageName("12V"); err == nil {
		t.Error("expected error for unknown voltage name")
	}
}
