package cartridge

import "testing"

func TestMapperNames(t *testing.T) {
	tests := []struct {
		m    Mapper
		want string
	}{
		{ROMOnly, "ROM"},
		{MBC1RAMBattery, "MBC1 + RAM + Battery"},
		{MBC2Battery, "MBC2 + Battery"},
		{MBC3TimerRAMBattery, "MBC3 + Timer + RAM + Battery"},
		{MBC5RumbleRAMBattery, "MBC5 + Rumble + RAM + Battery"},
		{MBC7SensorRumbleRAMBattery, "MBC7 + Sensor + Rumble + RAM + Battery"},
		{PocketCamera, "Pocket Camera"},
		{HuC1RAMBattery, "HuC1 + RAM + Battery"},
		{Mapper(0x04), "Unknown"},
		{Mapper(0xFB), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mapper(0x%02X).String() = %q, want %q", byte(tt.m), got, tt.want)
		}
	}
}

func TestMappersCount(t *testing.T) {
	all := Mappers()
	if len(all) != 28 {
		t.Fatalf("len(Mappers()) = %d, want 28", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Errorf("Mappers() not sorted at %d", i)
		}
	}
}
