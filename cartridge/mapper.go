package cartridge

// Mapper is the cartridge type byte at 0x147: the memory bank controller
// plus the extra hardware wired to it.
//
// Values outside the known set are kept as-is so they round-trip; their
// display name is "Unknown".
type Mapper byte

// Known mapper codes.
const (
	ROMOnly Mapper = 0x00

	MBC1           Mapper = 0x01
	MBC1RAM        Mapper = 0x02
	MBC1RAMBattery Mapper = 0x03

	MBC2        Mapper = 0x05
	MBC2Battery Mapper = 0x06

	ROMRAM        Mapper = 0x08
	ROMRAMBattery Mapper = 0x09

	MMM01           Mapper = 0x0B
	MMM01RAM        Mapper = 0x0C
	MMM01RAMBattery Mapper = 0x0D

	MBC3TimerBattery    Mapper = 0x0F
	MBC3TimerRAMBattery Mapper = 0x10
	MBC3                Mapper = 0x11
	MBC3RAM             Mapper = 0x12
	MBC3RAMBattery      Mapper = 0x13

	MBC5                 Mapper = 0x19
	MBC5RAM              Mapper = 0x1A
	MBC5RAMBattery       Mapper = 0x1B
	MBC5Rumble           Mapper = 0x1C
	MBC5RumbleRAM        Mapper = 0x1D
	MBC5RumbleRAMBattery Mapper = 0x1E

	MBC6 Mapper = 0x20

	MBC7SensorRumbleRAMBattery Mapper = 0x22

	PocketCamera   Mapper = 0xFC
	BandaiTama5    Mapper = 0xFD
	HuC3           Mapper = 0xFE
	HuC1RAMBattery Mapper = 0xFF
)

var mapperNames = map[Mapper]string{
	ROMOnly: "ROM",

	MBC1:           "MBC1",
	MBC1RAM:        "MBC1 + RAM",
	MBC1RAMBattery: "MBC1 + RAM + Battery",

	MBC2:        "MBC2",
	MBC2Battery: "MBC2 + Battery",

	ROMRAM:        "ROM + RAM",
	ROMRAMBattery: "ROM + RAM + Battery",

	MMM01:           "MMM01",
	MMM01RAM:        "MMM01 + RAM",
	MMM01RAMBattery: "MMM01 + RAM + Battery",

	MBC3TimerBattery:    "MBC3 + Timer + Battery",
	MBC3TimerRAMBattery: "MBC3 + Timer + RAM + Battery",
	MBC3:                "MBC3",
	MBC3RAM:             "MBC3 + RAM",
	MBC3RAMBattery:      "MBC3 + RAM + Battery",

	MBC5:                 "MBC5",
	MBC5RAM:              "MBC5 + RAM",
	MBC5RAMBattery:       "MBC5 + RAM + Battery",
	MBC5Rumble:           "MBC5 + Rumble",
	MBC5RumbleRAM:        "MBC5 + Rumble + RAM",
	MBC5RumbleRAMBattery: "MBC5 + Rumble + RAM + Battery",

	MBC6: "MBC6",

	MBC7SensorRumbleRAMBattery: "MBC7 + Sensor + Rumble + RAM + Battery",

	PocketCamera:   "Pocket Camera",
	BandaiTama5:    "Bandai Tama 5",
	HuC3:           "HuC3",
	HuC1RAMBattery: "HuC1 + RAM + Battery",
}

// String returns the display name of the mapper.
func (m Mapper) String() string {
	if name, ok := mapperNames[m]; ok {
		return name
	}
	return "Unknown"
}

// Known reports whether the code is one of the recognised mapper types.
func (m Mapper) Known() bool {
	_, ok := mapperNames[m]
	return ok
}

// Mappers returns every known mapper code in ascending order.
func Mappers() []Mapper {
	out := make([]Mapper, 0, len(mapperNames))
	for i := 0; i <= 0xFF; i++ {
		if m := Mapper(i); m.Known() {
			out = append(out, m)
		}
	}
	return out
}
