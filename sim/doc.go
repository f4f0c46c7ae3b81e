// Package sim provides a simulated cartridge reader for tests and demos.
//
// A Device implements transport.Port and runs the reader's command set
// against an in-memory ROM image, including ROM bank switching for MBC1,
// MBC2, MBC3 and MBC5 cartridges. Faults can be injected to exercise the
// driver's recovery paths:
//
//	rom := sim.BuildROM(sim.ROMSpec{Title: "DEMO", Mapper: cartridge.MBC5, ROMSizeCode: 2})
//	dev := sim.New(rom, sim.WithDroppedChunks(3), sim.WithMaxReadSize(16))
//	ctrl := gbxcart.New(dev.Open)
package sim
