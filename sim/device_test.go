package sim

import (
	"bytes"
	"testing"

	"github.com/moffa90/go-gbxcart/cartridge"
	"github.com/moffa90/go-gbxcart/protocol"
	"github.com/moffa90/go-gbxcart/transport"
	"github.com/pkg/errors"
)

func write(t *testing.T, d *Device, b ...byte) {
	t.Helper()
	if _, err := d.Write(b); err != nil {
		t.Fatalf("Write(%q) error = %v", b, err)
	}
}

func readAll(d *Device) []byte {
	var out []byte
	buf := make([]byte, 256)
	for {
		n, err := d.Read(buf)
		if err != nil {
			return out
		}
		out = append(out, buf[:n]...)
	}
}

func TestBuildROM(t *testing.T) {
	rom := BuildROM(ROMSpec{
		Title:       "ZELDA",
		CGBFlag:     0xC0,
		Mapper:      cartridge.MBC5RAMBattery,
		ROMSizeCode: 3,
		RAMSizeCode: 3,
	})

	if len(rom) != 16*0x4000 {
		t.Fatalf("len = %d, want %d", len(rom), 16*0x4000)
	}

	h, err := cartridge.Decode(rom[:cartridge.HeaderBlockSize])
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !h.ChecksumValid || !h.LogoValid {
		t.Errorf("ChecksumValid = %v, LogoValid = %v", h.ChecksumValid, h.LogoValid)
	}
	if h.Type != cartridge.GameboyColor || h.ROMBanks != 16 || h.RAMBanks != 4 {
		t.Errorf("header = %+v", h)
	}
	if !cartridge.VerifyGlobalChecksum(rom) {
		t.Error("global checksum invalid")
	}

	// banks must be distinguishable
	if bytes.Equal(rom[0x4000:0x4100], rom[0x8000:0x8100]) {
		t.Error("banks 1 and 2 have identical content")
	}
}

func TestDeviceQueries(t *testing.T) {
	d := New(BuildROM(ROMSpec{}),
		WithPCBVersion(protocol.PCBVersion1_1),
		WithFirmwareVersion(17),
		WithMode(protocol.ModeGameboy),
	)

	tests := []struct {
		op   byte
		want byte
	}{
		{protocol.CmdReadPCBVersion, protocol.PCBVersion1_1},
		{protocol.CmdReadFirmwareVersion, 17},
		{protocol.CmdReadMode, protocol.ModeGameboy},
	}

	for _, tt := range tests {
		write(t, d, tt.op)
		got := readAll(d)
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("reply to %q = %v, want [%d]", tt.op, got, tt.want)
		}
	}
}

func TestDeviceVoltageSwitch(t *testing.T) {
	tests := []struct {
		name  string
		board byte
		want  byte
	}{
		{"v1.1 ignores", protocol.PCBVersion1_1, protocol.CmdVoltage5V},
		{"v1.3 switches", protocol.PCBVersion1_3, protocol.CmdVoltage3V},
		{"XMAS switches", protocol.PCBVersionXMAS, protocol.CmdVoltage3V},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(BuildROM(ROMSpec{}), WithPCBVersion(tt.board))
			write(t, d, protocol.CmdVoltage3V, protocol.CmdReadMode)
			got := readAll(d)
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("mode = %v, want %q", got, tt.want)
			}
		})
	}
}

func TestDeviceReadChunks(t *testing.T) {
	rom := BuildROM(ROMSpec{Mapper: cartridge.MBC5, ROMSizeCode: 2})
	d := New(rom)

	write(t, d, []byte("A100\x00R")...)
	first := readAll(d)
	if !bytes.Equal(first, rom[0x100:0x140]) {
		t.Errorf("first chunk = %X", first)
	}

	write(t, d, protocol.CmdContinue)
	second := readAll(d)
	if !bytes.Equal(second, rom[0x140:0x180]) {
		t.Errorf("second chunk = %X", second)
	}

	if d.Cursor() != 0x180 {
		t.Errorf("Cursor() = 0x%X, want 0x180", d.Cursor())
	}

	write(t, d, protocol.CmdReset)
	if d.Cursor() != 0 {
		t.Errorf("Cursor() after reset = 0x%X, want 0", d.Cursor())
	}

	want := []string{"A100", "R", "1", "0"}
	got := d.Commands()
	if len(got) != len(want) {
		t.Fatalf("Commands() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Commands()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDeviceBankSwitching(t *testing.T) {
	tests := []struct {
		name   string
		mapper cartridge.Mapper
		banks  int
		writes string
		bank   int
	}{
		{"MBC1 low bits", cartridge.MBC1, 8, "B6000\x00B0\x00B4000\x00B0\x00B2000\x00B5\x00", 5},
		{"MBC1 zero maps to one", cartridge.MBC1, 8, "B2000\x00B0\x00", 1},
		{"MBC2", cartridge.MBC2, 8, "B2100\x00B3\x00", 3},
		{"MBC3", cartridge.MBC3, 8, "B2100\x00B6\x00", 6},
		{"MBC5", cartridge.MBC5, 8, "B2100\x00B7\x00", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rom := BuildROM(ROMSpec{Mapper: tt.mapper, Banks: tt.banks})
			d := New(rom)

			write(t, d, []byte(tt.writes)...)
			write(t, d, []byte("A4000\x00R")...)

			got := readAll(d)
			off := tt.bank * 0x4000
			if !bytes.Equal(got, rom[off:off+64]) {
				t.Errorf("window shows %X, want bank %d", got[:8], tt.bank)
			}
		})
	}
}

func TestDeviceMBC5HighBank(t *testing.T) {
	rom := BuildROM(ROMSpec{Mapper: cartridge.MBC5, Banks: 260})
	d := New(rom)

	write(t, d, []byte("B2100\x00B3\x00B3000\x00B1\x00A4000\x00R")...)
	got := readAll(d)

	off := 259 * 0x4000
	if !bytes.Equal(got, rom[off:off+64]) {
		t.Errorf("window does not show bank 259")
	}
}

func TestDeviceFaults(t *testing.T) {
	boom := errors.New("boom")
	rom := BuildROM(ROMSpec{})
	d := New(rom, WithDroppedChunks(0), WithReadFault(1, boom), WithMaxReadSize(10))

	write(t, d, []byte("A0\x00R")...)
	buf := make([]byte, 64)

	// chunk 0 lost
	if _, err := d.Read(buf); !transport.IsTimeout(err) {
		t.Fatalf("Read() error = %v, want timeout", err)
	}
	if d.Cursor() != 64 {
		t.Errorf("cursor should advance past a dropped chunk, got 0x%X", d.Cursor())
	}

	write(t, d, protocol.CmdContinue)
	if _, err := d.Read(buf); err != boom {
		t.Fatalf("Read() error = %v, want injected fault", err)
	}

	n, err := d.Read(buf)
	if err != nil || n != 10 {
		t.Fatalf("Read() = %d, %v; want 10 bytes", n, err)
	}
	if !bytes.Equal(buf[:n], rom[64:74]) {
		t.Errorf("partial read = %X", buf[:n])
	}

	if err := d.ResetInputBuffer(); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Read(buf); !transport.IsTimeout(err) {
		t.Errorf("Read() after reset error = %v, want timeout", err)
	}
}

func TestDeviceOpenClose(t *testing.T) {
	d := New(BuildROM(ROMSpec{}))

	port, err := d.Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := port.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := d.Write([]byte{protocol.CmdReadMode}); err != ErrClosed {
		t.Errorf("Write() on closed device error = %v, want ErrClosed", err)
	}
	if _, err := d.Read(make([]byte, 1)); err != ErrClosed {
		t.Errorf("Read() on closed device error = %v, want ErrClosed", err)
	}

	if _, err := d.Open(); err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	if d.Opens() != 2 {
		t.Errorf("Opens() = %d, want 2", d.Opens())
	}
	if d.Closed() {
		t.Error("device should be open after reopen")
	}
}
