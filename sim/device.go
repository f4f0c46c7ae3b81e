package sim

import (
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"github.com/moffa90/go-gbxcart/cartridge"
	"github.com/moffa90/go-gbxcart/protocol"
	"github.com/moffa90/go-gbxcart/transport"
)

// ErrClosed is returned by a Device that has been closed.
var ErrClosed = errors.New("sim: port closed")

// Device simulates a reader with a cartridge inserted. It implements
// transport.Port: commands written to it are executed immediately and the
// replies are queued for Read. A Read with nothing queued returns
// transport.ErrTimeout without blocking.
//
// Device is safe for concurrent use.
type Device struct {
	mu sync.Mutex

	rom  []byte
	cart bankController

	pcbVersion byte
	firmware   byte
	mode       byte

	cursor uint32
	out    []byte

	// command parser state
	argOp       byte
	arg         []byte
	bankAddr    uint16
	bankAddrSet bool

	closed bool
	opens  int

	chunks      int
	reads       int
	dropChunks  map[int]bool
	readFaults  map[int]error
	maxReadSize int

	commands []string
}

// Option configures a Device.
type Option func(*Device)

// WithPCBVersion sets the raw board revision reported for 'h'.
func WithPCBVersion(raw byte) Option {
	return func(d *Device) {
		d.pcbVersion = raw
	}
}

// WithFirmwareVersion sets the raw firmware version reported for 'V'.
func WithFirmwareVersion(raw byte) Option {
	return func(d *Device) {
		d.firmware = raw
	}
}

// WithMode sets the raw voltage/mode byte reported for 'C'.
func WithMode(raw byte) Option {
	return func(d *Device) {
		d.mode = raw
	}
}

// WithDroppedChunks loses the given chunks (0-based, counted over the
// lifetime of the device) in transit. The device cursor still advances, as
// it would on real hardware.
func WithDroppedChunks(chunks ...int) Option {
	return func(d *Device) {
		for _, c := range chunks {
			d.dropChunks[c] = true
		}
	}
}

// WithReadFault makes the n-th Read call (0-based) fail with err.
func WithReadFault(n int, err error) Option {
	return func(d *Device) {
		d.readFaults[n] = err
	}
}

// WithMaxReadSize caps how many bytes a single Read returns.
func WithMaxReadSize(n int) Option {
	return func(d *Device) {
		d.maxReadSize = n
	}
}

// New creates a simulated reader holding the given ROM image. The mapper is
// taken from the image header.
func New(rom []byte, opts ...Option) *Device {
	mapper := cartridge.ROMOnly
	if len(rom) > 0x147 {
		mapper = cartridge.Mapper(rom[0x147])
	}

	d := &Device{
		rom:        rom,
		cart:       newBankController(mapper, rom),
		pcbVersion: protocol.PCBVersion1_3,
		firmware:   26,
		mode:       protocol.CmdVoltage5V,
		dropChunks: make(map[int]bool),
		readFaults: make(map[int]error),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Open reopens the device and returns it as a transport.Port. It has the
// signature of transport.Opener.
func (d *Device) Open() (transport.Port, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = false
	d.opens++
	d.out = nil
	d.resetParser()
	return d, nil
}

// Read returns queued reply bytes.
func (d *Device) Read(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return 0, ErrClosed
	}

	n := d.reads
	d.reads++
	if err, ok := d.readFaults[n]; ok {
		return 0, err
	}

	if len(d.out) == 0 {
		return 0, transport.ErrTimeout
	}

	limit := len(p)
	if d.maxReadSize > 0 && limit > d.maxReadSize {
		limit = d.maxReadSize
	}
	c := copy(p[:limit], d.out)
	d.out = d.out[c:]
	return c, nil
}

// Write feeds command bytes to the simulated firmware.
func (d *Device) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return 0, ErrClosed
	}

	for _, b := range p {
		d.feed(b)
	}
	return len(p), nil
}

// Close marks the device closed; Open makes it usable again.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	return nil
}

// ResetInputBuffer drops queued reply bytes.
func (d *Device) ResetInputBuffer() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.out = nil
	return nil
}

// ResetOutputBuffer is a no-op; writes are delivered synchronously.
func (d *Device) ResetOutputBuffer() error {
	return nil
}

// Commands returns a copy of every command executed so far, rendered as
// text (arguments without the NUL terminator).
func (d *Device) Commands() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]string, len(d.commands))
	copy(out, d.commands)
	return out
}

// Opens returns how many times Open has been called.
func (d *Device) Opens() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.opens
}

// Closed reports whether the device is closed.
func (d *Device) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// Cursor returns the firmware read cursor.
func (d *Device) Cursor() uint32 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cursor
}

func (d *Device) resetParser() {
	d.argOp = 0
	d.arg = d.arg[:0]
	d.bankAddrSet = false
}

func (d *Device) feed(b byte) {
	if d.argOp != 0 {
		if b != protocol.Terminator {
			d.arg = append(d.arg, b)
			return
		}
		d.execArg(d.argOp, string(d.arg))
		d.argOp = 0
		d.arg = d.arg[:0]
		return
	}

	switch b {
	case protocol.CmdSetStartAddress, protocol.CmdSetBank:
		d.argOp = b
	case protocol.CmdReset:
		d.record(b, "")
		d.cursor = 0
		d.out = nil
		d.bankAddrSet = false
	case protocol.CmdReadROMRAM, protocol.CmdContinue:
		d.record(b, "")
		d.emitChunk()
	case protocol.CmdReadPCBVersion:
		d.record(b, "")
		d.out = append(d.out, d.pcbVersion)
	case protocol.CmdReadFirmwareVersion:
		d.record(b, "")
		d.out = append(d.out, d.firmware)
	case protocol.CmdReadMode:
		d.record(b, "")
		d.out = append(d.out, d.mode)
	case protocol.CmdVoltage5V, protocol.CmdVoltage3V:
		d.record(b, "")
		if protocol.ParseBoardVersion(d.pcbVersion).CanSwitchVoltage() {
			d.mode = b
		}
	default:
		d.record(b, "")
	}
}

func (d *Device) execArg(op byte, arg string) {
	d.record(op, arg)

	switch op {
	case protocol.CmdSetStartAddress:
		if v, err := strconv.ParseUint(arg, 16, 32); err == nil {
			d.cursor = uint32(v)
		}
	case protocol.CmdSetBank:
		if !d.bankAddrSet {
			if v, err := strconv.ParseUint(arg, 16, 16); err == nil {
				d.bankAddr = uint16(v)
				d.bankAddrSet = true
			}
			return
		}
		if v, err := strconv.ParseUint(arg, 10, 16); err == nil {
			d.cart.Write(d.bankAddr, byte(v))
		}
		d.bankAddrSet = false
	}
}

func (d *Device) emitChunk() {
	chunk := make([]byte, protocol.ChunkSize)
	for i := range chunk {
		addr := d.cursor + uint32(i)
		if addr < protocol.SwitchableBankEnd {
			chunk[i] = d.cart.Read(uint16(addr))
		} else {
			chunk[i] = 0xFF
		}
	}
	d.cursor += protocol.ChunkSize

	n := d.chunks
	d.chunks++
	if d.dropChunks[n] {
		return
	}
	d.out = append(d.out, chunk...)
}

func (d *Device) record(op byte, arg string) {
	d.commands = append(d.commands, string(op)+arg)
}
