package gbxcart

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/moffa90/go-gbxcart/cartridge"
	"github.com/moffa90/go-gbxcart/protocol"
	"github.com/moffa90/go-gbxcart/transport"
)

// Controller drives a cartridge reader over a serial port.
//
// Controller is safe for concurrent use; operations are serialised so only
// one command sequence is ever on the wire.
type Controller struct {
	mu     sync.Mutex
	opener transport.Opener
	port   transport.Port
	config Config
	state  *StateStore
}

// New creates a new Controller that opens its port through opener.
// The port is not opened until Open is called.
//
// Example:
//
//	cfg := transport.DefaultConfig("/dev/ttyUSB0")
//	ctrl := gbxcart.New(transport.NewOpener(cfg),
//	    gbxcart.WithProgressCallback(progressFunc),
//	    gbxcart.WithRetryPolicy(gbxcart.DefaultRetryPolicy()),
//	)
func New(opener transport.Opener, opts ...Option) *Controller {
	if opener == nil {
		panic("opener cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	state := cfg.State
	if state == nil {
		state = NewStateStore()
	}

	return &Controller{
		opener: opener,
		config: cfg,
		state:  state,
	}
}

// State returns the store that publishes controller state changes.
func (c *Controller) State() *StateStore {
	return c.state
}

// Open opens the port and reads the board revision and slot voltage.
// Calling Open on an open controller is a no-op.
func (c *Controller) Open(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.port != nil {
		return nil
	}

	port, err := c.opener()
	if err != nil {
		return errors.Wrap(err, "open port")
	}
	c.port = port

	version, voltage, err := c.readBoardInfo(ctx)
	if err != nil {
		c.port = nil
		if cerr := port.Close(); cerr != nil {
			c.logError("close after failed open", "error", cerr)
		}
		return err
	}

	c.logInfo("port opened",
		"board", protocol.ParseBoardVersion(version).String(),
		"voltage", protocol.ParseVoltage(voltage).String(),
	)

	c.state.UpdateState(true, version, voltage)
	return nil
}

// Close closes the port. Closing a closed controller is a no-op.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.port == nil {
		return nil
	}

	err := c.port.Close()
	c.port = nil
	c.state.UpdateState(false, 0, 0)

	if err != nil {
		return errors.Wrap(err, "close port")
	}
	return nil
}

// SetVoltage switches the cartridge slot voltage and refreshes the state.
// VoltageUnknown is ignored. Boards without a software switch return
// *VoltageNotSupportedError.
func (c *Controller) SetVoltage(ctx context.Context, v protocol.Voltage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.port == nil {
		return ErrNotOpen
	}

	st := c.state.Snapshot()
	if !st.CanSetVoltage() {
		return &VoltageNotSupportedError{Board: st.BoardVersion}
	}

	op, ok := v.Command()
	if !ok {
		return nil
	}

	if err := c.sendCommand(op); err != nil {
		return errors.Wrap(err, "set voltage")
	}

	version, voltage, err := c.readBoardInfo(ctx)
	if err != nil {
		return err
	}

	c.logInfo("voltage set", "voltage", v.String())
	c.state.UpdateState(true, version, voltage)
	return nil
}

// FirmwareVersion returns the raw firmware version byte.
func (c *Controller) FirmwareVersion(ctx context.Context) (byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.port == nil {
		return 0, ErrNotOpen
	}
	return c.requestValue(ctx, protocol.CmdReadFirmwareVersion)
}

// ReadHeader reads and decodes the cartridge header block.
// A checksum mismatch is reported in the header, not as an error.
//
// Example:
//
//	h, err := ctrl.ReadHeader(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(h.Title, h.Mapper, h.ROMText())
func (c *Controller) ReadHeader(ctx context.Context) (*cartridge.Header, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.port == nil {
		return nil, ErrNotOpen
	}
	return c.readHeader(ctx)
}

func (c *Controller) readHeader(ctx context.Context) (*cartridge.Header, error) {
	c.reportProgress(Progress{Phase: PhaseHeader})

	if err := c.resetDevice(); err != nil {
		return nil, err
	}
	if err := c.startRead(protocol.FixedBankStart); err != nil {
		return nil, err
	}

	block := make([]byte, cartridge.HeaderBlockSize)
	if err := c.fill(ctx, "read header", block, 0, len(block)); err != nil {
		return nil, err
	}

	if err := c.sendCommand(protocol.CmdReset); err != nil {
		return nil, err
	}

	h, err := cartridge.Decode(block)
	if err != nil {
		return nil, errors.Wrap(err, "decode header")
	}

	c.logDebug("header read",
		"title", h.SafeTitle(),
		"mapper", h.Mapper.String(),
		"rom_banks", h.ROMBanks,
		"checksum", h.ChecksumText(),
	)
	return h, nil
}

// readBoardInfo queries the board revision and voltage.
func (c *Controller) readBoardInfo(ctx context.Context) (version, voltage byte, err error) {
	version, err = c.requestValue(ctx, protocol.CmdReadPCBVersion)
	if err != nil {
		return 0, 0, err
	}
	voltage, err = c.requestValue(ctx, protocol.CmdReadMode)
	if err != nil {
		return 0, 0, err
	}
	return version, voltage, nil
}

// requestValue sends a single-byte query and reads the one-byte reply.
// Anything else still in the input buffer is discarded.
func (c *Controller) requestValue(ctx context.Context, op byte) (byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := c.sendCommand(op); err != nil {
		return 0, err
	}

	var reply [1]byte
	n, err := c.port.Read(reply[:])
	if err == nil && n == 0 {
		err = transport.ErrTimeout
	}
	if err != nil {
		return 0, &DeviceCommunicationError{
			Operation: fmt.Sprintf("request %q", op),
			Attempts:  1,
			Err:       err,
		}
	}

	if err := c.port.ResetInputBuffer(); err != nil {
		c.logDebug("discard input", "error", err)
	}
	return reply[0], nil
}

// resetDevice clears both port buffers and resets the firmware's addressing.
func (c *Controller) resetDevice() error {
	if err := c.port.ResetInputBuffer(); err != nil {
		return errors.Wrap(err, "discard input")
	}
	if err := c.port.ResetOutputBuffer(); err != nil {
		return errors.Wrap(err, "discard output")
	}
	return c.sendCommand(protocol.CmdReset)
}

// abort leaves the device idle after a cancelled read. Errors are only
// logged; the caller already has an error to return.
func (c *Controller) abort() {
	if err := c.resetDevice(); err != nil {
		c.logError("reset after cancel", "error", err)
	}
}

// startRead positions the firmware cursor and starts streaming.
func (c *Controller) startRead(addr uint32) error {
	cmd, err := protocol.EncodeSetStartAddress(addr)
	if err != nil {
		return err
	}
	if err := c.send(cmd); err != nil {
		return err
	}
	return c.sendCommand(protocol.CmdReadROMRAM)
}

// sendCommand sends a single opcode (fire-and-forget).
func (c *Controller) sendCommand(op byte) error {
	return c.send(protocol.EncodeCommand(op))
}

func (c *Controller) send(cmd []byte) error {
	if _, err := c.port.Write(cmd); err != nil {
		return errors.Wrapf(err, "write command %q", cmd[0])
	}
	return nil
}

// reportProgress calls the progress callback if configured.
func (c *Controller) reportProgress(progress Progress) {
	if c.config.ProgressCallback != nil {
		c.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (c *Controller) logDebug(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (c *Controller) logInfo(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (c *Controller) logError(msg string, keysAndValues ...interface{}) {
	if c.config.Logger != nil {
		c.config.Logger.Error(msg, keysAndValues...)
	}
}
