package gbxcart

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/moffa90/go-gbxcart/protocol"
)

// ErrNotOpen is returned by operations that need an open port.
var ErrNotOpen = errors.New("gbxcart: port is not open")

// ErrWorkerClosed is delivered for jobs submitted after Worker.Close.
var ErrWorkerClosed = errors.New("gbxcart: worker closed")

// MaxROMBanks is the largest ROM the bank registers can address.
const MaxROMBanks = 512

// BankCountError is returned when a header declares more ROM banks than
// the cartridge can switch between.
type BankCountError struct {
	Banks uint32
}

func (e *BankCountError) Error() string {
	return fmt.Sprintf("cartridge declares %d ROM banks, maximum is %d", e.Banks, MaxROMBanks)
}

// DeviceCommunicationError indicates the device stopped answering and the
// retry policy gave up.
type DeviceCommunicationError struct {
	Operation string
	Address   uint32
	Attempts  int
	Err       error
}

func (e *DeviceCommunicationError) Error() string {
	return fmt.Sprintf("%s: device not responding at 0x%04X after %d attempts: %v",
		e.Operation, e.Address, e.Attempts, e.Err)
}

func (e *DeviceCommunicationError) Unwrap() error {
	return e.Err
}

// IsDeviceCommunicationError reports whether err wraps a DeviceCommunicationError.
func IsDeviceCommunicationError(err error) bool {
	var dce *DeviceCommunicationError
	return errors.As(err, &dce)
}

// VoltageNotSupportedError indicates the board has no software voltage switch.
type VoltageNotSupportedError struct {
	Board protocol.BoardVersion
}

func (e *VoltageNotSupportedError) Error() string {
	return fmt.Sprintf("board %s cannot switch voltage in software", e.Board)
}
