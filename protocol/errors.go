package protocol

import (
	"fmt"

	"github.com/pkg/errors"
)

// ArgumentError indicates a command argument the firmware cannot accept.
type ArgumentError struct {
	// Command is the opcode being encoded
	Command byte

	// Value is the rejected argument, if numeric
	Value uint32

	// Reason describes why the argument was rejected
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("command %q: %s", e.Command, e.Reason)
	}
	return fmt.Sprintf("command %q: argument 0x%X out of range (max 0x%04X)", e.Command, e.Value, MaxAddress)
}

// IsArgumentError returns true if the error is an ArgumentError.
func IsArgumentError(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}
