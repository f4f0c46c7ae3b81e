package gbxcart

import (
	"context"

	"github.com/pkg/errors"

	"github.com/moffa90/go-gbxcart/protocol"
	"github.com/moffa90/go-gbxcart/transport"
)

// fill streams device memory into buf[start:target], indexed by device
// address. A read must already have been started at start.
//
// The firmware sends ChunkSize bytes per request and waits for a continue
// before sending the next chunk. Bytes delivered alongside an error are
// kept. After a timeout or transport error the reader backs off, discards
// pending input, re-sends the start address for the first missing byte and
// restarts the read.
func (c *Controller) fill(ctx context.Context, op string, buf []byte, start, target int) error {
	policy := c.config.Retry
	chunkSize := c.config.ChunkSize

	cursor := start
	inChunk := 0
	timeouts, faults := 0, 0

	for cursor < target {
		if err := ctx.Err(); err != nil {
			c.abort()
			return errors.Wrapf(err, "%s cancelled at 0x%04X", op, cursor)
		}

		want := chunkSize - inChunk
		if want > target-cursor {
			want = target - cursor
		}

		n, readErr := c.port.Read(buf[cursor : cursor+want])
		cursor += n
		inChunk += n
		if readErr == nil && n == 0 {
			readErr = transport.ErrTimeout
		}

		if readErr == nil {
			timeouts, faults = 0, 0
			if inChunk >= chunkSize {
				inChunk = 0
				if cursor < target {
					if err := c.sendCommand(protocol.CmdContinue); err != nil {
						return err
					}
				}
			}
			continue
		}

		if transport.IsTimeout(readErr) {
			timeouts++
			if policy.timeoutsExhausted(timeouts) {
				return &DeviceCommunicationError{Operation: op, Address: uint32(cursor), Attempts: timeouts, Err: readErr}
			}
			c.logDebug("read timeout, resuming", "op", op, "address", cursor, "attempt", timeouts)
		} else {
			faults++
			if policy.faultsExhausted(faults) {
				return &DeviceCommunicationError{Operation: op, Address: uint32(cursor), Attempts: faults, Err: readErr}
			}
			c.logError("read failed, resuming", "op", op, "address", cursor, "attempt", faults, "error", readErr)
		}

		if err := sleep(ctx, policy.Backoff); err != nil {
			c.abort()
			return errors.Wrapf(err, "%s cancelled at 0x%04X", op, cursor)
		}

		if cursor >= target {
			break
		}

		// Whatever is still queued belongs to the abandoned chunk.
		if err := c.port.ResetInputBuffer(); err != nil {
			c.logDebug("input reset failed", "op", op, "error", err)
		}
		inChunk = 0
		if err := c.startRead(c.resumeAddress(cursor)); err != nil {
			return err
		}
	}

	return nil
}

// resumeAddress returns the start address sent when resuming at cursor.
func (c *Controller) resumeAddress(cursor int) uint32 {
	if c.config.LegacyResumeAddress {
		return uint32(byte(cursor))
	}
	return uint32(cursor)
}
