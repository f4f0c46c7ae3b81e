package gbxcart

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/moffa90/go-gbxcart/cartridge"
	"github.com/moffa90/go-gbxcart/protocol"
	"github.com/moffa90/go-gbxcart/storage"
)

// DumpResult is the outcome of DumpROM.
type DumpResult struct {
	// Image is the full ROM, ROMBanks * 16KB long
	Image []byte

	// FileName is the name the image was saved under
	FileName string

	// GlobalChecksumValid reports whether the image matches the global
	// checksum stored in its header
	GlobalChecksumValid bool
}

// ReadROM reads every ROM bank described by h and returns the assembled
// image. Bank 0 is read together with bank 1 through the fixed window.
//
// The operation can be cancelled via context; the device is reset before
// returning. Headers declaring more than MaxROMBanks banks are rejected
// with a *BankCountError.
func (c *Controller) ReadROM(ctx context.Context, h *cartridge.Header) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.port == nil {
		return nil, ErrNotOpen
	}
	if h == nil {
		return nil, errors.New("header cannot be nil")
	}
	return c.readROM(ctx, h, time.Now())
}

// DumpROM reads the ROM and saves it to sink as folder/<title>.gb.
//
// A storage failure is logged and returned together with the result, so the
// image read from the cartridge is not lost. Storage is never retried.
//
// Example:
//
//	h, _ := ctrl.ReadHeader(ctx)
//	res, err := ctrl.DumpROM(ctx, h, storage.NewDirSink(), "dumps")
func (c *Controller) DumpROM(ctx context.Context, h *cartridge.Header, sink storage.Sink, folder string) (*DumpResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.port == nil {
		return nil, ErrNotOpen
	}
	if h == nil {
		return nil, errors.New("header cannot be nil")
	}
	if sink == nil {
		return nil, errors.New("sink cannot be nil")
	}

	startTime := time.Now()

	image, err := c.readROM(ctx, h, startTime)
	if err != nil {
		return nil, err
	}

	res := &DumpResult{
		Image:               image,
		FileName:            h.FileName(),
		GlobalChecksumValid: cartridge.VerifyGlobalChecksum(image),
	}

	if !res.GlobalChecksumValid {
		c.logInfo("global checksum mismatch", "title", h.SafeTitle(),
			"stored", h.GlobalChecksum, "computed", cartridge.GlobalChecksum(image))
	}

	c.reportProgress(Progress{
		Phase:       PhaseSaving,
		Bank:        int(h.ROMBanks) - 1,
		TotalBanks:  int(h.ROMBanks),
		Percentage:  99,
		BytesRead:   len(image),
		ElapsedTime: time.Since(startTime),
	})

	if err := sink.Save(folder, res.FileName, image); err != nil {
		c.logError("save failed", "folder", folder, "file", res.FileName, "error", err)
		return res, err
	}

	c.reportProgress(Progress{
		Phase:       PhaseComplete,
		Bank:        int(h.ROMBanks) - 1,
		TotalBanks:  int(h.ROMBanks),
		Percentage:  100,
		BytesRead:   len(image),
		ElapsedTime: time.Since(startTime),
	})

	c.logInfo("dump complete",
		"file", res.FileName,
		"bytes", len(image),
		"checksum_ok", res.GlobalChecksumValid,
		"elapsed", time.Since(startTime).String(),
	)

	return res, nil
}

func (c *Controller) readROM(ctx context.Context, h *cartridge.Header, startTime time.Time) ([]byte, error) {
	if h.ROMBanks > MaxROMBanks {
		return nil, &BankCountError{Banks: h.ROMBanks}
	}
	banks := int(h.ROMBanks)
	if banks < 2 {
		banks = 2
	}
	family := h.Family()

	image := make([]byte, 0, banks*protocol.BankSize)
	window := make([]byte, protocol.SwitchableBankEnd)

	if err := c.resetDevice(); err != nil {
		return nil, err
	}

	c.logDebug("reading rom", "banks", banks, "family", family.String())

	for bank := 1; bank < banks; bank++ {
		if err := ctx.Err(); err != nil {
			c.abort()
			return nil, errors.Wrapf(err, "cancelled before bank %d", bank)
		}

		if banks > 2 {
			if err := c.selectBank(ctx, family, uint16(bank)); err != nil {
				if ctx.Err() != nil {
					c.abort()
				}
				return nil, err
			}
		}

		start := protocol.SwitchableBankStart
		if bank == 1 {
			start = protocol.FixedBankStart
		}

		if err := c.startRead(uint32(start)); err != nil {
			return nil, err
		}
		if err := c.fill(ctx, "read bank", window, start, protocol.SwitchableBankEnd); err != nil {
			return nil, errors.Wrapf(err, "bank %d", bank)
		}

		image = append(image, window[start:]...)

		c.reportProgress(Progress{
			Phase:       PhaseReading,
			Bank:        bank,
			TotalBanks:  banks,
			Percentage:  float64(bank) / float64(banks-1) * 98,
			BytesRead:   len(image),
			ElapsedTime: time.Since(startTime),
		})
	}

	if err := c.sendCommand(protocol.CmdReset); err != nil {
		return nil, err
	}

	return image, nil
}
