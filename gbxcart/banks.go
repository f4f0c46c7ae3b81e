package gbxcart

import (
	"context"

	"github.com/pkg/errors"

	"github.com/moffa90/go-gbxcart/cartridge"
	"github.com/moffa90/go-gbxcart/protocol"
)

// selectBank maps bank into the switchable window using the register
// writes of the mapper family. Each register write goes out as two bank
// commands, address then value, each followed by the latch delay.
func (c *Controller) selectBank(ctx context.Context, family cartridge.Family, bank uint16) error {
	for _, w := range family.BankWrites(bank) {
		if err := c.writeRegister(ctx, w); err != nil {
			return errors.Wrapf(err, "select bank %d", bank)
		}
	}
	return nil
}

func (c *Controller) writeRegister(ctx context.Context, w cartridge.BankWrite) error {
	addr, err := protocol.EncodeSetBankAddress(uint32(w.Address))
	if err != nil {
		return err
	}
	value, err := protocol.EncodeSetBankValue(uint32(w.Value))
	if err != nil {
		return err
	}

	if err := c.send(addr); err != nil {
		return err
	}
	if err := sleep(ctx, c.config.LatchDelay); err != nil {
		return err
	}
	if err := c.send(value); err != nil {
		return err
	}
	return sleep(ctx, c.config.LatchDelay)
}
