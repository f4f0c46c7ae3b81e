// Package gbxcart provides a high-level driver for GBxCart-style Game Boy
// cartridge readers.
//
// # Overview
//
// The reader is a small USB serial accessory that executes single-byte
// commands against the inserted cartridge. This package handles:
//   - Opening the port and identifying the board revision and slot voltage
//   - Reading and decoding the cartridge header
//   - Switching ROM banks for MBC1 and MBC2-and-later mappers
//   - Streaming ROM contents with recovery from lost chunks
//   - Saving the assembled image through a storage sink
//
// # Basic Usage
//
//	cfg := transport.DefaultConfig("/dev/ttyUSB0")
//	ctrl := gbxcart.New(transport.NewOpener(cfg))
//
//	if err := ctrl.Open(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer ctrl.Close()
//
//	h, err := ctrl.ReadHeader(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := ctrl.DumpROM(ctx, h, storage.NewDirSink(), "dumps")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("saved", res.FileName)
//
// # Progress Tracking
//
// Track dump progress with a callback:
//
//	ctrl := gbxcart.New(opener,
//	    gbxcart.WithProgressCallback(func(p gbxcart.Progress) {
//	        fmt.Printf("[%s] %.1f%% - Bank %d/%d\n",
//	            p.Phase, p.Percentage, p.Bank, p.TotalBanks)
//	    }),
//	)
//
// # Recovery
//
// The firmware streams 64-byte chunks and silently drops one now and then.
// When a read times out the controller waits for the retry policy's
// back-off, re-sends the start address of the first missing byte and
// restarts the read. RetryPolicy bounds how many consecutive timeouts and
// transport faults are tolerated before a DeviceCommunicationError is
// returned; zero limits retry forever.
//
// # State
//
// The controller publishes immutable State snapshots through a StateStore.
// Observers get StateChanging before and StateChanged after every update,
// which is how a user interface learns whether the voltage switch is usable:
//
//	store := gbxcart.NewStateStore()
//	store.Subscribe(gbxcart.StateChangedFunc(func(prev, next gbxcart.State) {
//	    voltageButton.SetEnabled(next.CanSetVoltage())
//	}))
//
// # Concurrency
//
// Controller methods are serialised by a mutex. Worker runs submitted jobs
// in order on its own goroutine for callers that must not block:
//
//	w := gbxcart.NewWorker(ctrl)
//	done := w.Submit(ctx, func(ctx context.Context, c *gbxcart.Controller) error {
//	    _, err := c.ReadHeader(ctx)
//	    return err
//	})
//
// # Error Handling
//
// The package provides structured error types:
//   - DeviceCommunicationError: the device stopped answering
//   - VoltageNotSupportedError: the board has no software voltage switch
//   - ErrNotOpen: the port has not been opened
//   - storage.SaveError: the dumped image could not be written
package gbxcart
