// Package transport opens the serial link to the cartridge reader.
//
// The driver only depends on the Port interface: bounded-time Read that
// reports ErrTimeout, Write, buffer discards and Close. Three backends are
// available and selected through Config.Driver:
//
//   - "serial":  go.bug.st/serial (default, all platforms)
//   - "term":    github.com/pkg/term (POSIX ttys)
//   - "jacobsa": github.com/jacobsa/go-serial
//
// Example:
//
//	cfg := transport.DefaultConfig("/dev/ttyUSB0")
//	ctrl := gbxcart.New(transport.NewOpener(cfg))
package transport
