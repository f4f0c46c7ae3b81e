package transport

import (
	"io"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrTimeout is returned by Port.Read when no byte arrived within the read
// timeout. It is expected during normal operation: the reader firmware is
// polled and sometimes misses a chunk request.
var ErrTimeout = errors.New("transport: read timeout")

// Port is the capability set the driver needs from a serial link.
//
// Read blocks for at most the configured read timeout and returns
// ErrTimeout if nothing arrived. It may return fewer bytes than requested.
type Port interface {
	io.ReadWriteCloser

	// ResetInputBuffer discards received but unread data
	ResetInputBuffer() error

	// ResetOutputBuffer discards written but untransmitted data
	ResetOutputBuffer() error
}

// Opener opens a fresh Port. The controller calls it on every Open so a
// closed connection can be reopened.
type Opener func() (Port, error)

// Config describes how to reach the reader.
type Config struct {
	// Driver selects the serial backend: "serial" (default), "term" or "jacobsa"
	Driver string

	// PortName is the device path or COM port name
	PortName string

	// BaudRate is the link speed; the reader expects 1,000,000
	BaudRate int

	// BufferSize is the transfer unit of the link
	BufferSize int

	// ReadTimeout bounds every Read
	ReadTimeout time.Duration

	// WriteTimeout bounds every Write on backends that support it
	WriteTimeout time.Duration
}

// Default link parameters.
const (
	DefaultDriver       = "serial"
	DefaultBaudRate     = 1000000
	DefaultBufferSize   = 64
	DefaultReadTimeout  = 1000 * time.Millisecond
	DefaultWriteTimeout = 1000 * time.Millisecond
)

// DefaultConfig returns the reader's fixed link parameters for the named port.
func DefaultConfig(portName string) Config {
	return Config{
		Driver:       DefaultDriver,
		PortName:     portName,
		BaudRate:     DefaultBaudRate,
		BufferSize:   DefaultBufferSize,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
	}
}

// Validate checks the configuration and fills unset fields with defaults.
func (c *Config) Validate() error {
	if c.PortName == "" {
		return errors.New("transport: port name is required")
	}
	if c.Driver == "" {
		c.Driver = DefaultDriver
	}
	if c.BaudRate <= 0 {
		c.BaudRate = DefaultBaudRate
	}
	if c.BufferSize <= 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if _, ok := lookup(c.Driver); !ok {
		return errors.Errorf("transport: unknown driver %q (available: %v)", c.Driver, Drivers())
	}
	return nil
}

type driverFunc func(Config) (Port, error)

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]driverFunc)
)

func register(name string, open driverFunc) {
	driversMu.Lock()
	defer driversMu.Unlock()
	drivers[name] = open
}

func lookup(name string) (driverFunc, bool) {
	driversMu.RLock()
	defer driversMu.RUnlock()
	open, ok := drivers[name]
	return open, ok
}

// Drivers lists the backends compiled into this binary.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open opens the port described by cfg.
func Open(cfg Config) (Port, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	open, _ := lookup(cfg.Driver)
	port, err := open(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "transport: open %s (%s)", cfg.PortName, cfg.Driver)
	}
	return port, nil
}

// NewOpener returns an Opener bound to cfg.
func NewOpener(cfg Config) Opener {
	return func() (Port, error) {
		return Open(cfg)
	}
}

// IsTimeout reports whether err is a read timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
