package transport

import (
	"io"
	"time"

	"github.com/jacobsa/go-serial/serial"
)

func init() {
	register("jacobsa", openJacobsa)
}

// jacobsaPort uses github.com/jacobsa/go-serial. The library has no buffer
// control, so the reset calls are no-ops and stale bytes are only dropped by
// the device reset command.
type jacobsaPort struct {
	rwc io.ReadWriteCloser
}

// maxInterCharacterTimeout is the largest VTIME the library accepts.
const maxInterCharacterTimeout = 25500 * time.Millisecond

func openJacobsa(cfg Config) (Port, error) {
	timeout := cfg.ReadTimeout
	if timeout > maxInterCharacterTimeout {
		timeout = maxInterCharacterTimeout
	}
	// VTIME has a resolution of 100ms and 0 would block forever
	if timeout < 100*time.Millisecond {
		timeout = 100 * time.Millisecond
	}

	rwc, err := serial.Open(serial.OpenOptions{
		PortName:              cfg.PortName,
		BaudRate:              uint(cfg.BaudRate),
		DataBits:              8,
		StopBits:              1,
		ParityMode:            serial.PARITY_NONE,
		RTSCTSFlowControl:     false,
		MinimumReadSize:       0,
		InterCharacterTimeout: uint(timeout / time.Millisecond),
	})
	if err != nil {
		return nil, err
	}
	return &jacobsaPort{rwc: rwc}, nil
}

func (p *jacobsaPort) Read(b []byte) (int, error) {
	n, err := p.rwc.Read(b)
	if n == 0 && len(b) > 0 && (err == nil || err == io.EOF) {
		return 0, ErrTimeout
	}
	return n, err
}

func (p *jacobsaPort) Write(b []byte) (int, error) {
	return p.rwc.Write(b)
}

func (p *jacobsaPort) Close() error {
	return p.rwc.Close()
}

func (p *jacobsaPort) ResetInputBuffer() error {
	return nil
}

func (p *jacobsaPort) ResetOutputBuffer() error {
	return nil
}
