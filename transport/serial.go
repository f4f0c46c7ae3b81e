package transport

import (
	"github.com/pkg/errors"
	"go.bug.st/serial"
)

func init() {
	register("serial", openSerial)
}

// serialPort adapts go.bug.st/serial, which reports a timeout as a zero-byte
// read with no error.
type serialPort struct {
	port serial.Port
}

func openSerial(cfg Config) (Port, error) {
	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(cfg.PortName, mode)
	if err != nil {
		return nil, err
	}
	if err := port.SetReadTimeout(cfg.ReadTimeout); err != nil {
		_ = port.Close()
		return nil, errors.Wrap(err, "set read timeout")
	}
	return &serialPort{port: port}, nil
}

func (s *serialPort) Read(p []byte) (int, error) {
	n, err := s.port.Read(p)
	if err != nil {
		return n, err
	}
	if n == 0 && len(p) > 0 {
		return 0, ErrTimeout
	}
	return n, nil
}

func (s *serialPort) Write(p []byte) (int, error) {
	return s.port.Write(p)
}

func (s *serialPort) Close() error {
	return s.port.Close()
}

func (s *serialPort) ResetInputBuffer() error {
	return s.port.ResetInputBuffer()
}

func (s *serialPort) ResetOutputBuffer() error {
	return s.port.ResetOutputBuffer()
}
