//go:build !windows

package transport

import (
	"io"

	"github.com/pkg/term"
)

func init() {
	register("term", openTerm)
}

// termPort drives a POSIX tty through github.com/pkg/term. The tty is put in
// raw mode with VMIN=0 so a read returns empty-handed after the timeout.
type termPort struct {
	t *term.Term
}

func openTerm(cfg Config) (Port, error) {
	t, err := term.Open(cfg.PortName,
		term.Speed(cfg.BaudRate),
		term.RawMode,
		term.ReadTimeout(cfg.ReadTimeout),
	)
	if err != nil {
		return nil, err
	}
	return &termPort{t: t}, nil
}

func (p *termPort) Read(b []byte) (int, error) {
	n, err := p.t.Read(b)
	if n == 0 && len(b) > 0 && (err == nil || err == io.EOF) {
		return 0, ErrTimeout
	}
	return n, err
}

func (p *termPort) Write(b []byte) (int, error) {
	return p.t.Write(b)
}

func (p *termPort) Close() error {
	return p.t.Close()
}

// pkg/term only exposes a combined flush, so both resets discard both
// directions.
func (p *termPort) ResetInputBuffer() error {
	return p.t.Flush()
}

func (p *termPort) ResetOutputBuffer() error {
	return p.t.Flush()
}
