package cartridge

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// ParseFile decodes the header of a ROM image on disk.
//
// Example:
//
//	h, err := cartridge.ParseFile("TETRIS.gb")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(h.Title, h.Mapper)
func ParseFile(path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer func() { _ = f.Close() }()

	return ParseReader(f)
}

// ParseReader decodes the header from the start of a ROM image.
// Only the first HeaderBlockSize bytes are consumed.
func ParseReader(r io.Reader) (*Header, error) {
	block := make([]byte, HeaderBlockSize)

	n, err := io.ReadFull(r, block)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to read header")
	}

	return Decode(block[:n])
}
