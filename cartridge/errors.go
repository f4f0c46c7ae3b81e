package cartridge

import "fmt"

// ShortHeaderError indicates the data is too small to contain a header.
type ShortHeaderError struct {
	Length int
	Want   int
}

func (e *ShortHeaderError) Error() string {
	return fmt.Sprintf("header block too short: got %d bytes, need at least %d", e.Length, e.Want)
}
