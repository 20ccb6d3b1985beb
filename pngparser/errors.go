package pngparser

import (
	"fmt"

	"github.com/pkg/errors"
)

// Parse-stage errors. Each one pins the exact point at which a truncated
// or corrupted byte stream gave out. Malformed binary data cannot be
// fixed by retrying, so all of these are fatal to the operation.
var (
	ErrLengthNotFound    = errors.New("chunk length not found")
	ErrChunkTypeNotFound = errors.New("chunk type not found")
	ErrMessageNotFound   = errors.New("chunk message not found")
	ErrCrcNotFound       = errors.New("chunk crc not found")
	ErrInvalidCrc        = errors.New("invalid crc")
	ErrInvalidSignature  = errors.New("invalid PNG signature")
	ErrInvalidTypeLength = errors.New("chunk type must be exactly 4 characters")
)

// InvalidByteError reports the first non-alphabetic character found in a
// textual chunk type.
type InvalidByteError struct {
	Byte rune
}

func (e InvalidByteError) Error() string {
	return fmt.Sprintf("invalid byte in chunk type: %q", e.Byte)
}
