// Package checksum implements the additive 8, 16 and 32 bit checksums
// computed over an in-memory byte buffer.
package checksum

import (
	"fmt"
	"strconv"

	commonerrors "github.com/deploymenttheory/go-checksum/internal/common/errors"
)

// Width is the bit size of a checksum. It selects both the word size the
// buffer is summed in and the mask applied to the final sum.
type Width uint8

const (
	// Width8 sums every byte and keeps the low 8 bits
	Width8 Width = 8

	// Width16 sums big-endian 16-bit words and keeps the low 16 bits
	Width16 Width = 16

	// Width32 sums big-endian 32-bit words and keeps the low 32 bits
	Width32 Width = 32
)

// Widths lists the supported widths in ascending order
var Widths = [...]Width{Width8, Width16, Width32}

// ParseWidth converts a command line token into a Width. Only the exact
// tokens "8", "16" and "32" are accepted.
func ParseWidth(token string) (Width, error) {
	switch token {
	case "8":
		return Width8, nil
	case "16":
		return Width16, nil
	case "32":
		return Width32, nil
	default:
		return 0, fmt.Errorf("%w: got %q", commonerrors.ErrInvalidWidth, token)
	}
}

// Valid reports whether w is one of the supported widths
func (w Width) Valid() bool {
	return w == Width8 || w == Width16 || w == Width32
}

// Alignment returns the number of bytes the buffer length must be a
// multiple of before summing. Width8 needs no alignment and returns 1.
func (w Width) Alignment() int {
	switch w {
	case Width8:
		return 1
	case Width16:
		return 2
	case Width32:
		return 4
	default:
		return 0
	}
}

// Mask returns the bitmask that truncates a sum to w bits
func (w Width) Mask() uint64 {
	if !w.Valid() {
		return 0
	}
	return 1<<uint(w) - 1
}

// String returns the width as a decimal number
func (w Width) String() string {
	return strconv.Itoa(int(w))
}
