package checksum

import (
	"encoding/binary"
	"fmt"

	commonerrors "github.com/deploymenttheory/go-checksum/internal/common/errors"
)

// AlignmentError is returned when a buffer handed to a 16 or 32 bit sum is
// not a whole number of words long.
type AlignmentError struct {
	Width  Width
	Length int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("%v: %d bytes is not a multiple of %d for a %d bit checksum",
		commonerrors.ErrAlignment, e.Length, e.Width.Alignment(), e.Width)
}

// Unwrap lets errors.Is match ErrAlignment
func (e *AlignmentError) Unwrap() error {
	return commonerrors.ErrAlignment
}

func checkAlignment(buf []byte, w Width) error {
	if len(buf)%w.Alignment() != 0 {
		return &AlignmentError{Width: w, Length: len(buf)}
	}
	return nil
}

// Sum computes the checksum of buf for w. Buffers for Width16 and Width32
// must already be padded, otherwise an *AlignmentError is returned.
func Sum(buf []byte, w Width) (uint32, error) {
	_, sum, err := Dispatch(w)
	if err != nil {
		return 0, err
	}
	return sum(buf)
}

func sum8(buf []byte) (uint32, error) {
	var acc uint64
	for _, b := range buf {
		acc += uint64(b)
	}
	return uint32(acc & Width8.Mask()), nil
}

func sum16(buf []byte) (uint32, error) {
	if err := checkAlignment(buf, Width16); err != nil {
		return 0, err
	}

	var acc uint64
	for i := 0; i < len(buf); i += 2 {
		acc += uint64(binary.BigEndian.Uint16(buf[i : i+2]))
	}
	return uint32(acc & Width16.Mask()), nil
}

func sum32(buf []byte) (uint32, error) {
	if err := checkAlignment(buf, Width32); err != nil {
		return 0, err
	}

	var acc uint64
	for i := 0; i < len(buf); i += 4 {
		acc += uint64(binary.BigEndian.Uint32(buf[i : i+4]))
	}
	return uint32(acc & Width32.Mask()), nil
}
