package checksum

import (
	"fmt"

	commonerrors "github.com/deploymenttheory/go-checksum/internal/common/errors"
)

// PadFunc aligns a buffer for summing
type PadFunc func(buf []byte) []byte

// SumFunc sums an aligned buffer and truncates the result to its width
type SumFunc func(buf []byte) (uint32, error)

// Result is the outcome of a single checksum run
type Result struct {
	Width Width
	// Value is the sum truncated to Width bits
	Value uint32
	// Length is the number of bytes summed, filler included
	Length int
}

// Dispatch returns the pad and sum functions for w
func Dispatch(w Width) (PadFunc, SumFunc, error) {
	switch w {
	case Width8:
		return padNone, sum8, nil
	case Width16:
		return pad16, sum16, nil
	case Width32:
		return pad32, sum32, nil
	default:
		return nil, nil, fmt.Errorf("%w: got %d", commonerrors.ErrInvalidWidth, w)
	}
}

// Compute pads buf for w and sums it. buf is left untouched.
func Compute(buf []byte, w Width) (Result, error) {
	pad, sum, err := Dispatch(w)
	if err != nil {
		return Result{}, err
	}

	padded := pad(buf)
	value, err := sum(padded)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Width:  w,
		Value:  value,
		Length: len(padded),
	}, nil
}

// Filled returns how many filler bytes were appended to an input of
// inputLength bytes to produce r.
func (r Result) Filled(inputLength int) int {
	if r.Length < inputLength {
		return 0
	}
	return r.Length - inputLength
}
