package checksum

import (
	"fmt"
	"io"
)

// Checksummer computes checksums of a fixed width
type Checksummer interface {
	// Width returns the width this checksummer was created for
	Width() Width

	// Sum pads and sums the provided data
	Sum(data []byte) (Result, error)

	// SumReader reads r to the end and sums its content
	SumReader(r io.Reader) (Result, error)
}

// checksummerImpl implements the Checksummer interface
type checksummerImpl struct {
	width Width
	pad   PadFunc
	sum   SumFunc
}

// NewChecksummer creates a new Checksummer for the specified width
func NewChecksummer(w Width) (Checksummer, error) {
	pad, sum, err := Dispatch(w)
	if err != nil {
		return nil, err
	}

	return &checksummerImpl{
		width: w,
		pad:   pad,
		sum:   sum,
	}, nil
}

func (c *checksummerImpl) Width() Width {
	return c.width
}

// Sum pads and sums the provided data
func (c *checksummerImpl) Sum(data []byte) (Result, error) {
	padded := c.pad(data)
	value, err := c.sum(padded)
	if err != nil {
		return Result{}, fmt.Errorf("%d bit checksum failed: %w", c.width, err)
	}

	return Result{Width: c.width, Value: value, Length: len(padded)}, nil
}

// SumReader reads r to the end and sums its content
func (c *checksummerImpl) SumReader(r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read input: %w", err)
	}

	return c.Sum(data)
}
