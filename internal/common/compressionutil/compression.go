// Package compressionutil decodes compressed input files so their content
// can be checksummed as plain text.
package compressionutil

import (
	"fmt"
	"io"
	"strings"

	commonerrors "github.com/deploymenttheory/go-checksum/internal/common/errors"
	"github.com/deploymenttheory/go-checksum/internal/common/fsutil"
	"go.uber.org/multierr"
)

// Format identifies the compression applied to an input file
type Format string

const (
	// FormatNone reads the file as-is
	FormatNone Format = "none"
	// FormatGZIP is gzip (.gz)
	FormatGZIP Format = "gzip"
	// FormatXZ is xz (.xz)
	FormatXZ Format = "xz"
	// FormatBZIP2 is bzip2 (.bz2)
	FormatBZIP2 Format = "bzip2"
	// FormatZSTD is zstandard (.zst)
	FormatZSTD Format = "zstd"
)

// DetectFormat picks a format from the file extension. Unknown extensions
// map to FormatNone.
func DetectFormat(path string) Format {
	switch fsutil.GetExtension(path) {
	case ".gz", ".gzip":
		return FormatGZIP
	case ".xz":
		return FormatXZ
	case ".bz2", ".bzip2":
		return FormatBZIP2
	case ".zst", ".zstd":
		return FormatZSTD
	default:
		return FormatNone
	}
}

// ParseFormat converts a format name into a Format
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatNone, FormatGZIP, FormatXZ, FormatBZIP2, FormatZSTD:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %s", commonerrors.ErrUnsupportedCompression, name)
	}
}

// NewReader wraps r with a decoder for format
func NewReader(r io.Reader, format Format) (io.ReadCloser, error) {
	switch format {
	case FormatNone, "":
		return io.NopCloser(r), nil
	case FormatGZIP:
		return newGZIPReader(r)
	case FormatXZ:
		return newXZReader(r)
	case FormatBZIP2:
		return newBZIP2Reader(r)
	case FormatZSTD:
		return newZSTDReader(r)
	default:
		return nil, fmt.Errorf("%w: %s", commonerrors.ErrUnsupportedCompression, format)
	}
}

// fileReadCloser closes the decoder and then the file underneath it
type fileReadCloser struct {
	io.Reader
	decoder io.Closer
	file    io.Closer
}

func (f *fileReadCloser) Close() error {
	return multierr.Append(f.decoder.Close(), f.file.Close())
}

// Open opens the file at path for reading, decoding it with format. Closing
// the returned reader also closes the file.
func Open(path string, format Format) (io.ReadCloser, error) {
	file, err := fsutil.OpenFile(path)
	if err != nil {
		return nil, err
	}

	decoder, err := NewReader(file, format)
	if err != nil {
		return nil, multierr.Append(
			fmt.Errorf("%w: %s: %w", commonerrors.ErrDecompressionFailed, path, err),
			file.Close(),
		)
	}

	return &fileReadCloser{
		Reader:  &decodeErrorReader{r: decoder, path: path, format: format},
		decoder: decoder,
		file:    file,
	}, nil
}

// decodeErrorReader tags read failures of compressed input with
// ErrDecompressionFailed
type decodeErrorReader struct {
	r      io.Reader
	path   string
	format Format
}

func (d *decodeErrorReader) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	if err != nil && err != io.EOF && d.format != FormatNone && d.format != "" {
		return n, fmt.Errorf("%w: %s: %w", commonerrors.ErrDecompressionFailed, d.path, err)
	}
	return n, err
}
