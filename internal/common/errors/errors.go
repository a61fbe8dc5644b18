package errors

import (
	"errors"
)

var (
	// Argument Errors
	ErrArgumentCount = errors.New("invalid input: expected a file and a checksum size")
	ErrInvalidWidth  = errors.New("invalid checksum size, must be 8, 16, or 32")

	// File Errors
	ErrFileOpen     = errors.New("invalid filename")
	ErrFileNotFound = errors.New("file not found")
	ErrIsDirectory  = errors.New("path is a directory")

	// Checksum Errors
	ErrAlignment = errors.New("buffer length is not aligned to the checksum width")

	// Compression Errors
	ErrUnsupportedCompression = errors.New("unsupported compression format")
	ErrDecompressionFailed    = errors.New("decompression failed")

	// Report Errors
	ErrUnsupportedOutput = errors.New("unsupported output format")

	// Configuration Errors
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrConfigParseError = errors.New("error parsing configuration")
)
