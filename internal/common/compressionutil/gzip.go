package compressionutil

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

func newGZIPReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}
