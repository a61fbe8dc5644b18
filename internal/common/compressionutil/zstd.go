package compressionutil

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

func newZSTDReader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return decoder.IOReadCloser(), nil
}
