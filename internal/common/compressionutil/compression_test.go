package compressionutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	commonerrors "github.com/deploymenttheory/go-checksum/internal/common/errors"
	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"gotest.tools/v3/assert"
)

func encode(t *testing.T, format Format, content []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	var writer io.WriteCloser
	var err error
	switch format {
	case FormatGZIP:
		writer = gzip.NewWriter(&buf)
	case FormatXZ:
		writer, err = xz.NewWriter(&buf)
	case FormatBZIP2:
		writer, err = bzip2.NewWriter(&buf, nil)
	case FormatZSTD:
		writer, err = zstd.NewWriter(&buf)
	default:
		return content
	}
	assert.NilError(t, err)

	_, err = writer.Write(content)
	assert.NilError(t, err)
	assert.NilError(t, writer.Close())
	return buf.Bytes()
}

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NilError(t, os.WriteFile(path, content, 0644))
	return path
}

func readAll(t *testing.T, path string, format Format) ([]byte, error) {
	t.Helper()

	reader, err := Open(path, format)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(reader)
	assert.NilError(t, reader.Close())
	return data, err
}

func TestOpenRoundTrip(t *testing.T) {
	content := []byte("The quick brown fox jumps over the lazy dog\n")
	testCases := []struct {
		format Format
		name   string
	}{
		{FormatNone, "input.txt"},
		{FormatGZIP, "input.txt.gz"},
		{FormatXZ, "input.txt.xz"},
		{FormatBZIP2, "input.txt.bz2"},
		{FormatZSTD, "input.txt.zst"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.format), func(t *testing.T) {
			path := writeFile(t, tc.name, encode(t, tc.format, content))
			assert.Equal(t, DetectFormat(path), tc.format)

			data, err := readAll(t, path, tc.format)
			assert.NilError(t, err)
			assert.DeepEqual(t, data, content)
		})
	}
}

func TestOpenNoneKeepsRawBytes(t *testing.T) {
	raw := encode(t, FormatGZIP, []byte("AB"))
	path := writeFile(t, "notes.gz", raw)

	data, err := readAll(t, path, FormatNone)
	assert.NilError(t, err)
	assert.DeepEqual(t, data, raw)
}

func TestOpenEmptyArchive(t *testing.T) {
	path := writeFile(t, "empty.gz", encode(t, FormatGZIP, nil))

	data, err := readAll(t, path, FormatGZIP)
	assert.NilError(t, err)
	assert.Equal(t, len(data), 0)
}

func TestOpenCorruptArchive(t *testing.T) {
	path := writeFile(t, "broken.gz", []byte("not gzip at all"))

	_, err := readAll(t, path, FormatGZIP)
	assert.ErrorIs(t, err, commonerrors.ErrDecompressionFailed)

	// a valid header followed by a truncated body fails while reading
	full := encode(t, FormatGZIP, bytes.Repeat([]byte("checksum "), 100))
	path = writeFile(t, "truncated.gz", full[:len(full)/2])

	_, err = readAll(t, path, FormatGZIP)
	assert.ErrorIs(t, err, commonerrors.ErrDecompressionFailed)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.xz"), FormatXZ)
	assert.ErrorIs(t, err, commonerrors.ErrFileOpen)
}

func TestDetectFormat(t *testing.T) {
	testCases := map[string]Format{
		"a.txt":      FormatNone,
		"a":          FormatNone,
		"a.gz":       FormatGZIP,
		"a.GZ":       FormatGZIP,
		"a.xz":       FormatXZ,
		"a.bz2":      FormatBZIP2,
		"a.zst":      FormatZSTD,
		"dir.gz/a.c": FormatNone,
	}

	for path, want := range testCases {
		assert.Equal(t, DetectFormat(path), want, path)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("XZ")
	assert.NilError(t, err)
	assert.Equal(t, f, FormatXZ)

	_, err = ParseFormat("lz4")
	assert.ErrorIs(t, err, commonerrors.ErrUnsupportedCompression)

	_, err = NewReader(bytes.NewReader(nil), Format("rar"))
	assert.ErrorIs(t, err, commonerrors.ErrUnsupportedCompression)
}
