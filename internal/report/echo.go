package report

import (
	"bufio"
	"io"

	"github.com/deploymenttheory/go-checksum/internal/checksum"
)

// DefaultColumns is the echo line width
const DefaultColumns = 80

// Echo writes the source text to w in lines of at most columns bytes,
// followed by filled filler bytes and a final newline. The filler bytes
// extend the last line rather than starting a new one.
func Echo(w io.Writer, data []byte, filled, columns int) error {
	if columns <= 0 {
		columns = DefaultColumns
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < len(data); i += columns {
		if i > 0 {
			bw.WriteByte('\n')
		}
		bw.Write(data[i:min(i+columns, len(data))])
	}
	for i := 0; i < filled; i++ {
		bw.WriteByte(checksum.Filler)
	}
	bw.WriteByte('\n')

	return bw.Flush()
}
