// fsutil/files.go
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	commonerrors "github.com/deploymenttheory/go-checksum/internal/common/errors"
	"go.uber.org/multierr"
)

// OpenFile opens path for reading. Every failure, including path naming a
// directory, is reported as ErrFileOpen so callers can reject the input
// with a single message.
func OpenFile(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", commonerrors.ErrFileOpen, path, commonerrors.ErrFileNotFound)
		}
		return nil, fmt.Errorf("%w: %s: %w", commonerrors.ErrFileOpen, path, err)
	}

	info, err := file.Stat()
	if err != nil {
		return nil, multierr.Append(
			fmt.Errorf("%w: %s: %w", commonerrors.ErrFileOpen, path, err),
			file.Close(),
		)
	}
	if info.IsDir() {
		return nil, multierr.Append(
			fmt.Errorf("%w: %s: %w", commonerrors.ErrFileOpen, path, commonerrors.ErrIsDirectory),
			file.Close(),
		)
	}

	return file, nil
}
