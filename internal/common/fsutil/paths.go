// fsutil/paths.go
package fsutil

import (
	"os"
	"path/filepath"
	"strings"
)

// GetExtension returns the lower-cased file extension with the dot (e.g., ".gz")
func GetExtension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// ExpandTilde expands the tilde in paths to the user's home directory
func ExpandTilde(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		if path == "~" {
			return home, nil
		}

		// Replace just the ~ prefix with home directory
		return filepath.Join(home, path[2:]), nil
	}

	return path, nil
}
