package anonymize

import (
	"errors"
	"os"
)

// ValidateDirectory checks that path exists and is a directory.
// Any failure is returned as *InvalidDirectoryError.
func ValidateDirectory(path string) error {
	if path == "" {
		return &InvalidDirectoryError{Path: path, Err: errors.New("empty path")}
	}

	fi, err := os.Stat(path)
	if err != nil {
		return &InvalidDirectoryError{Path: path, Err: err}
	}

	if !fi.IsDir() {
		return &InvalidDirectoryError{Path: path, Err: ErrNotDirectory}
	}

	return nil
}
