package anonymize

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedAlgorithm is returned for an algorithm outside md5, sha1, sha256 and sha512.
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

	// ErrInvalidEncoding is returned for file names that are not valid UTF-8.
	ErrInvalidEncoding = errors.New("file name is not valid UTF-8")

	// ErrNotDirectory is returned when the target path exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrTargetExists is returned when the anonymized name is already taken in the directory.
	ErrTargetExists = errors.New("target already exists")
)

// InvalidDirectoryError means the run target is missing or is not a directory.
// It aborts the run before any file is touched.
type InvalidDirectoryError struct {
	Path string
	Err  error
}

func (e *InvalidDirectoryError) Error() string {
	return fmt.Sprintf("directory '%s' does not exist or is not a directory: %v", e.Path, e.Err)
}

func (e *InvalidDirectoryError) Unwrap() error { return e.Err }

// HashError means a single file name could not be anonymized.
type HashError struct {
	Name      string
	Algorithm Algorithm
	Err       error
}

func (e *HashError) Error() string {
	return fmt.Sprintf("error anonymizing file name '%s' with %s: %v", e.Name, e.Algorithm, e.Err)
}

func (e *HashError) Unwrap() error { return e.Err }

// RenameError means the filesystem refused to rename a single file.
type RenameError struct {
	From string
	To   string
	Err  error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("error renaming '%s' to '%s': %v", e.From, e.To, e.Err)
}

func (e *RenameError) Unwrap() error { return e.Err }
