package anonymize

import (
	"encoding/hex"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// RenameRequest describes a single name derivation.
type RenameRequest struct {
	OriginalName string
	Algorithm    Algorithm
	Prefix       string
}

// ComputeName derives the anonymized name for req: prefix, then the lowercase hex digest
// of the full original name, then the original extension (including the dot).
// The result depends only on the request, so repeated calls agree.
//
// A *HashError is returned when the algorithm is unsupported or the name is not valid UTF-8;
// callers skip that file and keep going.
func ComputeName(req RenameRequest) (string, error) {
	h, err := req.Algorithm.newHash()
	if err != nil {
		return "", &HashError{Name: req.OriginalName, Algorithm: req.Algorithm, Err: err}
	}

	if !utf8.ValidString(req.OriginalName) {
		return "", &HashError{Name: req.OriginalName, Algorithm: req.Algorithm, Err: ErrInvalidEncoding}
	}

	// hash.Hash.Write never returns an error
	_, _ = h.Write([]byte(req.OriginalName))
	digest := hex.EncodeToString(h.Sum(nil))

	return req.Prefix + digest + extension(req.OriginalName), nil
}

// extension returns the suffix starting at the final dot, or "" when there is none.
// Leading dots belong to the base name, so ".bashrc" has no extension.
func extension(name string) string {
	base := strings.TrimLeft(name, ".")
	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}
	return ext
}
