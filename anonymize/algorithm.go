package anonymize

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"strings"
)

// Algorithm names a digest used to derive anonymized file names.
type Algorithm string

const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	SHA512 Algorithm = "sha512"
)

// DefaultAlgorithm is used when no algorithm is given on the command line.
const DefaultAlgorithm = SHA256

// Algorithms lists the supported algorithms in the order shown in help output.
var Algorithms = []Algorithm{MD5, SHA1, SHA256, SHA512}

var hashers = map[Algorithm]func() hash.Hash{
	MD5:    md5.New,
	SHA1:   sha1.New,
	SHA256: sha256.New,
	SHA512: sha512.New,
}

// ParseAlgorithm accepts an algorithm name in any case.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if !a.Supported() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return a, nil
}

// Supported reports whether a digest implementation exists for a.
func (a Algorithm) Supported() bool {
	_, ok := hashers[a]
	return ok
}

func (a Algorithm) String() string { return string(a) }

func (a Algorithm) newHash() (hash.Hash, error) {
	newFn, ok := hashers[a]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(a))
	}
	return newFn(), nil
}
