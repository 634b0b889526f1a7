package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/zerr"
)

// Verifier provides functionality to inspect existing files.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Exists reports whether a file exists at path.
func (v *Verifier) Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return true, nil
}

// Size returns the size of the file at path in bytes.
func (v *Verifier) Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return info.Size(), nil
}
