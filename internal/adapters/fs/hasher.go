package fs

import (
	"crypto/md5" //nolint:gosec // Used for change detection, not security
	"io"
	"os"

	"go.trai.ch/iconsync/internal/core/domain"
	"go.trai.ch/iconsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes content digests of files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// FileDigest streams the file at path through the digest.
func (h *Hasher) FileDigest(path string) (domain.Digest, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return domain.Digest{}, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := md5.New() //nolint:gosec // See import
	if _, err := io.Copy(hasher, f); err != nil {
		return domain.Digest{}, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	var d domain.Digest
	copy(d[:], hasher.Sum(nil))
	return d, nil
}
