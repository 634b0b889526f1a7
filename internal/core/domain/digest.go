package domain

import (
	"crypto/md5" //nolint:gosec // Used for change detection, not security
	"encoding/hex"
)

// Digest is the 128-bit content digest used to decide whether an output
// must be rewritten.
type Digest [md5.Size]byte

// DigestOf returns the digest of data.
func DigestOf(data []byte) Digest {
	return Digest(md5.Sum(data)) //nolint:gosec // See above
}

// String returns the hex encoding of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}
