package ports

import "go.trai.ch/iconsync/internal/core/domain"

// Hasher defines the interface for computing content digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// FileDigest computes the digest of the file at path.
	FileDigest(path string) (domain.Digest, error)
}
