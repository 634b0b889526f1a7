package domain

import "go.trai.ch/zerr"

var (
	// ErrNameCollision is returned when renaming a file to its normalized name
	// would overwrite another file.
	ErrNameCollision = zerr.New("file conflict: normalized name already exists")

	// ErrEmptyName is returned when a file name normalizes to an empty string.
	ErrEmptyName = zerr.New("file name is empty after normalization")

	// ErrRasterizeFailed is returned when a vector source cannot be rasterized.
	ErrRasterizeFailed = zerr.New("failed to rasterize vector source")

	// ErrEncodeFailed is returned when a raster image cannot be re-encoded.
	ErrEncodeFailed = zerr.New("failed to encode raster image")

	// ErrInvalidHeight is returned when the configured raster height is not positive.
	ErrInvalidHeight = zerr.New("raster height must be positive")

	// ErrInvalidPolicy is returned when the configured cache policy is unknown.
	ErrInvalidPolicy = zerr.New("unknown cache policy")

	// ErrInvalidDirectory is returned when two layout directories resolve to the same path.
	ErrInvalidDirectory = zerr.New("layout directories must be distinct")
)
