package ports

import (
	"context"
	"image"
)

// Transcoder loads raster images and encodes them in the final format.
//
//go:generate go run go.uber.org/mock/mockgen -source=transcoder.go -destination=mocks/mock_transcoder.go -package=mocks
type Transcoder interface {
	// Decode loads the raster at path and normalizes it to a 4-channel color model.
	Decode(ctx context.Context, path string) (image.Image, error)

	// Encode returns img encoded in the final raster format.
	Encode(ctx context.Context, img image.Image) ([]byte, error)
}
