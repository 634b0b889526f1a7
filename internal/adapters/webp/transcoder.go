// Package webp loads raster images with imaging and encodes them as WEBP.
package webp

import (
	"bytes"
	"context"
	"image"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"
	"go.trai.ch/iconsync/internal/core/domain"
	"go.trai.ch/iconsync/internal/core/ports"
	"go.trai.ch/zerr"

	// Register the WEBP decoder so existing WEBP files can be loaded too.
	_ "golang.org/x/image/webp"
)

var _ ports.Transcoder = (*Transcoder)(nil)

// Transcoder implements ports.Transcoder.
type Transcoder struct{}

// NewTranscoder creates a new Transcoder.
func NewTranscoder() *Transcoder {
	return &Transcoder{}
}

// Decode loads the image at path and converts it to NRGBA.
func (t *Transcoder) Decode(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to load raster image"), "path", path)
	}
	return imaging.Clone(img), nil
}

// Encode returns img as lossless WEBP.
func (t *Transcoder) Encode(ctx context.Context, img image.Image) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := nativewebp.Encode(&buf, img, nil); err != nil {
		return nil, zerr.Wrap(err, domain.ErrEncodeFailed.Error())
	}
	return buf.Bytes(), nil
}
