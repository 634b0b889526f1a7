package webp_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconsync/internal/adapters/webp"
	xwebp "golang.org/x/image/webp"
)

func writeGrayPNG(t *testing.T) string {
	t.Helper()

	src := image.NewGray(image.Rect(0, 0, 8, 4))
	for x := range 8 {
		src.SetGray(x, 1, color.Gray{Y: 200})
	}

	path := filepath.Join(t.TempDir(), "legacy.png")
	require.NoError(t, imaging.Save(src, path))
	return path
}

func TestTranscoder_Decode_NormalizesToNRGBA(t *testing.T) {
	path := writeGrayPNG(t)

	img, err := webp.NewTranscoder().Decode(context.Background(), path)
	require.NoError(t, err)

	nrgba, ok := img.(*image.NRGBA)
	require.True(t, ok, "expected *image.NRGBA, got %T", img)
	assert.Equal(t, image.Rect(0, 0, 8, 4), nrgba.Bounds())
	assert.Equal(t, color.NRGBA{R: 200, G: 200, B: 200, A: 255}, nrgba.NRGBAAt(3, 1))
}

func TestTranscoder_EncodeRoundTrip(t *testing.T) {
	tc := webp.NewTranscoder()
	img, err := tc.Decode(context.Background(), writeGrayPNG(t))
	require.NoError(t, err)

	data, err := tc.Encode(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))

	decoded, err := xwebp.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	// Lossless: pixels survive the round trip.
	r, g, b, a := decoded.At(3, 1).RGBA()
	assert.Equal(t, []uint32{200 * 0x101, 200 * 0x101, 200 * 0x101, 0xffff}, []uint32{r, g, b, a})
}

func TestTranscoder_Decode_Errors(t *testing.T) {
	tc := webp.NewTranscoder()

	t.Run("missing file", func(t *testing.T) {
		_, err := tc.Decode(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
		require.Error(t, err)
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "corrupt.png")
		require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o600))
		_, err := tc.Decode(context.Background(), path)
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := tc.Decode(ctx, writeGrayPNG(t))
		require.ErrorIs(t, err, context.Canceled)
	})
}
