package svg_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/iconsync/internal/adapters/svg"
)

const wideIcon = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100">
  <rect x="10" y="10" width="180" height="80" fill="#ff0000"/>
</svg>`

func writeSVG(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icon.svg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRasterizer_Rasterize(t *testing.T) {
	path := writeSVG(t, wideIcon)

	data, err := svg.NewRasterizer().Rasterize(context.Background(), path, 512)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	// Height is fixed, width follows the 2:1 viewBox.
	assert.Equal(t, image.Rect(0, 0, 1024, 512), img.Bounds())

	// Center is painted, corner stays transparent.
	_, _, _, centerAlpha := img.At(512, 256).RGBA()
	_, _, _, cornerAlpha := img.At(0, 0).RGBA()
	assert.NotZero(t, centerAlpha)
	assert.Zero(t, cornerAlpha)
}

func TestRasterizer_DocumentSize(t *testing.T) {
	const square = `<rect x="0" y="0" width="24" height="24" fill="#000"/>`

	tests := []struct {
		name      string
		root      string
		content   string
		wantWidth int
		// side is painted only when the content fills the width.
		sidePainted bool
	}{
		{
			name:      "width and height win over a square viewBox",
			root:      `width="100" height="50" viewBox="0 0 24 24"`,
			wantWidth: 1024,
		},
		{
			name:        "preserveAspectRatio none stretches the viewBox",
			root:        `width="100px" height="50px" viewBox="0 0 24 24" preserveAspectRatio="none"`,
			wantWidth:   1024,
			sidePainted: true,
		},
		{
			name:        "width and height without viewBox",
			root:        `width="48" height="24"`,
			content:     `<rect x="0" y="0" width="48" height="24" fill="#000"/>`,
			wantWidth:   1024,
			sidePainted: true,
		},
		{
			name:      "absolute units",
			root:      `width="20mm" height="10mm" viewBox="0 0 24 24"`,
			wantWidth: 1024,
		},
		{
			name:        "equal aspect ratios fill the output",
			root:        `width="12" height="12" viewBox="0 0 24 24"`,
			wantWidth:   512,
			sidePainted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := tt.content
			if content == "" {
				content = square
			}
			path := writeSVG(t, `<svg xmlns="http://www.w3.org/2000/svg" `+tt.root+`>`+content+`</svg>`)

			data, err := svg.NewRasterizer().Rasterize(context.Background(), path, 512)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, tt.wantWidth, 512), img.Bounds())

			_, _, _, centerAlpha := img.At(tt.wantWidth/2, 256).RGBA()
			assert.NotZero(t, centerAlpha)

			_, _, _, sideAlpha := img.At(20, 256).RGBA()
			if tt.sidePainted {
				assert.NotZero(t, sideAlpha)
			} else {
				assert.Zero(t, sideAlpha)
			}
		})
	}
}

func TestRasterizer_Deterministic(t *testing.T) {
	path := writeSVG(t, wideIcon)
	r := svg.NewRasterizer()

	first, err := r.Rasterize(context.Background(), path, 64)
	require.NoError(t, err)
	second, err := r.Rasterize(context.Background(), path, 64)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRasterizer_Errors(t *testing.T) {
	r := svg.NewRasterizer()

	t.Run("malformed document", func(t *testing.T) {
		_, err := r.Rasterize(context.Background(), writeSVG(t, "<svg"), 512)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := r.Rasterize(context.Background(), filepath.Join(t.TempDir(), "nope.svg"), 512)
		require.Error(t, err)
	})

	t.Run("no viewBox", func(t *testing.T) {
		_, err := r.Rasterize(context.Background(), writeSVG(t, `<svg xmlns="http://www.w3.org/2000/svg"></svg>`), 512)
		require.Error(t, err)
	})

	t.Run("invalid height", func(t *testing.T) {
		_, err := r.Rasterize(context.Background(), writeSVG(t, wideIcon), 0)
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := r.Rasterize(ctx, writeSVG(t, wideIcon), 512)
		require.ErrorIs(t, err, context.Canceled)
	})
}
