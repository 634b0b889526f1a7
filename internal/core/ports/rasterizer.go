package ports

import "context"

// Rasterizer converts a vector source into encoded PNG bytes.
//
//go:generate go run go.uber.org/mock/mockgen -source=rasterizer.go -destination=mocks/mock_rasterizer.go -package=mocks
type Rasterizer interface {
	// Rasterize renders the vector file at path to the given pixel height,
	// keeping its aspect ratio.
	Rasterize(ctx context.Context, path string, height int) ([]byte, error)
}
