package ports

import "go.trai.ch/iconsync/internal/core/domain"

// Renderer receives progress events as files are processed.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Outcome is called once per processed file and stage.
	Outcome(o domain.Outcome)

	// Removed is called for every orphan that was deleted.
	Removed(path string)
}
