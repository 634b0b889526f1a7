package webp

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iconsync/internal/core/ports"
)

// NodeID is the unique identifier for the transcoder Graft node.
const NodeID graft.ID = "adapter.webp.transcoder"

func init() {
	graft.Register(graft.Node[ports.Transcoder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Transcoder, error) {
			return NewTranscoder(), nil
		},
	})
}
