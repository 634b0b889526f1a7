package synchronizer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iconsync/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/iconsync/internal/adapters/svg"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/iconsync/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/iconsync/internal/adapters/webp"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/iconsync/internal/core/ports"
)

// NodeID is the unique identifier for the synchronizer Graft node.
const NodeID graft.ID = "engine.synchronizer"

func init() {
	graft.Register(graft.Node[*Synchronizer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.WorkspaceNodeID,
			svg.NodeID,
			webp.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Synchronizer, error) {
			workspace, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}

			rasterizer, err := graft.Dep[ports.Rasterizer](ctx)
			if err != nil {
				return nil, err
			}

			transcoder, err := graft.Dep[ports.Transcoder](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(workspace, rasterizer, transcoder, telemetry), nil
		},
	})
}
