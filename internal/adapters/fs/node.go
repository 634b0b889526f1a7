package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/iconsync/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the content hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// WorkspaceNodeID is the unique identifier for the workspace Graft node.
	WorkspaceNodeID graft.ID = "adapter.fs.workspace"
)

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.Workspace]{
		ID:        WorkspaceNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{HasherNodeID},
		Run: func(ctx context.Context) (ports.Workspace, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewWorkspace(NewWalker(), NewVerifier(), NewRenamer(), hasher), nil
		},
	})
}
