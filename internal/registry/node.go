package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crossbuild/internal/projects"
)

// NodeID is the unique identifier for the target manager Graft node.
const NodeID graft.ID = "engine.registry"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Manager, error) {
			return NewManager(projects.Builtin())
		},
	})
}
