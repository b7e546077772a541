package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crossbuild/internal/adapters/logger"
	"go.trai.ch/crossbuild/internal/core/ports"
)

const NodeID graft.ID = "adapter.descriptor_source"

func init() {
	graft.Register(graft.Node[ports.DescriptorSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.DescriptorSource, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
