package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/crossbuild/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/crossbuild/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/crossbuild/internal/core/ports"
	"go.trai.ch/crossbuild/internal/registry"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			manager, err := graft.Dep[*registry.Manager](ctx)
			if err != nil {
				return nil, err
			}

			source, err := graft.Dep[ports.DescriptorSource](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(manager, source, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
