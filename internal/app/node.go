package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/projsync/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/projsync/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/projsync/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/projsync/internal/adapters/state"  //nolint:depguard // Wired in app layer
	"go.trai.ch/projsync/internal/core/domain"
	"go.trai.ch/projsync/internal/core/ports"
	"go.trai.ch/projsync/internal/engine/catalog"
	"go.trai.ch/projsync/internal/engine/tracker"
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
			config.SettingsNodeID,
			catalog.NodeID,
			tracker.NodeID,
			fs.HasherNodeID,
			state.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	cat, err := graft.Dep[*catalog.Catalog](ctx)
	if err != nil {
		return nil, err
	}

	trk, err := graft.Dep[*tracker.Tracker](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.CatalogHasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.StateStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(settings, cat, trk, hasher, store, log), nil
}
