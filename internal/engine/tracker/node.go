package tracker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/projsync/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/projsync/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/projsync/internal/adapters/state"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/projsync/internal/core/domain"
	"go.trai.ch/projsync/internal/core/ports"
)

// NodeID is the unique identifier for the tracker Graft node.
const NodeID graft.ID = "engine.tracker"

func init() {
	graft.Register(graft.Node[*Tracker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			state.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Tracker, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
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

			return New(store, log, settings, WithWorkDir(settings.Root)), nil
		},
	})
}
