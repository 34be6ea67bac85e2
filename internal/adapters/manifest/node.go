package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/projsync/internal/adapters/config"
	"go.trai.ch/projsync/internal/core/domain"
)

// NodeID is the unique identifier for the manifest source Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[*Source]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (*Source, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewSource(settings.ManifestPath), nil
		},
	})
}
