package prefs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/projsync/internal/adapters/config"
	"go.trai.ch/projsync/internal/core/domain"
	"go.trai.ch/projsync/internal/core/ports"
)

// NodeID is the unique identifier for the preference store Graft node.
const NodeID graft.ID = "adapter.preferences"

func init() {
	graft.Register(graft.Node[ports.PreferenceStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.PreferenceStore, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.PreferencesPath)
		},
	})
}
