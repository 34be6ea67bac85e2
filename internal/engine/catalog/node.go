package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/projsync/internal/adapters/config"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/projsync/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/projsync/internal/adapters/manifest" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/projsync/internal/adapters/prefs"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/projsync/internal/core/domain"
	"go.trai.ch/projsync/internal/core/ports"
)

// NodeID is the unique identifier for the catalog Graft node.
const NodeID graft.ID = "engine.catalog"

func init() {
	graft.Register(graft.Node[*Catalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			manifest.NodeID,
			prefs.NodeID,
			fs.AssetsNodeID,
		},
		Run: func(ctx context.Context) (*Catalog, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			source, err := graft.Dep[*manifest.Source](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.PreferenceStore](ctx)
			if err != nil {
				return nil, err
			}

			assets, err := graft.Dep[ports.AssetSource](ctx)
			if err != nil {
				return nil, err
			}

			return New(
				source,
				source,
				store,
				WithAssetSource(assets),
				WithAnalyzerSource(source),
				WithWorkDir(settings.Root),
			), nil
		},
	})
}
