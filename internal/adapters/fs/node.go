package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/projsync/internal/adapters/config"
	"go.trai.ch/projsync/internal/core/domain"
	"go.trai.ch/projsync/internal/core/ports"
)

const (
	WalkerNodeID graft.ID = "adapter.fs.walker"
	AssetsNodeID graft.ID = "adapter.fs.assets"
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	// Walker Node (Concrete implementation needed by the asset lister)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.AssetSource]{
		ID:        AssetsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.AssetSource, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewAssetLister(walker, settings.Root, settings.AssetRoots, settings.AssetIgnores), nil
		},
	})

	graft.Register(graft.Node[ports.CatalogHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CatalogHasher, error) {
			return NewHasher(), nil
		},
	})
}
