package ports

import "go.trai.ch/projsync/internal/core/domain"

// AssetSource lists the asset paths of the project.
//
//go:generate go run go.uber.org/mock/mockgen -source=assets.go -destination=mocks/mock_assets.go -package=mocks
type AssetSource interface {
	// ListAllAssetPaths returns project-relative, slash-separated asset paths.
	ListAllAssetPaths() ([]string, error)
}

// AnalyzerSource lists the binary plugins configured in the project.
type AnalyzerSource interface {
	ListPlugins() ([]domain.Plugin, error)
}
