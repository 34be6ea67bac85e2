package ports

import "go.trai.ch/projsync/internal/core/domain"

// PackageIndex looks up package metadata by package root.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_index.go -destination=mocks/mock_package_index.go -package=mocks
type PackageIndex interface {
	// FindPackageAt returns the package rooted at the normalized asset path (e.g., "packages/com.foo").
	// Returns nil, nil if no package lives there.
	FindPackageAt(root string) (*domain.PackageInfo, error)
}
