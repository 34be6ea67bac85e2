package ports

import "go.trai.ch/projsync/internal/core/domain"

// CatalogHasher fingerprints the inputs of a project generation.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type CatalogHasher interface {
	// ComputeCatalogHash returns a deterministic hash of the entries and flags.
	ComputeCatalogHash(entries []domain.CatalogEntry, flags domain.GenerationFlags) string
}
