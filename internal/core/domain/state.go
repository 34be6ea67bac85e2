package domain

import "time"

// ProjectState is the persisted record of the last project generation.
type ProjectState struct {
	// LastWrite is the watermark generated project files are compared against.
	LastWrite time.Time `json:"last_write,omitzero"`

	// CatalogHash fingerprints the assemblies and flags the last generation used.
	CatalogHash string `json:"catalog_hash,omitzero"`
}
