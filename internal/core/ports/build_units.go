// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/projsync/internal/core/domain"

// BuildUnitSource enumerates the compilation units known to the host build pipeline.
//
//go:generate go run go.uber.org/mock/mockgen -source=build_units.go -destination=mocks/mock_build_units.go -package=mocks
type BuildUnitSource interface {
	// ListBuildUnits returns the units compiled for the given target, in source order.
	ListBuildUnits(kind domain.TargetKind) ([]domain.BuildUnit, error)

	// ResolveUnitNameForSourceFile returns the name of the unit compiling path.
	// Returns "" and a nil error if no unit owns the file.
	ResolveUnitNameForSourceFile(path string) (string, error)

	// ParseResponseFile parses a compiler response file.
	// Relative paths are resolved against projectDir; references that are not found
	// there are looked up in systemRefDirs.
	ParseResponseFile(path, projectDir string, systemRefDirs []string) (*domain.ResponseFileData, error)
}
