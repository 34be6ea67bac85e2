// Package manifest reads the build manifest exported by the host editor.
package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/projsync/internal/core/domain"
	"go.trai.ch/projsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	_ ports.BuildUnitSource = (*Source)(nil)
	_ ports.PackageIndex    = (*Source)(nil)
	_ ports.AnalyzerSource  = (*Source)(nil)
)

var assemblyFlagNames = map[string]domain.AssemblyFlags{
	"editor":   domain.AssemblyFlagEditorAssembly,
	"roslyn":   domain.AssemblyFlagCandidateForCompilingWithRoslyn,
	"user":     domain.AssemblyFlagUserAssembly,
	"explicit": domain.AssemblyFlagExplicitlyReferenced,
}

// Source serves build units, packages and plugins from a manifest file.
// The file is re-read on every call so that a fresh export is picked up.
type Source struct {
	path string
}

// NewSource creates a Source reading the manifest at path.
func NewSource(path string) *Source {
	return &Source{path: filepath.Clean(path)}
}

func (s *Source) load() (*Manifest, error) {
	data, err := os.ReadFile(s.path) //nolint:gosec // path comes from the project settings
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read build manifest"), "path", s.path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse build manifest"), "path", s.path)
	}
	return &m, nil
}

// ListBuildUnits returns the units of the given target in manifest order.
func (s *Source) ListBuildUnits(kind domain.TargetKind) ([]domain.BuildUnit, error) {
	m, err := s.load()
	if err != nil {
		return nil, err
	}

	dtos := m.Editor
	if kind == domain.TargetPlayer {
		dtos = m.Player
	}

	units := make([]domain.BuildUnit, 0, len(dtos))
	for i := range dtos {
		unit, err := toBuildUnit(&dtos[i])
		if err != nil {
			return nil, zerr.With(err, "path", s.path)
		}
		units = append(units, unit)
	}
	return units, nil
}

func toBuildUnit(dto *UnitDTO) (domain.BuildUnit, error) {
	var flags domain.AssemblyFlags
	for _, name := range dto.Flags {
		flag, ok := assemblyFlagNames[strings.ToLower(name)]
		if !ok {
			err := zerr.Wrap(domain.ErrInvalidManifest, "unknown assembly flag")
			err = zerr.With(err, "unit", dto.Name)
			return domain.BuildUnit{}, zerr.With(err, "flag", name)
		}
		flags |= flag
	}

	return domain.BuildUnit{
		Name:                       dto.Name,
		SourceFiles:                dto.SourceFiles,
		Defines:                    dto.Defines,
		AssemblyReferences:         dto.AssemblyReferences,
		CompiledAssemblyReferences: dto.CompiledAssemblyReferences,
		Flags:                      flags,
		CompilerOptions: domain.CompilerOptions{
			ResponseFiles:         dto.CompilerOptions.ResponseFiles,
			AllowUnsafeCode:       dto.CompilerOptions.AllowUnsafeCode,
			APICompatibilityLevel: domain.APICompatibilityLevel(dto.CompilerOptions.APICompatibilityLevel),
		},
		RootNamespace: dto.RootNamespace,
	}, nil
}

// ResolveUnitNameForSourceFile returns the first unit, editor target first, whose
// source files contain path. Returns "" if no unit compiles it.
func (s *Source) ResolveUnitNameForSourceFile(path string) (string, error) {
	m, err := s.load()
	if err != nil {
		return "", err
	}

	want := filepath.ToSlash(path)
	for _, units := range [][]UnitDTO{m.Editor, m.Player} {
		for _, unit := range units {
			for _, src := range unit.SourceFiles {
				if strings.EqualFold(filepath.ToSlash(src), want) {
					return unit.Name, nil
				}
			}
		}
	}
	return "", nil
}

// FindPackageAt returns the package whose asset path equals root, ignoring case.
// Returns nil if no package is installed there.
func (s *Source) FindPackageAt(root string) (*domain.PackageInfo, error) {
	m, err := s.load()
	if err != nil {
		return nil, err
	}

	want := strings.TrimSuffix(filepath.ToSlash(root), "/")
	for _, pkg := range m.Packages {
		if !strings.EqualFold(strings.TrimSuffix(pkg.AssetPath, "/"), want) {
			continue
		}
		return &domain.PackageInfo{
			Name:         domain.NewInternedString(pkg.Name),
			Version:      domain.NewInternedString(pkg.Version),
			DisplayName:  pkg.DisplayName,
			Source:       domain.PackageSource(strings.ToLower(pkg.Source)),
			AssetPath:    pkg.AssetPath,
			ResolvedPath: pkg.ResolvedPath,
		}, nil
	}
	return nil, nil
}

// ListPlugins returns the plugins of the project.
func (s *Source) ListPlugins() ([]domain.Plugin, error) {
	m, err := s.load()
	if err != nil {
		return nil, err
	}

	plugins := make([]domain.Plugin, 0, len(m.Plugins))
	for _, p := range m.Plugins {
		plugins = append(plugins, domain.Plugin{
			AssetPath: p.AssetPath,
			Native:    p.Native,
			Labels:    p.Labels,
		})
	}
	return plugins, nil
}
