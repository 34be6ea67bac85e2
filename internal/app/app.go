// Package app implements the application layer for projsync.
package app

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/projsync/internal/core/domain"
	"go.trai.ch/projsync/internal/core/ports"
	"go.trai.ch/projsync/internal/engine/catalog"
	"go.trai.ch/projsync/internal/engine/tracker"
	"go.trai.ch/zerr"
)

// SourceExtension is the extension of source files that are always in scope.
const SourceExtension = ".cs"

// App represents the main application logic.
type App struct {
	settings *domain.Settings
	catalog  *catalog.Catalog
	tracker  *tracker.Tracker
	hasher   ports.CatalogHasher
	store    ports.StateStore
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	settings *domain.Settings,
	cat *catalog.Catalog,
	trk *tracker.Tracker,
	hasher ports.CatalogHasher,
	store ports.StateStore,
	logger ports.Logger,
) *App {
	return &App{
		settings: settings,
		catalog:  cat,
		tracker:  trk,
		hasher:   hasher,
		store:    store,
		logger:   logger,
	}
}

// StatusReport tells whether the generated project files need to be regenerated.
type StatusReport struct {
	// FilesChanged is set when generated files were modified after the last recorded write.
	FilesChanged bool
	// CatalogChanged is set when the assemblies or flags differ from the last generation.
	CatalogChanged bool
	CatalogHash    string
}

// NeedsRegeneration reports whether either the files or the catalog changed.
func (r StatusReport) NeedsRegeneration() bool {
	return r.FilesChanged || r.CatalogChanged
}

// PackageReport describes the package owning an asset.
type PackageReport struct {
	// Info is nil when the asset is not inside a package.
	Info     *domain.PackageInfo
	Excluded bool
}

// Assemblies starts a generation pass and returns the projects to generate, keyed by
// their disambiguated names. When two entries map to the same project name, the first
// one is kept and the other is reported as a warning. Entries without a root namespace
// get the configured one.
func (a *App) Assemblies() ([]domain.Project, error) {
	a.catalog.InvalidatePackageCache()

	var predicateErr error
	entries, err := a.catalog.GetAssemblies(func(path string) bool {
		if predicateErr != nil || !a.isSupported(path) {
			return false
		}
		excluded, err := a.catalog.IsExcludedAsPackagePath(path)
		if err != nil {
			predicateErr = err
			return false
		}
		return !excluded
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to collect assemblies")
	}
	if predicateErr != nil {
		return nil, zerr.Wrap(predicateErr, "failed to filter assemblies")
	}

	index := domain.NewProjectIndex()
	for _, entry := range entries {
		if entry.RootNamespace == "" {
			entry.RootNamespace = a.settings.RootNamespace
		}
		name := a.catalog.GetProjectName(entry.OutputPath, entry.Name)
		if err := index.Add(name, entry); err != nil {
			a.logger.Warn("skipping assembly " + entry.Name + " in " + entry.OutputPath + ": " + err.Error())
		}
	}
	return index.Projects(), nil
}

// isSupported reports whether path has a source extension that belongs in a project.
func (a *App) isSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == SourceExtension || slices.Contains(a.settings.UserExtensions, ext)
}

// Status compares the generated files and the current catalog with the last generation.
func (a *App) Status() (StatusReport, error) {
	filesChanged, err := a.tracker.HasChangedSinceLastWrite()
	if err != nil {
		return StatusReport{}, zerr.Wrap(err, "failed to check project files")
	}

	hash, err := a.catalogHash()
	if err != nil {
		return StatusReport{}, err
	}

	state, err := a.store.Get()
	if err != nil {
		return StatusReport{}, zerr.Wrap(err, "failed to read project state")
	}

	return StatusReport{
		FilesChanged:   filesChanged,
		CatalogChanged: state.CatalogHash != hash,
		CatalogHash:    hash,
	}, nil
}

// RecordGeneration advances the watermark for every written path that is a generated
// project file and stores the fingerprint of the current catalog.
func (a *App) RecordGeneration(paths []string) error {
	for _, path := range paths {
		if err := a.tracker.RecordWriteIfRelevant(path); err != nil {
			return zerr.Wrap(err, "failed to record generated file")
		}
	}

	hash, err := a.catalogHash()
	if err != nil {
		return err
	}

	state, err := a.store.Get()
	if err != nil {
		return zerr.Wrap(err, "failed to read project state")
	}
	state.CatalogHash = hash
	if err := a.store.Put(state); err != nil {
		return zerr.Wrap(err, "failed to store project state")
	}

	a.logger.Debug("recorded generation " + hash)
	return nil
}

func (a *App) catalogHash() (string, error) {
	projects, err := a.Assemblies()
	if err != nil {
		return "", err
	}
	entries := make([]domain.CatalogEntry, 0, len(projects))
	for _, p := range projects {
		entries = append(entries, p.Entry)
	}
	return a.hasher.ComputeCatalogHash(entries, a.catalog.Flags()), nil
}

// Flags returns the current generation flags.
func (a *App) Flags() domain.GenerationFlags {
	return a.catalog.Flags()
}

// ToggleFlags toggles each named flag in turn.
// All names are validated before any flag changes.
func (a *App) ToggleFlags(names []string) error {
	flags := make([]domain.GenerationFlags, 0, len(names))
	for _, name := range names {
		flag, err := domain.ParseGenerationFlag(name)
		if err != nil {
			return err
		}
		flags = append(flags, flag)
	}

	for _, flag := range flags {
		if err := a.catalog.ToggleFlag(flag); err != nil {
			return err
		}
	}
	return nil
}

// ResetFlags clears every generation flag.
func (a *App) ResetFlags() error {
	return a.catalog.ResetFlags()
}

// Package returns the package owning assetPath and whether it is excluded from generation.
func (a *App) Package(assetPath string) (PackageReport, error) {
	info, err := a.catalog.ResolvePackageOrigin(assetPath)
	if err != nil {
		return PackageReport{}, err
	}
	excluded, err := a.catalog.IsExcludedAsPackagePath(assetPath)
	if err != nil {
		return PackageReport{}, err
	}
	return PackageReport{Info: info, Excluded: excluded}, nil
}

// Owner returns the name of the assembly compiling sourcePath, or "".
func (a *App) Owner(sourcePath string) (string, error) {
	return a.catalog.ResolveUnitNameForSourceFile(filepath.ToSlash(sourcePath))
}

// ResponseFile parses a compiler response file relative to the project root.
func (a *App) ResponseFile(path string, systemRefDirs []string) (*domain.ResponseFileData, error) {
	return a.catalog.ParseResponseFile(path, a.settings.Root, systemRefDirs)
}

// Assets lists the asset paths of the project.
func (a *App) Assets() ([]string, error) {
	return a.catalog.AllAssetPaths()
}

// Analyzers returns the absolute paths of the configured analyzer plugins.
func (a *App) Analyzers() ([]string, error) {
	return a.catalog.AnalyzerPaths()
}
