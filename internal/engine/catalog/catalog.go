// Package catalog implements the assembly catalog used by project generation.
package catalog

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/projsync/internal/core/domain"
	"go.trai.ch/projsync/internal/core/ports"
	"go.trai.ch/zerr"
)

const packagesPrefix = "packages/"

// Catalog merges the build units of the editor and player targets into a filtered,
// disambiguated view and owns the package-origin cache and the generation flags.
type Catalog struct {
	units     ports.BuildUnitSource
	packages  ports.PackageIndex
	prefs     ports.PreferenceStore
	assets    ports.AssetSource
	analyzers ports.AnalyzerSource
	workDir   string

	cacheMu sync.Mutex
	cache   map[string]*domain.PackageInfo

	flagsMu     sync.Mutex
	flags       domain.GenerationFlags
	flagsLoaded bool
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithAssetSource sets the source used by AllAssetPaths.
func WithAssetSource(src ports.AssetSource) Option {
	return func(c *Catalog) {
		c.assets = src
	}
}

// WithAnalyzerSource sets the source used by AnalyzerPaths.
func WithAnalyzerSource(src ports.AnalyzerSource) Option {
	return func(c *Catalog) {
		c.analyzers = src
	}
}

// WithWorkDir sets the directory relative analyzer paths are resolved against.
// Defaults to the process working directory.
func WithWorkDir(dir string) Option {
	return func(c *Catalog) {
		c.workDir = dir
	}
}

// New creates a new Catalog.
func New(
	units ports.BuildUnitSource,
	packages ports.PackageIndex,
	prefs ports.PreferenceStore,
	opts ...Option,
) *Catalog {
	c := &Catalog{
		units:    units,
		packages: packages,
		prefs:    prefs,
		cache:    make(map[string]*domain.PackageInfo),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetAssemblies returns the units of the editor target, followed by those of the player
// target when FlagPlayerAssemblies is set. A unit is kept only if include accepts at
// least one of its source files.
func (c *Catalog) GetAssemblies(include func(path string) bool) ([]domain.CatalogEntry, error) {
	entries, err := c.collect(domain.TargetEditor, include, nil)
	if err != nil {
		return nil, err
	}

	if !c.Flags().Has(domain.FlagPlayerAssemblies) {
		return entries, nil
	}
	return c.collect(domain.TargetPlayer, include, entries)
}

func (c *Catalog) collect(
	kind domain.TargetKind,
	include func(path string) bool,
	entries []domain.CatalogEntry,
) ([]domain.CatalogEntry, error) {
	units, err := c.units.ListBuildUnits(kind)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list build units"), "target", kind.String())
	}

	outputPath := domain.OutputPathFor(kind)
	for _, unit := range units {
		if !slices.ContainsFunc(unit.SourceFiles, include) {
			continue
		}
		entries = append(entries, newEntry(unit, outputPath))
	}
	return entries, nil
}

func newEntry(unit domain.BuildUnit, outputPath string) domain.CatalogEntry {
	unit.CompilerOptions = domain.CompilerOptions{
		ResponseFiles:         slices.Clone(unit.CompilerOptions.ResponseFiles),
		AllowUnsafeCode:       unit.CompilerOptions.AllowUnsafeCode,
		APICompatibilityLevel: unit.CompilerOptions.APICompatibilityLevel,
	}
	return domain.CatalogEntry{
		BuildUnit:  unit,
		OutputPath: outputPath,
	}
}

// GetProjectName returns the project name of an assembly built into outputPath.
func (c *Catalog) GetProjectName(outputPath, assemblyName string) string {
	return ProjectName(outputPath, assemblyName)
}

// ProjectName appends ".Player" to assemblyName when outputPath is a player output root.
// Names already ending in ".Player" still get the suffix.
func ProjectName(outputPath, assemblyName string) string {
	if strings.HasSuffix(outputPath, domain.PlayerOutputSuffix) {
		return assemblyName + domain.PlayerProjectSuffix
	}
	return assemblyName
}

// ResolvePackageOrigin returns the package owning assetPath, or nil if the path is not
// inside a package. Lookups are memoized per package root, including misses.
func (c *Catalog) ResolvePackageOrigin(assetPath string) (*domain.PackageInfo, error) {
	key, ok := packageRoot(assetPath)
	if !ok {
		return nil, nil
	}

	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	if info, hit := c.cache[key]; hit {
		return info, nil
	}

	info, err := c.packages.FindPackageAt(key)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve package"), "package_root", key)
	}
	c.cache[key] = info
	return info, nil
}

// packageRoot returns the lower-cased "packages/<name>" prefix of assetPath.
func packageRoot(assetPath string) (string, bool) {
	if len(assetPath) < len(packagesPrefix) ||
		!strings.EqualFold(assetPath[:len(packagesPrefix)], packagesPrefix) {
		return "", false
	}

	root := assetPath
	if i := strings.IndexByte(assetPath[len(packagesPrefix):], '/'); i >= 0 {
		root = assetPath[:len(packagesPrefix)+i]
	}
	return strings.ToLower(root), true
}

// InvalidatePackageCache drops every cached package lookup.
func (c *Catalog) InvalidatePackageCache() {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	clear(c.cache)
}

// IsExcludedAsPackagePath reports whether path belongs to a package whose origin kind
// is not enabled in the generation flags. Paths outside packages are never excluded,
// and neither are packages of an origin kind without a flag.
func (c *Catalog) IsExcludedAsPackagePath(path string) (bool, error) {
	if strings.TrimSpace(path) == "" {
		return false, nil
	}

	info, err := c.ResolvePackageOrigin(path)
	if err != nil {
		return false, err
	}
	if info == nil {
		return false, nil
	}

	flag, ok := info.Source.Flag()
	if !ok {
		return false, nil
	}
	return !c.Flags().Has(flag), nil
}

// Flags returns the current generation flags, loading them from the preference store
// on first use.
func (c *Catalog) Flags() domain.GenerationFlags {
	c.flagsMu.Lock()
	defer c.flagsMu.Unlock()
	return c.loadFlags()
}

func (c *Catalog) loadFlags() domain.GenerationFlags {
	if !c.flagsLoaded {
		//nolint:gosec // Flag values are persisted from a uint32 bitset
		c.flags = domain.GenerationFlags(c.prefs.GetInt(domain.GenerationFlagsKey, int(domain.DefaultGenerationFlags)))
		c.flagsLoaded = true
	}
	return c.flags
}

// ToggleFlag flips flag and persists the result.
func (c *Catalog) ToggleFlag(flag domain.GenerationFlags) error {
	c.flagsMu.Lock()
	defer c.flagsMu.Unlock()
	return c.storeFlags(c.loadFlags().Toggle(flag))
}

// ResetFlags clears every flag and persists the result.
func (c *Catalog) ResetFlags() error {
	c.flagsMu.Lock()
	defer c.flagsMu.Unlock()
	return c.storeFlags(domain.FlagNone)
}

// storeFlags persists flags and only then makes them current.
func (c *Catalog) storeFlags(flags domain.GenerationFlags) error {
	if err := c.prefs.SetInt(domain.GenerationFlagsKey, int(flags)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to persist generation flags"), "flags", flags.String())
	}
	c.flags = flags
	c.flagsLoaded = true
	return nil
}

// ResolveUnitNameForSourceFile returns the name of the unit compiling path, or "".
func (c *Catalog) ResolveUnitNameForSourceFile(path string) (string, error) {
	return c.units.ResolveUnitNameForSourceFile(path)
}

// ParseResponseFile parses a compiler response file through the build-unit source.
func (c *Catalog) ParseResponseFile(
	path, projectDir string,
	systemRefDirs []string,
) (*domain.ResponseFileData, error) {
	return c.units.ParseResponseFile(path, projectDir, systemRefDirs)
}

// AllAssetPaths lists every asset of the project.
// It returns nil if the catalog has no asset source.
func (c *Catalog) AllAssetPaths() ([]string, error) {
	if c.assets == nil {
		return nil, nil
	}
	paths, err := c.assets.ListAllAssetPaths()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list assets")
	}
	return paths, nil
}

// AnalyzerPaths returns the absolute, de-duplicated paths of the managed plugins
// labeled as Roslyn analyzers.
func (c *Catalog) AnalyzerPaths() ([]string, error) {
	if c.analyzers == nil {
		return nil, nil
	}

	plugins, err := c.analyzers.ListPlugins()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list plugins")
	}

	workDir, err := c.resolveWorkDir()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var paths []string
	for _, p := range plugins {
		if !p.IsRoslynAnalyzer() {
			continue
		}
		path := filepath.FromSlash(p.AssetPath)
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}
	return paths, nil
}

func (c *Catalog) resolveWorkDir() (string, error) {
	if c.workDir != "" {
		return c.workDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get working directory")
	}
	return wd, nil
}
