package domain

// PackageSource is the origin kind of a package.
type PackageSource string

const (
	PackageSourceEmbedded     PackageSource = "embedded"
	PackageSourceRegistry     PackageSource = "registry"
	PackageSourceBuiltIn      PackageSource = "builtin"
	PackageSourceUnknown      PackageSource = "unknown"
	PackageSourceLocal        PackageSource = "local"
	PackageSourceGit          PackageSource = "git"
	PackageSourceLocalTarball PackageSource = "local-tarball"
)

// Flag returns the generation flag that opts in to showing packages of this origin.
// The second result is false for origin kinds without a flag.
func (s PackageSource) Flag() (GenerationFlags, bool) {
	switch s {
	case PackageSourceEmbedded:
		return FlagEmbedded, true
	case PackageSourceRegistry:
		return FlagRegistry, true
	case PackageSourceBuiltIn:
		return FlagBuiltIn, true
	case PackageSourceUnknown:
		return FlagUnknown, true
	case PackageSourceLocal:
		return FlagLocal, true
	case PackageSourceGit:
		return FlagGit, true
	case PackageSourceLocalTarball:
		return FlagLocalTarball, true
	default:
		return FlagNone, false
	}
}

// PackageInfo is the metadata of the package owning a set of assets.
type PackageInfo struct {
	// Name is the package identifier (e.g., "com.unity.ide.rider").
	Name InternedString

	// Version is the resolved package version (e.g., "3.0.7").
	Version InternedString

	DisplayName string
	Source      PackageSource

	// AssetPath is the package root as seen by the asset database (e.g., "Packages/com.unity.ide.rider").
	AssetPath string

	// ResolvedPath is the package location on disk.
	ResolvedPath string
}

// PackageID returns the "name@version" identifier of the package.
func (p *PackageInfo) PackageID() string {
	if p.Version.String() == "" {
		return p.Name.String()
	}
	return p.Name.String() + "@" + p.Version.String()
}
