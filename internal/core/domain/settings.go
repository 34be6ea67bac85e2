package domain

// Settings is the resolved projsync configuration of a project root.
type Settings struct {
	// Root is the absolute project root; generated files live directly in it.
	Root string

	TrackFileChanges bool
	LoggingLevel     LoggingLevel

	// ProjectExtension is the extension of generated per-assembly project files (e.g., ".csproj").
	ProjectExtension string
	// SolutionExtension is the extension of the single top-level solution file (e.g., ".sln").
	SolutionExtension string

	// UserExtensions are extra source extensions, with leading dot, that count as in-scope.
	UserExtensions []string
	// RootNamespace is used for build units that do not declare their own.
	RootNamespace string

	// ManifestPath, StatePath and PreferencesPath are absolute.
	ManifestPath    string
	StatePath       string
	PreferencesPath string

	AssetRoots   []string
	AssetIgnores []string
}
