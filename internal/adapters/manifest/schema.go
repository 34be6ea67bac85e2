package manifest

// Manifest represents the build manifest exported by the host editor.
type Manifest struct {
	Version  string       `yaml:"version"`
	Editor   []UnitDTO    `yaml:"editor"`
	Player   []UnitDTO    `yaml:"player"`
	Packages []PackageDTO `yaml:"packages"`
	Plugins  []PluginDTO  `yaml:"plugins"`
}

// UnitDTO represents a build unit in the manifest.
type UnitDTO struct {
	Name                       string             `yaml:"name"`
	SourceFiles                []string           `yaml:"sourceFiles"`
	Defines                    []string           `yaml:"defines"`
	AssemblyReferences         []string           `yaml:"assemblyReferences"`
	CompiledAssemblyReferences []string           `yaml:"compiledAssemblyReferences"`
	Flags                      []string           `yaml:"flags"`
	CompilerOptions            CompilerOptionsDTO `yaml:"compilerOptions"`
	RootNamespace              string             `yaml:"rootNamespace"`
}

// CompilerOptionsDTO represents the compiler options of a build unit.
type CompilerOptionsDTO struct {
	ResponseFiles         []string `yaml:"responseFiles"`
	AllowUnsafeCode       bool     `yaml:"allowUnsafeCode"`
	APICompatibilityLevel string   `yaml:"apiCompatibilityLevel"`
}

// PackageDTO represents an installed package.
type PackageDTO struct {
	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	DisplayName  string `yaml:"displayName"`
	Source       string `yaml:"source"`
	AssetPath    string `yaml:"assetPath"`
	ResolvedPath string `yaml:"resolvedPath"`
}

// PluginDTO represents a binary plugin.
type PluginDTO struct {
	AssetPath string   `yaml:"assetPath"`
	Native    bool     `yaml:"native"`
	Labels    []string `yaml:"labels"`
}
