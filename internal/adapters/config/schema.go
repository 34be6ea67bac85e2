package config

// Projfile represents the structure of the projsync.yaml configuration file.
type Projfile struct {
	Version           string   `yaml:"version"`
	TrackFileChanges  *bool    `yaml:"trackFileChanges"`
	LoggingLevel      string   `yaml:"loggingLevel"`
	ProjectExtension  string   `yaml:"projectExtension"`
	SolutionExtension string   `yaml:"solutionExtension"`
	UserExtensions    []string `yaml:"userExtensions"`
	RootNamespace     string   `yaml:"rootNamespace"`
	Manifest          string   `yaml:"manifest"`
	State             string   `yaml:"state"`
	Preferences       string   `yaml:"preferences"`
	AssetRoots        []string `yaml:"assetRoots"`
	AssetIgnores      []string `yaml:"assetIgnores"`
}
