package domain

// RoslynAnalyzerLabel marks a plugin as a Roslyn analyzer.
const RoslynAnalyzerLabel = "RoslynAnalyzer"

// Plugin is a binary plugin configured in the project.
type Plugin struct {
	AssetPath string
	Native    bool
	Labels    []string
}

// IsRoslynAnalyzer reports whether the plugin is a managed analyzer.
func (p Plugin) IsRoslynAnalyzer() bool {
	if p.Native {
		return false
	}
	for _, l := range p.Labels {
		if l == RoslynAnalyzerLabel {
			return true
		}
	}
	return false
}
