package domain

const (
	// EditorOutputPath is the output root assigned to editor-target units.
	EditorOutputPath = `Temp\Bin\Debug\`
	// PlayerOutputPath is the output root assigned to player-target units.
	PlayerOutputPath = `Temp\Bin\Debug\Player\`
	// PlayerOutputSuffix identifies an output path as belonging to the player target.
	PlayerOutputSuffix = `\Player\`
	// PlayerProjectSuffix is appended to project names of player-target units.
	PlayerProjectSuffix = ".Player"
)

// CatalogEntry is a build unit tagged with the output path of the target it was listed for.
type CatalogEntry struct {
	BuildUnit
	OutputPath string
}

// OutputPathFor returns the fixed output root of a target kind.
func OutputPathFor(kind TargetKind) string {
	if kind == TargetPlayer {
		return PlayerOutputPath
	}
	return EditorOutputPath
}
