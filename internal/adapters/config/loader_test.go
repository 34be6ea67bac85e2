package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/projsync/internal/adapters/config"
	"go.trai.ch/projsync/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, config.Filename), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return tmpDir
}

func TestLoad_Success(t *testing.T) {
	dir := writeConfig(t, `
version: "1"
trackFileChanges: false
loggingLevel: Verbose
projectExtension: .vcxproj
solutionExtension: .slnx
userExtensions: [shader, .USS, ""]
rootNamespace: Game
manifest: Build/manifest.yaml
state: /var/lib/projsync/state.json
assetRoots: [Assets]
assetIgnores: ["*.meta"]
`)

	settings, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, settings.Root)
	assert.False(t, settings.TrackFileChanges)
	assert.Equal(t, domain.LoggingLevelVerbose, settings.LoggingLevel)
	assert.Equal(t, ".vcxproj", settings.ProjectExtension)
	assert.Equal(t, ".slnx", settings.SolutionExtension)
	assert.Equal(t, []string{".shader", ".uss"}, settings.UserExtensions)
	assert.Equal(t, "Game", settings.RootNamespace)
	assert.Equal(t, filepath.Join(dir, "Build", "manifest.yaml"), settings.ManifestPath)
	assert.Equal(t, filepath.FromSlash("/var/lib/projsync/state.json"), settings.StatePath)
	assert.Equal(t, filepath.Join(dir, "Library", "ProjectSync", "prefs.yaml"), settings.PreferencesPath)
	assert.Equal(t, []string{"Assets"}, settings.AssetRoots)
	assert.Equal(t, []string{"*.meta"}, settings.AssetIgnores)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	settings, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	assert.True(t, settings.TrackFileChanges)
	assert.Equal(t, domain.LoggingLevelInfo, settings.LoggingLevel)
	assert.Equal(t, config.DefaultProjectExtension, settings.ProjectExtension)
	assert.Equal(t, config.DefaultSolutionExtension, settings.SolutionExtension)
	assert.Empty(t, settings.UserExtensions)
	assert.Equal(t, filepath.Join(dir, filepath.FromSlash(config.DefaultManifestPath)), settings.ManifestPath)
	assert.Equal(t, filepath.Join(dir, filepath.FromSlash(config.DefaultStatePath)), settings.StatePath)
	assert.Equal(t, []string{"Assets", "Packages"}, settings.AssetRoots)
}

func TestLoad_UnknownLoggingLevel(t *testing.T) {
	dir := writeConfig(t, `loggingLevel: chatty`)

	_, err := config.NewLoader().Load(dir)
	require.ErrorIs(t, err, domain.ErrUnknownLoggingLevel)

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T: %v", err, err)
	}
	meta := zErr.Metadata()
	assert.Equal(t, "chatty", meta["level"])
	assert.Equal(t, filepath.Join(dir, config.Filename), meta["path"])
}

func TestLoad_InvalidExtension(t *testing.T) {
	tests := []struct {
		name    string
		content string
		key     string
		ext     string
	}{
		{"project without dot", "projectExtension: csproj", "projectExtension", "csproj"},
		{"solution dot only", `solutionExtension: "."`, "solutionExtension", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.NewLoader().Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, domain.ErrInvalidExtension)

			zErr, ok := err.(*zerr.Error)
			if !ok {
				t.Fatalf("expected *zerr.Error, got %T: %v", err, err)
			}
			meta := zErr.Metadata()
			assert.Equal(t, tt.key, meta["key"])
			assert.Equal(t, tt.ext, meta["extension"])
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := config.NewLoader().Load(writeConfig(t, "assetRoots: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_CustomFilename(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alt.yaml"), []byte("loggingLevel: trace"), 0o600))

	loader := &config.Loader{Filename: "alt.yaml"}
	settings, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.LoggingLevelTrace, settings.LoggingLevel)
}
