// Package config provides the settings loader for projsync.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/projsync/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// Filename is the name of the settings file at the project root.
	Filename = "projsync.yaml"

	DefaultProjectExtension  = ".csproj"
	DefaultSolutionExtension = ".sln"
	DefaultManifestPath      = "Library/ProjectSync/manifest.yaml"
	DefaultStatePath         = "Library/ProjectSync/state.json"
	DefaultPreferencesPath   = "Library/ProjectSync/prefs.yaml"
)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	Filename string
}

// NewLoader creates a new settings loader reading projsync.yaml.
func NewLoader() *Loader {
	return &Loader{Filename: Filename}
}

// Load reads projsync.yaml from cwd. A missing file yields the default settings.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	root, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project root"), "cwd", cwd)
	}

	path := filepath.Join(root, l.Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the project root
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return resolve(root, &Projfile{})
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var projfile Projfile
	if err := yaml.Unmarshal(data, &projfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	settings, err := resolve(root, &projfile)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return settings, nil
}

// resolve applies defaults to p and validates it.
func resolve(root string, p *Projfile) (*domain.Settings, error) {
	level, err := domain.ParseLoggingLevel(p.LoggingLevel)
	if err != nil {
		return nil, err
	}

	projectExt, err := extension("projectExtension", p.ProjectExtension, DefaultProjectExtension)
	if err != nil {
		return nil, err
	}
	solutionExt, err := extension("solutionExtension", p.SolutionExtension, DefaultSolutionExtension)
	if err != nil {
		return nil, err
	}

	track := true
	if p.TrackFileChanges != nil {
		track = *p.TrackFileChanges
	}

	assetRoots := p.AssetRoots
	if len(assetRoots) == 0 {
		assetRoots = []string{"Assets", "Packages"}
	}

	return &domain.Settings{
		Root:              root,
		TrackFileChanges:  track,
		LoggingLevel:      level,
		ProjectExtension:  projectExt,
		SolutionExtension: solutionExt,
		UserExtensions:    userExtensions(p.UserExtensions),
		RootNamespace:     p.RootNamespace,
		ManifestPath:      resolvePath(root, p.Manifest, DefaultManifestPath),
		StatePath:         resolvePath(root, p.State, DefaultStatePath),
		PreferencesPath:   resolvePath(root, p.Preferences, DefaultPreferencesPath),
		AssetRoots:        assetRoots,
		AssetIgnores:      p.AssetIgnores,
	}, nil
}

func extension(key, value, def string) (string, error) {
	if value == "" {
		return def, nil
	}
	if !strings.HasPrefix(value, ".") || len(value) == 1 {
		err := zerr.Wrap(domain.ErrInvalidExtension, "invalid settings")
		err = zerr.With(err, "key", key)
		return "", zerr.With(err, "extension", value)
	}
	return value, nil
}

// userExtensions lower-cases the extensions and adds a missing leading dot.
func userExtensions(exts []string) []string {
	if len(exts) == 0 {
		return nil
	}
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func resolvePath(root, value, def string) string {
	if value == "" {
		value = def
	}
	value = filepath.FromSlash(value)
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(root, value)
}
