// Package prefs implements the preference store on top of viper.
package prefs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
	"go.trai.ch/projsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// EnvPrefix is the prefix of environment variables overriding stored preferences,
// e.g. PROJSYNC_UNITY_PROJECT_GENERATION_FLAG.
const EnvPrefix = "PROJSYNC"

var _ ports.PreferenceStore = (*Store)(nil)

// Store implements ports.PreferenceStore backed by a YAML file.
type Store struct {
	path string
	mu   sync.Mutex
	v    *viper.Viper
}

// NewStore opens the preference file at path. A missing file is an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: filepath.Clean(path),
		v:    newViper(),
	}
	s.v.SetConfigFile(s.path)

	if err := s.v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, "failed to read preferences"), "path", s.path)
		}
	}
	return s, nil
}

func newViper() *viper.Viper {
	// Preference keys are flat; dots must not create nested sections.
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// GetInt returns the value stored under key, or def if none is stored.
func (s *Store) GetInt(key string, def int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.v.IsSet(key) {
		return def
	}
	return s.v.GetInt(key)
}

// SetInt writes value under key to disk and then makes it current.
func (s *Store) SetInt(key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := newViper()
	if err := next.MergeConfigMap(s.v.AllSettings()); err != nil {
		return zerr.Wrap(err, "failed to copy preferences")
	}
	next.Set(key, value)

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for preferences"), "dir", dir)
	}
	if err := next.WriteConfigAs(s.path); err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to write preferences"), "path", s.path)
		return zerr.With(err, "key", key)
	}

	s.v.Set(key, value)
	return nil
}
