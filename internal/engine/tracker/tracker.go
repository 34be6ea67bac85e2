// Package tracker decides whether generated project files are newer than the last
// recorded generation.
package tracker

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/projsync/internal/core/domain"
	"go.trai.ch/projsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Tracker compares the generated files in the working directory against the persisted
// watermark.
type Tracker struct {
	store    ports.StateStore
	logger   ports.Logger
	settings *domain.Settings
	workDir  string
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithWorkDir sets the directory generated files are written to.
// Defaults to the process working directory.
func WithWorkDir(dir string) Option {
	return func(t *Tracker) {
		t.workDir = dir
	}
}

// New creates a new Tracker.
func New(store ports.StateStore, logger ports.Logger, settings *domain.Settings, opts ...Option) *Tracker {
	t := &Tracker{
		store:    store,
		logger:   logger,
		settings: settings,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// HasChangedSinceLastWrite reports whether any project file, or the solution file named
// after the working directory, was modified after the watermark.
func (t *Tracker) HasChangedSinceLastWrite() (bool, error) {
	if !t.settings.TrackFileChanges {
		if t.settings.LoggingLevel >= domain.LoggingLevelVerbose {
			t.logger.Debug("Project files tracking is disabled.")
		}
		return false, nil
	}

	dir, err := t.dir()
	if err != nil {
		return false, err
	}

	state, err := t.store.Get()
	if err != nil {
		return false, zerr.Wrap(err, "failed to read project state")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to list working directory"), "dir", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), t.settings.ProjectExtension) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return false, zerr.With(zerr.Wrap(err, "failed to stat project file"), "path", entry.Name())
		}
		if info.ModTime().After(state.LastWrite) {
			return true, nil
		}
	}

	solution := filepath.Join(dir, t.solutionName(dir))
	info, err := os.Stat(solution)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, zerr.With(zerr.Wrap(err, "failed to stat solution file"), "path", solution)
	}
	return info.ModTime().After(state.LastWrite), nil
}

// RecordWriteIfRelevant advances the watermark to the modification time of path when
// path is a project or solution file directly inside the working directory.
// Other paths are ignored.
func (t *Tracker) RecordWriteIfRelevant(path string) error {
	dir, err := t.dir()
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
	}
	if !strings.EqualFold(filepath.Dir(abs), filepath.Clean(dir)) {
		return nil
	}

	name := filepath.Base(abs)
	if !strings.EqualFold(filepath.Ext(name), t.settings.ProjectExtension) &&
		!strings.EqualFold(name, t.solutionName(dir)) {
		return nil
	}

	info, err := os.Stat(abs)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat written file"), "path", abs)
	}

	return t.advance(info.ModTime())
}

func (t *Tracker) advance(lastWrite time.Time) error {
	state, err := t.store.Get()
	if err != nil {
		return zerr.Wrap(err, "failed to read project state")
	}
	state.LastWrite = lastWrite
	if err := t.store.Put(state); err != nil {
		return zerr.Wrap(err, "failed to store project state")
	}
	return nil
}

func (t *Tracker) solutionName(dir string) string {
	return filepath.Base(filepath.Clean(dir)) + t.settings.SolutionExtension
}

func (t *Tracker) dir() (string, error) {
	if t.workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, "failed to get working directory")
		}
		return wd, nil
	}
	abs, err := filepath.Abs(t.workDir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "dir", t.workDir)
	}
	return abs, nil
}
