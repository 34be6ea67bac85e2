package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/projsync/internal/adapters/prefs"
	"go.trai.ch/projsync/internal/core/domain"
)

func TestStore_DefaultWhenUnset(t *testing.T) {
	store, err := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3, store.GetInt(domain.GenerationFlagsKey, 3))
}

func TestStore_SetAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Library", "ProjectSync", "prefs.yaml")

	store1, err := prefs.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store1.SetInt(domain.GenerationFlagsKey, 67))
	require.NoError(t, store1.SetInt("other.key", 5))
	assert.Equal(t, 67, store1.GetInt(domain.GenerationFlagsKey, 3))

	store2, err := prefs.NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, 67, store2.GetInt(domain.GenerationFlagsKey, 3))
	assert.Equal(t, 5, store2.GetInt("other.key", 0))
}

func TestStore_ZeroIsStored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")

	store, err := prefs.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetInt(domain.GenerationFlagsKey, 0))

	reopened, err := prefs.NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, 0, reopened.GetInt(domain.GenerationFlagsKey, 3))
}

func TestStore_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unity_project_generation_flag: 12\n"), 0o600))

	store, err := prefs.NewStore(path)
	require.NoError(t, err)
	assert.Equal(t, 12, store.GetInt(domain.GenerationFlagsKey, 3))
}

func TestStore_EnvironmentOverride(t *testing.T) {
	t.Setenv("PROJSYNC_UNITY_PROJECT_GENERATION_FLAG", "64")

	store, err := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 64, store.GetInt(domain.GenerationFlagsKey, 3))
}

func TestStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key: [unterminated"), 0o600))

	_, err := prefs.NewStore(path)
	require.Error(t, err)
}

func TestStore_WriteFailureKeepsValue(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	store, err := prefs.NewStore(filepath.Join(blocker, "prefs.yaml"))
	require.NoError(t, err)

	// A regular file where the preferences directory should be.
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	require.Error(t, store.SetInt(domain.GenerationFlagsKey, 64))
	assert.Equal(t, 3, store.GetInt(domain.GenerationFlagsKey, 3))
}
