package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/projsync/internal/adapters/fs"
	"go.trai.ch/projsync/internal/core/domain"
)

func writeFiles(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(f), 0o600))
	}
}

func TestWalker_WalkFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir,
		".git/config",
		"ignored/file",
		"src/main.cs",
		"src/main.cs.meta",
		"README.md",
	)

	var got []string
	for path := range fs.NewWalker().WalkFiles(tmpDir, []string{"ignored", "*.meta"}) {
		rel, err := filepath.Rel(tmpDir, path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}

	assert.ElementsMatch(t, []string{"README.md", "src/main.cs"}, got)
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "a.cs", "b.cs", "c.cs")

	count := 0
	for range fs.NewWalker().WalkFiles(tmpDir, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestAssetLister_ListAllAssetPaths(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"Assets/Scripts/Player.cs",
		"Assets/Scripts/Player.cs.meta",
		"Packages/com.local.tools/Editor/Tool.cs",
		"Library/ScriptAssemblies/Assembly-CSharp.dll",
	)

	lister := fs.NewAssetLister(fs.NewWalker(), root, []string{"Assets", "Packages", "Missing"}, []string{"*.meta"})
	paths, err := lister.ListAllAssetPaths()
	require.NoError(t, err)

	slices.Sort(paths)
	assert.Equal(t, []string{
		"Assets/Scripts/Player.cs",
		"Packages/com.local.tools/Editor/Tool.cs",
	}, paths)
}

func TestHasher_ComputeCatalogHash(t *testing.T) {
	entries := []domain.CatalogEntry{
		{
			BuildUnit: domain.BuildUnit{
				Name:        "Assembly-CSharp",
				SourceFiles: []string{"Assets/Player.cs"},
				CompilerOptions: domain.CompilerOptions{
					APICompatibilityLevel: domain.APICompatibilityNETStandard,
				},
			},
			OutputPath: domain.EditorOutputPath,
		},
	}
	h := fs.NewHasher()

	base := h.ComputeCatalogHash(entries, domain.DefaultGenerationFlags)
	assert.Len(t, base, 16)
	assert.Equal(t, base, h.ComputeCatalogHash(slices.Clone(entries), domain.DefaultGenerationFlags))

	t.Run("flags change the hash", func(t *testing.T) {
		assert.NotEqual(t, base, h.ComputeCatalogHash(entries, domain.FlagNone))
	})

	t.Run("output path changes the hash", func(t *testing.T) {
		changed := slices.Clone(entries)
		changed[0].OutputPath = domain.PlayerOutputPath
		assert.NotEqual(t, base, h.ComputeCatalogHash(changed, domain.DefaultGenerationFlags))
	})

	t.Run("unsafe code changes the hash", func(t *testing.T) {
		changed := slices.Clone(entries)
		changed[0].CompilerOptions.AllowUnsafeCode = true
		assert.NotEqual(t, base, h.ComputeCatalogHash(changed, domain.DefaultGenerationFlags))
	})

	t.Run("field boundaries are kept", func(t *testing.T) {
		a := []domain.CatalogEntry{{BuildUnit: domain.BuildUnit{Defines: []string{"AB"}}}}
		b := []domain.CatalogEntry{{BuildUnit: domain.BuildUnit{Defines: []string{"A", "B"}}}}
		assert.NotEqual(t,
			h.ComputeCatalogHash(a, domain.FlagNone),
			h.ComputeCatalogHash(b, domain.FlagNone),
		)
	})

	t.Run("empty catalog", func(t *testing.T) {
		assert.Len(t, h.ComputeCatalogHash(nil, domain.FlagNone), 16)
	})
}
