package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/projsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.AssetSource = (*AssetLister)(nil)

// AssetLister lists the asset files found under the asset roots of a project.
type AssetLister struct {
	walker  *Walker
	root    string
	roots   []string
	ignores []string
}

// NewAssetLister creates a lister for the given asset roots, relative to root.
func NewAssetLister(walker *Walker, root string, roots, ignores []string) *AssetLister {
	return &AssetLister{
		walker:  walker,
		root:    root,
		roots:   roots,
		ignores: ignores,
	}
}

// ListAllAssetPaths returns slash-separated asset paths relative to the project root.
// Missing asset roots are skipped.
func (l *AssetLister) ListAllAssetPaths() ([]string, error) {
	var paths []string
	for _, assetRoot := range l.roots {
		dir := filepath.Join(l.root, filepath.FromSlash(assetRoot))
		if _, err := os.Stat(dir); err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat asset root"), "path", dir)
		}

		for path := range l.walker.WalkFiles(dir, l.ignores) {
			rel, err := filepath.Rel(l.root, path)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to relativize asset path"), "path", path)
			}
			paths = append(paths, filepath.ToSlash(rel))
		}
	}
	return paths, nil
}
