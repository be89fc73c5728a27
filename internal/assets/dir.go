package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirLoader loads assets from a directory on disk. Every read goes through
// an os.Root, so neither names nor symlinks can reach files outside dir.
type DirLoader struct {
	dir string
}

// NewDirLoader creates a DirLoader for dir.
// Returns ErrInvalidAssetDir if dir is not an existing, readable directory.
func NewDirLoader(dir string) (*DirLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidAssetDir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetDir, err)
	}

	root, err := os.OpenRoot(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidAssetDir, abs)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetDir, err)
	}
	defer root.Close()

	if _, err := fs.ReadDir(root.FS(), "."); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidAssetDir, err)
	}
	return &DirLoader{dir: abs}, nil
}

func (d *DirLoader) LoadStyle(name string) (string, error) {
	return d.read(styleKind, name)
}

func (d *DirLoader) LoadTemplate(name string) (string, error) {
	return d.read(templateKind, name)
}

// StyleNames lists the styles found in dir/styles.
func (d *DirLoader) StyleNames() []string {
	root, err := os.OpenRoot(d.dir)
	if err != nil {
		return nil
	}
	defer root.Close()
	return assetNames(root.FS(), styleKind)
}

func (d *DirLoader) read(k kind, name string) (string, error) {
	root, err := os.OpenRoot(d.dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	defer root.Close()
	return readAsset(root.FS(), k, name)
}

var _ AssetLoader = (*DirLoader)(nil)
