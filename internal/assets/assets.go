package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ReadFile reads a template or style given by path rather than by name.
// A missing file is reported as notFound so callers match it the same way
// as a missing named asset.
func ReadFile(path string, notFound error) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	switch {
	case err == nil:
		return string(content), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %s", notFound, path)
	default:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
}
