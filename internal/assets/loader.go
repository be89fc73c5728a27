package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// Names of the built-in assets.
const (
	DefaultTemplateName = "default"
	DefaultStyleName    = "default"
)

// Sentinel errors for asset loading.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidAssetDir  = errors.New("invalid asset directory")
	ErrAssetRead        = errors.New("failed to read asset")
	// ErrAssetEscape reports a symlink inside the asset directory that
	// points outside of it.
	ErrAssetEscape = errors.New("asset escapes its directory")
)

// AssetLoader loads CSS styles and page templates by name.
type AssetLoader interface {
	// LoadStyle returns styles/{name}.css.
	LoadStyle(name string) (string, error)
	// LoadTemplate returns templates/{name}.html.
	LoadTemplate(name string) (string, error)
}

// kind describes where one family of assets lives.
type kind struct {
	dir      string
	ext      string
	notFound error
}

var (
	styleKind    = kind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
	templateKind = kind{dir: "templates", ext: ".html", notFound: ErrTemplateNotFound}
)

// checkName accepts letters, digits, '-' and '_'. Anything else could
// change the directory or the extension of the resolved file.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	bad := strings.ContainsFunc(name, func(r rune) bool {
		return !(r == '-' || r == '_' ||
			('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9'))
	})
	if bad {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// readAsset reads name of the given kind from fsys.
func readAsset(fsys fs.FS, k kind, name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	p := path.Join(k.dir, name+k.ext)

	content, err := fs.ReadFile(fsys, p)
	switch {
	case err == nil:
		return string(content), nil
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", k.notFound, name)
	case isSymlink(fsys, p):
		return "", fmt.Errorf("%w: %s", ErrAssetEscape, p)
	default:
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
}

func isSymlink(fsys fs.FS, p string) bool {
	info, err := fs.Lstat(fsys, p)
	return err == nil && info.Mode()&fs.ModeSymlink != 0
}

// assetNames lists the asset names of the given kind in fsys, sorted.
func assetNames(fsys fs.FS, k kind) []string {
	matches, _ := fs.Glob(fsys, k.dir+"/*"+k.ext)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSuffix(path.Base(m), k.ext)
		if checkName(name) == nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
