package mdsite

import (
	"errors"

	"github.com/alnah/go-mdsite/internal/assets"
)

// Names of the built-in assets.
const (
	DefaultTemplate = assets.DefaultTemplateName
	DefaultStyle    = assets.DefaultStyleName
)

// AssetLoader defines the contract for loading page templates and CSS styles.
// Implementations may load from filesystem, embedded assets, S3, database, etc.
//
// The library provides NewAssetLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom backends.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a page template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// BuiltinStyles lists the names accepted by WithStyle without a custom loader.
func BuiltinStyles() []string {
	return assets.StyleNames()
}

// AvailableStyles lists the style names loader can resolve. Loaders that
// cannot enumerate their styles report the built-in names.
func AvailableStyles(loader AssetLoader) []string {
	if l, ok := loader.(interface{ StyleNames() []string }); ok {
		return l.StyleNames()
	}
	return BuiltinStyles()
}

// NewAssetLoader creates an AssetLoader for the given base path.
// If basePath is empty, returns a loader using only embedded assets.
// If basePath is set, custom assets take precedence with fallback to embedded.
//
// The basePath directory should contain:
//   - styles/{name}.css for CSS styles
//   - templates/{name}.html for page templates
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err, nil)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter wraps the internal resolver to map its errors.
type assetLoaderAdapter struct {
	resolver *assets.Resolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.resolver.LoadStyle(name)
	return content, convertAssetError(err, ErrStyleNotFound)
}

func (a *assetLoaderAdapter) StyleNames() []string {
	return a.resolver.StyleNames()
}

func (a *assetLoaderAdapter) LoadTemplate(name string) (string, error) {
	content, err := a.resolver.LoadTemplate(name)
	return content, convertAssetError(err, ErrTemplateNotFound)
}

// convertAssetError maps internal path errors to ErrInvalidAssetPath and
// invalid names to notFound. Not-found errors are shared with the internal
// package and pass through.
func convertAssetError(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrInvalidAssetDir),
		errors.Is(err, assets.ErrAssetEscape):
		return &wrappedAssetError{sentinel: ErrInvalidAssetPath, original: err}
	case notFound != nil && errors.Is(err, assets.ErrInvalidAssetName):
		return &wrappedAssetError{sentinel: notFound, original: err}
	default:
		return err
	}
}

// wrappedAssetError preserves the original message via Error() and
// supports errors.Is() matching against the public sentinel via Unwrap().
type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
