package assets

import (
	"embed"
	"io/fs"
)

//go:embed styles/*.css templates/*.html
var builtin embed.FS

// EmbeddedLoader loads the built-in template and styles.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	return readAsset(builtin, styleKind, name)
}

func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	return readAsset(builtin, templateKind, name)
}

// StyleNames lists the built-in style names in lexical order.
func (e *EmbeddedLoader) StyleNames() []string {
	return StyleNames()
}

// StyleNames lists the built-in style names in lexical order.
func StyleNames() []string {
	return assetNames(fs.FS(builtin), styleKind)
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
