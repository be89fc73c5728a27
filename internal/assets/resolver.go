package assets

import (
	"errors"
	"slices"
)

// Resolver looks assets up in a site's asset directory first and falls
// back to the built-in assets when a name is not found there.
type Resolver struct {
	custom   *DirLoader // nil when no directory is configured
	embedded *EmbeddedLoader
}

// NewResolver creates a Resolver. An empty dir means built-in assets only.
func NewResolver(dir string) (*Resolver, error) {
	r := &Resolver{embedded: NewEmbeddedLoader()}
	if dir == "" {
		return r, nil
	}
	custom, err := NewDirLoader(dir)
	if err != nil {
		return nil, err
	}
	r.custom = custom
	return r, nil
}

func (r *Resolver) LoadStyle(name string) (string, error) {
	return r.load(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

func (r *Resolver) LoadTemplate(name string) (string, error) {
	return r.load(func(l AssetLoader) (string, error) { return l.LoadTemplate(name) })
}

// StyleNames merges custom and built-in style names.
func (r *Resolver) StyleNames() []string {
	names := r.embedded.StyleNames()
	if r.custom != nil {
		names = append(names, r.custom.StyleNames()...)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// load only falls back on not-found. Invalid names, unreadable files and
// escaping symlinks are reported as is.
func (r *Resolver) load(fn func(AssetLoader) (string, error)) (string, error) {
	if r.custom == nil {
		return fn(r.embedded)
	}
	content, err := fn(r.custom)
	if err == nil || !isNotFound(err) {
		return content, err
	}
	return fn(r.embedded)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}

var _ AssetLoader = (*Resolver)(nil)
