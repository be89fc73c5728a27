// Package assets loads the page templates and CSS styles a site is built
// with.
//
// Three loaders implement AssetLoader:
//
//	EmbeddedLoader  built-in assets compiled into the binary
//	DirLoader       a site's own asset directory
//	Resolver        DirLoader first, EmbeddedLoader on not-found
//
// An asset directory has this layout:
//
//	{dir}/
//	├── styles/{name}.css
//	└── templates/{name}.html   must contain {{ Content }}
//
// Names are restricted to letters, digits, '-' and '_'. DirLoader reads
// through os.Root, which also rejects symlinks leading out of the directory.
package assets
