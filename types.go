package mdsite

// Input is a single document to convert.
type Input struct {
	// Markdown is the document source. Required.
	Markdown string

	// Title overrides the title extracted from the first level-1 heading.
	Title string

	// CSS is appended after the converter style, so it can override it.
	CSS string
}

// Page is a converted document.
type Page struct {
	// HTML is the complete page: template, content, style and rewritten paths.
	HTML []byte

	// Title is the title placed into the template.
	Title string

	// Content is the rendered document fragment, rooted at <div>.
	Content string
}

// converterConfig holds the raw option values resolved by NewConverter.
type converterConfig struct {
	templateInput string // template name or path; empty = built-in
	styleInput    string // style name, path or CSS content; empty = no CSS
	basePath      string
	defaultTitle  string

	resolvedStyle string
}

// Option configures a Converter.
type Option func(*Converter)

// WithTemplate sets the page template by name or file path.
// A name is looked up through the asset loader; a value containing a path
// separator is read from disk. The template must contain {{ Content }}.
func WithTemplate(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.templateInput = nameOrPath
	}
}

// WithStyle sets the CSS injected into every page. Accepts a style name,
// a path to a .css file, or CSS content.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = style
	}
}

// WithBasePath sets the URL prefix applied to root-relative links, for
// sites hosted below the domain root. Empty or "/" disables rewriting.
func WithBasePath(basePath string) Option {
	return func(c *Converter) {
		c.cfg.basePath = basePath
	}
}

// WithDefaultTitle sets the title used for documents without a level-1
// heading. Without it, such documents fail with ErrNoTitleFound.
func WithDefaultTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.defaultTitle = title
	}
}

// WithAssetLoader sets a custom asset loader for templates and styles.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}
