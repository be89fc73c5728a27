package mdsite

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.LineEndingPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.NodeConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pipeline.TemplateInjector     = (*pipeline.TemplateInjection)(nil)
	_ AssetLoader                   = (*assetLoaderAdapter)(nil)
)

// Converter turns markdown documents into complete HTML pages.
// Create with NewConverter(); a Converter is immutable and safe for
// concurrent use.
type Converter struct {
	cfg               converterConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	cssInjector       pipeline.CSSInjector
	templateInjector  pipeline.TemplateInjector
}

// NewConverter creates a Converter with the built-in template and no CSS.
// Use options to customize behavior (e.g., WithTemplate, WithStyle, WithBasePath).
// Returns error if asset loading fails, the template has no {{ Content }}
// placeholder, or the base path is not root-relative.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		assetLoader:   assets.NewEmbeddedLoader(),
		preprocessor:  &pipeline.LineEndingPreprocessor{},
		htmlConverter: pipeline.NewNodeConverter(),
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.publicAssetLoader != nil {
		c.assetLoader = c.publicAssetLoader
	}

	base, err := pipeline.NormalizeBasePath(c.cfg.basePath)
	if err != nil {
		return nil, err
	}
	c.cfg.basePath = base

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	if c.templateInjector == nil {
		tmpl, err := c.loadTemplate()
		if err != nil {
			return nil, err
		}
		c.templateInjector, err = pipeline.NewTemplateInjection(tmpl)
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", c.templateName(), err)
		}
	}

	return c, nil
}

// Convert runs the full pipeline and returns the assembled page.
// Stages: line ending normalization, node tree rendering, title
// extraction, template substitution, CSS injection and base path rewrite.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (page *Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	content, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	title, err := c.resolveTitle(input.Title, mdContent)
	if err != nil {
		return nil, err
	}

	htmlContent, err := c.templateInjector.InjectPage(ctx, title, content)
	if err != nil {
		return nil, fmt.Errorf("applying template: %w", err)
	}

	// Converter style first (base), input CSS last (can override)
	cssContent := c.cfg.resolvedStyle
	if input.CSS != "" {
		if cssContent != "" {
			cssContent += "\n"
		}
		cssContent += input.CSS
	}
	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent, err = pipeline.RewriteRootPaths(htmlContent, c.cfg.basePath)
	if err != nil {
		return nil, fmt.Errorf("rewriting root paths: %w", err)
	}

	return &Page{
		HTML:    []byte(htmlContent),
		Title:   title,
		Content: content,
	}, nil
}

// resolveTitle picks the explicit title, then the first level-1 heading,
// then the configured default.
func (c *Converter) resolveTitle(explicit, markdown string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	title, err := pipeline.ExtractTitle(markdown)
	if errors.Is(err, pipeline.ErrNoTitleFound) && c.cfg.defaultTitle != "" {
		return c.cfg.defaultTitle, nil
	}
	if err != nil {
		return "", fmt.Errorf("extracting title: %w", err)
	}
	return title, nil
}

func (c *Converter) templateName() string {
	if c.cfg.templateInput == "" {
		return DefaultTemplate
	}
	return c.cfg.templateInput
}

// loadTemplate resolves the template input (name or path) to its content.
func (c *Converter) loadTemplate() (string, error) {
	input := c.templateName()

	if fileutil.IsFilePath(input) {
		content, err := assets.ReadFile(input, ErrTemplateNotFound)
		if err != nil {
			return "", fmt.Errorf("loading template file: %w", err)
		}
		return content, nil
	}

	content, err := c.assetLoader.LoadTemplate(input)
	if err != nil {
		return "", fmt.Errorf("loading template %q: %w", input, err)
	}
	return content, nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// Called during NewConverter() after options are applied and asset loader is configured.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	// CSS content? (contains {, may also contain url(/...) paths)
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := assets.ReadFile(input, ErrStyleNotFound)
		if err != nil {
			return fmt.Errorf("loading style file: %w", err)
		}
		c.cfg.resolvedStyle = content
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}
