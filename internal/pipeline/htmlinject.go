package pipeline

import (
	"context"
	"errors"
	"strings"
)

// Template placeholders.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrTemplateMissingContent indicates a page template without a content placeholder.
var ErrTemplateMissingContent = errors.New("template has no " + ContentPlaceholder + " placeholder")

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

// TemplateInjector defines the contract for placing a page into a template.
type TemplateInjector interface {
	InjectPage(ctx context.Context, title, content string) (string, error)
}

// TemplateInjection substitutes title and content into a page template.
type TemplateInjection struct {
	tmpl string
}

// NewTemplateInjection creates a TemplateInjection from template content.
// Returns ErrTemplateMissingContent if the content placeholder is absent;
// the title placeholder is optional.
func NewTemplateInjection(tmplContent string) (*TemplateInjection, error) {
	if !strings.Contains(tmplContent, ContentPlaceholder) {
		return nil, ErrTemplateMissingContent
	}
	return &TemplateInjection{tmpl: tmplContent}, nil
}

// InjectPage replaces every placeholder occurrence in a single pass, so
// placeholder text inside the title or content is left as written.
// Values are inserted literally.
func (t *TemplateInjection) InjectPage(ctx context.Context, title, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r := strings.NewReplacer(TitlePlaceholder, title, ContentPlaceholder, content)
	return r.Replace(t.tmpl), nil
}

// ApplyTemplate is a convenience wrapper around TemplateInjection.
func ApplyTemplate(tmplContent, title, content string) (string, error) {
	t, err := NewTemplateInjection(tmplContent)
	if err != nil {
		return "", err
	}
	return t.InjectPage(context.Background(), title, content)
}
