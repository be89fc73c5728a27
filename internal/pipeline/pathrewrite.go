package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrInvalidBasePath indicates a base path that is not root-relative.
var ErrInvalidBasePath = errors.New("base path must start with /")

// rewriteAttrs lists the URL attributes rewritten per element.
var rewriteAttrs = map[atom.Atom]string{
	atom.A:      "href",
	atom.Link:   "href",
	atom.Img:    "src",
	atom.Script: "src",
}

// NormalizeBasePath returns basePath with exactly one leading and one
// trailing slash. An empty path becomes "/".
func NormalizeBasePath(basePath string) (string, error) {
	if basePath == "" || basePath == "/" {
		return "/", nil
	}
	if !strings.HasPrefix(basePath, "/") || strings.HasPrefix(basePath, "//") {
		return "", fmt.Errorf("%w: %q", ErrInvalidBasePath, basePath)
	}
	return "/" + strings.Trim(basePath, "/") + "/", nil
}

// RewriteRootPaths prefixes root-relative URLs with basePath so a site can
// be hosted below the domain root.
// If basePath is empty or "/", returns the HTML unchanged.
//
// Rewrites a[href], link[href], img[src] and script[src] values that start
// with a single "/". Protocol-relative URLs ("//host"), absolute URLs,
// anchors and document-relative paths are left alone.
func RewriteRootPaths(htmlContent, basePath string) (string, error) {
	base, err := NormalizeBasePath(basePath)
	if err != nil {
		return "", err
	}
	if base == "/" {
		return htmlContent, nil
	}

	// Parse HTML - detect if full document or fragment
	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc, base)

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteNode traverses the DOM and prefixes root-relative URLs.
func rewriteNode(n *html.Node, base string) {
	if n.Type == html.ElementNode {
		if key, ok := rewriteAttrs[n.DataAtom]; ok {
			for i, attr := range n.Attr {
				if attr.Key == key && isRootRelative(attr.Val) {
					n.Attr[i].Val = base + strings.TrimPrefix(attr.Val, "/")
				}
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, base)
	}
}

// isRootRelative reports whether url starts with exactly one slash.
func isRootRelative(url string) bool {
	return strings.HasPrefix(url, "/") && !strings.HasPrefix(url, "//")
}
