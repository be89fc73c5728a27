package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-mdsite/internal/block"
	"github.com/alnah/go-mdsite/internal/htmlnode"
	"github.com/alnah/go-mdsite/internal/inline"
)

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// NodeConverter converts Markdown to HTML by building and rendering a node tree.
type NodeConverter struct{}

// NewNodeConverter creates a NodeConverter.
func NewNodeConverter() *NodeConverter {
	return &NodeConverter{}
}

// ToHTML converts Markdown content to an HTML fragment rooted at <div>.
// The conversion is synchronous; ctx is only checked before starting.
func (c *NodeConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	root, err := MarkdownToNode(content)
	if err != nil {
		return "", err
	}
	return htmlnode.Render(root)
}

// MarkdownToNode builds the node tree of a document. Blocks become children
// of the root container in source order. The first error aborts the
// conversion and no tree is returned.
func MarkdownToNode(markdown string) (*htmlnode.Container, error) {
	root := &htmlnode.Container{}
	for i, b := range block.Parse(markdown) {
		n, err := blockToNode(b)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, b.Type, err)
		}
		root.Append(n)
	}
	return root, nil
}

func blockToNode(b block.Block) (htmlnode.Node, error) {
	switch b.Type {
	case block.Heading:
		return textToParent(fmt.Sprintf("h%d", b.Level), block.StripHeading(b.Text))
	case block.Code:
		code, err := textToParent("code", block.StripFence(b.Text))
		if err != nil {
			return nil, err
		}
		return htmlnode.NewParent("pre", code), nil
	case block.Quote:
		var children []htmlnode.Node
		for _, line := range b.Lines() {
			nodes, err := textToNodes(line[1:])
			if err != nil {
				return nil, err
			}
			children = append(children, nodes...)
		}
		return htmlnode.NewParent("blockquote", children...), nil
	case block.UnorderedList:
		return listToParent("ul", b.Lines(), func(_ int, line string) string {
			return line[1:]
		})
	case block.OrderedList:
		return listToParent("ol", b.Lines(), func(i int, line string) string {
			return strings.TrimPrefix(line, block.OrderedPrefix(i+1))
		})
	default:
		return textToParent("p", b.Text)
	}
}

// listToParent wraps each line, with its marker removed by strip, in <li>.
func listToParent(tag string, lines []string, strip func(i int, line string) string) (htmlnode.Node, error) {
	items := make([]htmlnode.Node, 0, len(lines))
	for i, line := range lines {
		li, err := textToParent("li", strip(i, line))
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return htmlnode.NewParent(tag, items...), nil
}

func textToParent(tag, text string) (*htmlnode.Parent, error) {
	nodes, err := textToNodes(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, nodes...), nil
}

func textToNodes(text string) ([]htmlnode.Node, error) {
	spans, err := inline.TextToSpans(text)
	if err != nil {
		return nil, err
	}
	return inline.ToNodes(spans)
}
