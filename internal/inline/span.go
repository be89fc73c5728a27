// Package inline splits markdown text into typed spans.
//
// Extraction runs one syntax form at a time over a span list: images, then
// links, then bold, italic and code. Typed spans produced by an earlier
// pass are never scanned again.
package inline

import (
	"fmt"

	"github.com/alnah/go-mdsite/internal/htmlnode"
)

// Kind identifies the inline syntax a span came from.
type Kind int

// Span kinds.
const (
	Plain Kind = iota
	Bold
	Italic
	Code
	Link
	Image
)

var kindNames = [...]string{
	Plain:  "plain",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Span is a fragment of inline text. Target is set for Link and Image only.
type Span struct {
	Text   string
	Kind   Kind
	Target string
}

// Text creates a plain span.
func Text(s string) Span {
	return Span{Text: s, Kind: Plain}
}

// Typed creates a span of a delimiter-based kind (bold, italic, code).
func Typed(s string, kind Kind) Span {
	return Span{Text: s, Kind: kind}
}

// NewLink creates a link span.
func NewLink(text, target string) Span {
	return Span{Text: text, Kind: Link, Target: target}
}

// NewImage creates an image span. Text is the alt text.
func NewImage(alt, target string) Span {
	return Span{Text: alt, Kind: Image, Target: target}
}

func (s Span) String() string {
	if s.Target != "" {
		return fmt.Sprintf("Span(%q, %s, %q)", s.Text, s.Kind, s.Target)
	}
	return fmt.Sprintf("Span(%q, %s)", s.Text, s.Kind)
}

// ToNode maps a span to the leaf node that renders it.
func ToNode(s Span) (htmlnode.Node, error) {
	switch s.Kind {
	case Plain:
		return htmlnode.Text(s.Text), nil
	case Bold:
		return htmlnode.NewLeaf("b", s.Text), nil
	case Italic:
		return htmlnode.NewLeaf("i", s.Text), nil
	case Code:
		return htmlnode.NewLeaf("code", s.Text), nil
	case Link:
		return htmlnode.NewLeaf("a", s.Text, htmlnode.Attr{Key: "href", Value: s.Target}), nil
	case Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr{Key: "src", Value: s.Target},
			htmlnode.Attr{Key: "alt", Value: s.Text},
		), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, s.Kind)
	}
}

// ToNodes maps spans to leaf nodes, preserving order.
func ToNodes(spans []Span) ([]htmlnode.Node, error) {
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		n, err := ToNode(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
