package htmlnode

import (
	"fmt"
	"strings"
)

// ContainerTag is the tag of the root node.
const ContainerTag = "div"

// voidTags are elements rendered without a value or closing tag.
var voidTags = map[string]bool{
	"img": true,
}

// Attr is a single key="value" attribute.
type Attr struct {
	Key   string
	Value string
}

// Attributes is an ordered attribute list. Render order is slice order.
type Attributes []Attr

// Get returns the value for key and whether it was present.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// String renders the attributes as space-separated key="value" pairs.
func (a Attributes) String() string {
	if len(a) == 0 {
		return ""
	}
	parts := make([]string, len(a))
	for i, attr := range a {
		parts[i] = attr.Key + `="` + attr.Value + `"`
	}
	return strings.Join(parts, " ")
}

// Node is an HTML-renderable tree node.
// The set of implementations is closed: *Leaf, *Parent and *Container.
type Node interface {
	node()
}

// Leaf is bare text when Tag is empty, otherwise a single element
// wrapping Value.
type Leaf struct {
	Tag   string
	Value string
	Attrs Attributes
}

// Parent is an element wrapping other nodes.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    Attributes
}

// Container is the root <div> of a converted document.
type Container struct {
	Children []Node
}

func (*Leaf) node()      {}
func (*Parent) node()    {}
func (*Container) node() {}

// Text creates a bare text leaf.
func Text(value string) *Leaf {
	return &Leaf{Value: value}
}

// NewLeaf creates a leaf element.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	return &Leaf{Tag: tag, Value: value, Attrs: attrs}
}

// NewParent creates a parent element.
func NewParent(tag string, children ...Node) *Parent {
	return &Parent{Tag: tag, Children: children}
}

// Append adds block-level nodes to the container, preserving order.
func (c *Container) Append(nodes ...Node) {
	c.Children = append(c.Children, nodes...)
}

// Render returns the HTML text of n.
// Errors from any descendant abort rendering of the whole tree.
func Render(n Node) (string, error) {
	var b strings.Builder
	if err := render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

func render(b *strings.Builder, n Node) error {
	switch n := n.(type) {
	case *Leaf:
		return renderLeaf(b, n)
	case *Parent:
		return renderParent(b, n)
	case *Container:
		openTag(b, ContainerTag, nil)
		for _, child := range n.Children {
			if err := render(b, child); err != nil {
				return err
			}
		}
		closeTag(b, ContainerTag)
		return nil
	default:
		// Only a nil interface value can reach here.
		return fmt.Errorf("htmlnode: cannot render %T", n)
	}
}

func renderLeaf(b *strings.Builder, l *Leaf) error {
	if voidTags[l.Tag] {
		openTag(b, l.Tag, l.Attrs)
		return nil
	}
	if l.Value == "" {
		if l.Tag == "" {
			return ErrEmptyLeafValue
		}
		return fmt.Errorf("%w: <%s>", ErrEmptyLeafValue, l.Tag)
	}
	if l.Tag == "" {
		b.WriteString(l.Value)
		return nil
	}
	openTag(b, l.Tag, l.Attrs)
	b.WriteString(l.Value)
	closeTag(b, l.Tag)
	return nil
}

func renderParent(b *strings.Builder, p *Parent) error {
	if p.Tag == "" {
		return ErrMissingTag
	}
	if len(p.Children) == 0 {
		return fmt.Errorf("%w: <%s>", ErrEmptyChildren, p.Tag)
	}
	openTag(b, p.Tag, p.Attrs)
	for _, child := range p.Children {
		if err := render(b, child); err != nil {
			return fmt.Errorf("<%s>: %w", p.Tag, err)
		}
	}
	closeTag(b, p.Tag)
	return nil
}

func openTag(b *strings.Builder, tag string, attrs Attributes) {
	b.WriteByte('<')
	b.WriteString(tag)
	if len(attrs) > 0 {
		b.WriteByte(' ')
		b.WriteString(attrs.String())
	}
	b.WriteByte('>')
}

func closeTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}
