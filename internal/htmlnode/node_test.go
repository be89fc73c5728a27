package htmlnode

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRender_Leaf - Leaf rendering
// ---------------------------------------------------------------------------

func TestRender_Leaf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *Leaf
		want string
	}{
		{
			name: "bare text",
			node: Text("Normal text"),
			want: "Normal text",
		},
		{
			name: "paragraph",
			node: NewLeaf("p", "This is a paragraph of text."),
			want: "<p>This is a paragraph of text.</p>",
		},
		{
			name: "anchor with attribute",
			node: NewLeaf("a", "Click me!", Attr{Key: "href", Value: "https://www.google.com"}),
			want: `<a href="https://www.google.com">Click me!</a>`,
		},
		{
			name: "attributes keep insertion order",
			node: NewLeaf("span", "x", Attr{Key: "thing", Value: "value"}, Attr{Key: "thing2", Value: "value2"}),
			want: `<span thing="value" thing2="value2">x</span>`,
		},
		{
			name: "image is void",
			node: NewLeaf("img", "", Attr{Key: "src", Value: "/a.png"}, Attr{Key: "alt", Value: "alt text"}),
			want: `<img src="/a.png" alt="alt text">`,
		},
		{
			name: "value inserted literally",
			node: NewLeaf("code", "a < b && c"),
			want: "<code>a < b && c</code>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(tt.node)
			if err != nil {
				t.Fatalf("Render() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_LeafEmptyValue(t *testing.T) {
	t.Parallel()

	for _, leaf := range []*Leaf{Text(""), NewLeaf("b", "")} {
		_, err := Render(leaf)
		if !errors.Is(err, ErrEmptyLeafValue) {
			t.Errorf("Render(%+v) error = %v, want ErrEmptyLeafValue", leaf, err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRender_Parent - Parent rendering
// ---------------------------------------------------------------------------

func TestRender_Parent(t *testing.T) {
	t.Parallel()

	node := NewParent("p",
		NewLeaf("b", "Bold text"),
		Text("Normal text"),
		NewLeaf("i", "italic text"),
		Text("Normal text"),
	)

	got, err := Render(node)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	want := "<p><b>Bold text</b>Normal text<i>italic text</i>Normal text</p>"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_ParentNested(t *testing.T) {
	t.Parallel()

	node := NewParent("h1", NewParent("p", NewLeaf("b", "Bold text")))

	got, err := Render(node)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if want := "<h1><p><b>Bold text</b></p></h1>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_ParentAttributes(t *testing.T) {
	t.Parallel()

	node := &Parent{
		Tag:      "ul",
		Children: []Node{NewParent("li", Text("one"))},
		Attrs:    Attributes{{Key: "class", Value: "list"}},
	}

	got, err := Render(node)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if want := `<ul class="list"><li>one</li></ul>`; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_ParentErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		node    Node
		wantErr error
	}{
		{
			name:    "missing tag",
			node:    NewParent("", Text("x")),
			wantErr: ErrMissingTag,
		},
		{
			name:    "no children",
			node:    NewParent("ul"),
			wantErr: ErrEmptyChildren,
		},
		{
			name:    "child error propagates",
			node:    NewParent("ul", NewParent("li", NewLeaf("b", ""))),
			wantErr: ErrEmptyLeafValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Render(tt.node)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Render() error = %v, want %v", err, tt.wantErr)
			}
			if got != "" {
				t.Errorf("Render() returned partial output %q", got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRender_Container - Root rendering
// ---------------------------------------------------------------------------

func TestRender_Container(t *testing.T) {
	t.Parallel()

	root := &Container{}
	root.Append(NewParent("h1", Text("Title")))
	root.Append(NewParent("p", Text("Body")))

	got, err := Render(root)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if want := "<div><h1>Title</h1><p>Body</p></div>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_ContainerEmpty(t *testing.T) {
	t.Parallel()

	got, err := Render(&Container{})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if got != "<div></div>" {
		t.Errorf("Render() = %q, want %q", got, "<div></div>")
	}
}

func TestAttributes_Get(t *testing.T) {
	t.Parallel()

	attrs := Attributes{{Key: "src", Value: "u"}, {Key: "alt", Value: "a"}}

	if v, ok := attrs.Get("alt"); !ok || v != "a" {
		t.Errorf("Get(alt) = %q, %v; want %q, true", v, ok, "a")
	}
	if _, ok := attrs.Get("href"); ok {
		t.Error("Get(href) reported present for missing key")
	}
}
