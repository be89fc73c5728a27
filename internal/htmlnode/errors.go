package htmlnode

import "errors"

// Sentinel errors for node rendering.
var (
	// ErrMissingTag indicates a Parent without a tag.
	ErrMissingTag = errors.New("parent node has no tag")

	// ErrEmptyChildren indicates a Parent with no children.
	ErrEmptyChildren = errors.New("parent node has no children")

	// ErrEmptyLeafValue indicates a non-void Leaf with an empty value.
	ErrEmptyLeafValue = errors.New("leaf node has no value")
)
