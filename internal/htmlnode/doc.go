// Package htmlnode models the HTML tree produced by the markdown pipeline.
//
// A tree is made of three node kinds:
//
//	Container   root <div>, holds block-level nodes in document order
//	Parent      an element wrapping other nodes (<p>, <ul>, <li>, ...)
//	Leaf        bare text, or an element holding a single text value
//
// Node is sealed: only the types in this package implement it, and Render
// dispatches on the concrete type. Rendering inserts values and attributes
// literally; no escaping or pretty-printing is applied.
package htmlnode
