// Package pipeline implements the Markdown-to-HTML page pipeline.
//
// This package handles every stage between a markdown string and a
// finished page:
//   - Markdown preprocessing (BOM removal, line ending normalization)
//   - Node tree construction from classified blocks and inline spans
//   - Title extraction from the first level-1 heading
//   - Template substitution of {{ Title }} and {{ Content }}
//   - CSS injection into the page head
//   - Base path rewriting of root-relative URLs
//
// File discovery, static copying and output writing are handled by the
// command in cmd/mdsite. This separation keeps the pipeline a set of pure
// string transformations that are safe to call concurrently.
package pipeline
