// Package mdsite converts markdown documents into HTML pages for a static site.
//
// # Quick Start
//
// Render a document fragment:
//
//	html, err := mdsite.Render("# Hello\n\nSome **bold** text.")
//	// <div><h1>Hello</h1><p>Some <b>bold</b> text.</p></div>
//
// Build a full page with a template and style:
//
//	conv, err := mdsite.NewConverter(
//	    mdsite.WithStyle("default"),
//	    mdsite.WithBasePath("/docs"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	page, err := conv.Convert(ctx, mdsite.Input{Markdown: content})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", page.HTML, 0644)
//
// # Markdown Dialect
//
// Documents are split into blocks on blank lines. Each block is one of:
// heading (# to ######), fenced code (```), quote (every line starts with >),
// unordered list (every line starts with "* " or "- "), ordered list
// (lines numbered "1. ", "2. ", ...) or paragraph.
//
// Inside blocks, inline markup covers **bold**, *italic*, `code`,
// [links](url) and ![images](url). Nesting, escaping, reference links,
// tables and nested lists are not supported; use `mdsite lint` to find them.
//
// # Conversion Pipeline
//
//  1. Line ending normalization
//  2. Block segmentation and classification
//  3. Inline span extraction and node tree assembly
//  4. Rendering to an HTML fragment
//  5. Title extraction from the first level-1 heading
//  6. Template substitution ({{ Title }}, {{ Content }})
//  7. CSS injection and base path rewriting
//
// # Custom Assets
//
// Override the built-in template and styles using AssetLoader:
//
//	loader, err := mdsite.NewAssetLoader("/path/to/assets")
//	conv, err := mdsite.NewConverter(mdsite.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom.html
package mdsite
