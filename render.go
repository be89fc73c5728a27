package mdsite

import (
	"context"

	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Render converts a markdown document to an HTML fragment rooted at <div>.
// The input is used as is: line endings are not normalized, so CRLF
// documents should go through Converter instead.
// Returns ErrUnterminatedSpan, ErrEmptyLeafValue and friends wrapped with
// the failing block; no partial output is returned.
func Render(markdown string) (string, error) {
	return pipeline.NewNodeConverter().ToHTML(context.Background(), markdown)
}

// ExtractTitle returns the text of the first level-1 heading.
// Returns ErrNoTitleFound if the document has none.
func ExtractTitle(markdown string) (string, error) {
	return pipeline.ExtractTitle(markdown)
}
