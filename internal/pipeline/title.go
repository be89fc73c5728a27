package pipeline

import (
	"errors"
	"strings"

	"github.com/alnah/go-mdsite/internal/block"
)

// ErrNoTitleFound indicates a document without a level-1 heading.
var ErrNoTitleFound = errors.New("no level-1 heading found")

// ExtractTitle returns the text of the first level-1 heading, with its
// marker removed and surrounding whitespace trimmed.
func ExtractTitle(markdown string) (string, error) {
	for _, text := range block.Split(markdown) {
		b := block.Classify(text)
		if b.Type == block.Heading && b.Level == 1 {
			return strings.TrimSpace(block.StripHeading(b.Text)), nil
		}
	}
	return "", ErrNoTitleFound
}
