// Package block segments a markdown document into blocks and classifies them.
package block

import (
	"strconv"
	"strings"
)

// Separator splits a document into blocks.
const Separator = "\n\n"

// Markers recognized by the classifier.
const (
	HeadingMarker  = '#'
	QuoteMarker    = '>'
	Fence          = "```"
	MaxHeadingSize = 6
)

// bulletMarkers start an unordered list item when followed by a space.
var bulletMarkers = []string{"* ", "- "}

// Type is the kind of a block.
type Type int

// Block types.
const (
	Paragraph Type = iota
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

var typeNames = [...]string{
	Paragraph:     "paragraph",
	Heading:       "heading",
	Code:          "code",
	Quote:         "quote",
	UnorderedList: "unordered_list",
	OrderedList:   "ordered_list",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// Block is a trimmed, classified piece of a document.
// Level is the heading level (1-6) and zero for other types.
type Block struct {
	Text  string
	Type  Type
	Level int
}

// Lines splits the block text on line breaks.
func (b Block) Lines() []string {
	return strings.Split(b.Text, "\n")
}

// Split segments a document on blank lines. Blocks are trimmed and empty
// blocks dropped; order follows the source.
func Split(markdown string) []string {
	var blocks []string
	for _, part := range strings.Split(markdown, Separator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		blocks = append(blocks, part)
	}
	return blocks
}

// Parse segments and classifies a document.
func Parse(markdown string) []Block {
	texts := Split(markdown)
	blocks := make([]Block, len(texts))
	for i, text := range texts {
		blocks[i] = Classify(text)
	}
	return blocks
}

// Classify assigns a type to one trimmed block. Rules apply in priority
// order; the first match wins.
func Classify(text string) Block {
	if level := headingLevel(text); level > 0 {
		return Block{Text: text, Type: Heading, Level: level}
	}
	if len(text) > 5 && strings.HasPrefix(text, Fence) && strings.HasSuffix(text, Fence) {
		return Block{Text: text, Type: Code}
	}

	lines := strings.Split(text, "\n")
	switch {
	case everyLine(lines, isQuoteLine):
		return Block{Text: text, Type: Quote}
	case everyLine(lines, isBulletLine):
		return Block{Text: text, Type: UnorderedList}
	case isOrderedList(lines):
		return Block{Text: text, Type: OrderedList}
	}
	return Block{Text: text, Type: Paragraph}
}

// headingLevel returns the length of the leading marker run, capped at
// MaxHeadingSize, or zero if text does not start with a marker.
func headingLevel(text string) int {
	n := 0
	for n < len(text) && text[n] == HeadingMarker {
		n++
	}
	return min(n, MaxHeadingSize)
}

func everyLine(lines []string, pred func(string) bool) bool {
	for _, line := range lines {
		if !pred(line) {
			return false
		}
	}
	return true
}

func isQuoteLine(line string) bool {
	return line != "" && line[0] == QuoteMarker
}

func isBulletLine(line string) bool {
	for _, m := range bulletMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

// isOrderedList reports whether line i starts with "<i+1>. " for every line.
func isOrderedList(lines []string) bool {
	for i, line := range lines {
		if len(line) < 3 || !strings.HasPrefix(line, OrderedPrefix(i+1)) {
			return false
		}
	}
	return true
}

// OrderedPrefix returns the marker of the n-th ordered list item.
func OrderedPrefix(n int) string {
	return strconv.Itoa(n) + ". "
}

// StripHeading removes the marker run and one following space or tab.
func StripHeading(text string) string {
	text = strings.TrimLeft(text, string(HeadingMarker))
	if text != "" && (text[0] == ' ' || text[0] == '\t') {
		text = text[1:]
	}
	return text
}

// StripFence removes the fence from both ends of a code block.
func StripFence(text string) string {
	return strings.TrimSuffix(strings.TrimPrefix(text, Fence), Fence)
}
