package inline

import (
	"fmt"
	"regexp"
	"strings"
)

// Delimiters for the delimiter-based span kinds.
const (
	BoldDelimiter   = "**"
	ItalicDelimiter = "*"
	CodeDelimiter   = "`"
)

// Precompiled patterns for link-style syntax. The leading group is the
// separator: one whitespace character or the start of the text.
var (
	imagePattern = regexp.MustCompile(`(^|\s)!\[([^\[\]]*)\]\(([^()]*)\)`)
	linkPattern  = regexp.MustCompile(`(^|\s)\[([^\[\]]*)\]\(([^()]*)\)`)
)

// Ref is a (text, target) pair found by link or image extraction.
type Ref struct {
	Text   string
	Target string
}

// TextToSpans runs the full extraction pipeline over text.
// Order matters: images before links so "![..](..)" is not read as a link,
// bold before italic so "**" is not split into two "*".
func TextToSpans(text string) ([]Span, error) {
	spans := []Span{Text(text)}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)

	var err error
	for _, d := range []struct {
		delim string
		kind  Kind
	}{
		{BoldDelimiter, Bold},
		{ItalicDelimiter, Italic},
		{CodeDelimiter, Code},
	} {
		spans, err = SplitDelimiter(spans, d.delim, d.kind)
		if err != nil {
			return nil, err
		}
	}
	return spans, nil
}

// SplitDelimiter rewrites plain spans containing delim into alternating
// plain and kind spans. Non-plain spans pass through unchanged.
// Returns ErrUnterminatedSpan if a plain span has an odd delimiter count.
func SplitDelimiter(spans []Span, delim string, kind Kind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != Plain {
			out = append(out, s)
			continue
		}
		if !strings.Contains(s.Text, delim) {
			out = appendPlain(out, s.Text)
			continue
		}

		rest := s.Text
		for {
			open := strings.Index(rest, delim)
			if open < 0 {
				out = appendPlain(out, rest)
				break
			}
			inner := rest[open+len(delim):]
			end := strings.Index(inner, delim)
			if end < 0 {
				return nil, fmt.Errorf("%w: unmatched %q in %q", ErrUnterminatedSpan, delim, s.Text)
			}
			out = appendPlain(out, rest[:open])
			out = append(out, Typed(inner[:end], kind))
			rest = inner[end+len(delim):]
		}
	}
	return out, nil
}

// SplitImages extracts ![alt](src) forms from plain spans.
func SplitImages(spans []Span) []Span {
	return splitRefs(spans, imagePattern, NewImage)
}

// SplitLinks extracts [text](href) forms from plain spans.
func SplitLinks(spans []Span) []Span {
	return splitRefs(spans, linkPattern, NewLink)
}

// ExtractImages returns the (alt, src) pairs of every image in text, in order.
func ExtractImages(text string) []Ref {
	return extractRefs(text, imagePattern)
}

// ExtractLinks returns the (text, href) pairs of every link in text, in order.
func ExtractLinks(text string) []Ref {
	return extractRefs(text, linkPattern)
}

func extractRefs(text string, pattern *regexp.Regexp) []Ref {
	var refs []Ref
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		refs = append(refs, Ref{Text: m[2], Target: m[3]})
	}
	return refs
}

// splitRefs rewrites each plain span around the matches of pattern.
// The whitespace separator before a match is normalized to one space and
// kept on the preceding plain span.
func splitRefs(spans []Span, pattern *regexp.Regexp, build func(text, target string) Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != Plain {
			out = append(out, s)
			continue
		}

		matches := pattern.FindAllStringSubmatchIndex(s.Text, -1)
		if len(matches) == 0 {
			out = appendPlain(out, s.Text)
			continue
		}

		pos := 0
		for _, m := range matches {
			// m[2:4] is the separator group, empty at start of text.
			before := s.Text[pos:m[0]]
			if m[3] > m[2] {
				before += " "
			}
			out = appendPlain(out, before)
			out = append(out, build(s.Text[m[4]:m[5]], s.Text[m[6]:m[7]]))
			pos = m[1]
		}
		out = appendPlain(out, s.Text[pos:])
	}
	return out
}

// appendPlain appends a plain span unless text is empty.
func appendPlain(spans []Span, text string) []Span {
	if text == "" {
		return spans
	}
	return append(spans, Text(text))
}
