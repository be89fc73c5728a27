// Package lint reports markdown constructs that the mdsite dialect does not
// support, along with documents that would fail to build.
//
// Documents are parsed with goldmark's CommonMark and GFM grammar, which
// recognizes far more than the site renderer does. Anything goldmark finds
// that the renderer would silently flatten into a paragraph is reported as
// a warning. Documents the renderer rejects outright are reported as errors.
package lint

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Severity classifies an issue.
type Severity string

// Severities.
const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Rule names.
const (
	RuleTable          = "table"
	RuleNestedList     = "nested-list"
	RuleListMarker     = "list-marker"
	RuleReferenceLink  = "reference-link"
	RuleNestedEmphasis = "nested-emphasis"
	RuleSetextHeading  = "setext-heading"
	RuleIndentedCode   = "indented-code"
	RuleThematicBreak  = "thematic-break"
	RuleHTML           = "html"
	RuleAutolink       = "autolink"
	RuleStrikethrough  = "strikethrough"
	RuleTaskList       = "task-list"
	RuleNoTitle        = "no-title"
	RuleRender         = "render"
)

// Issue is a single finding. Line is 1-based; 0 means the whole document.
type Issue struct {
	Line     int      `json:"line"`
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	if i.Line == 0 {
		return fmt.Sprintf("%s [%s] %s", i.Severity, i.Rule, i.Message)
	}
	return fmt.Sprintf("line %d: %s [%s] %s", i.Line, i.Severity, i.Rule, i.Message)
}

// Report groups the issues found in one file.
type Report struct {
	Path   string  `json:"path"`
	Issues []Issue `json:"issues"`
}

// HasErrors reports whether any issue would fail the build.
func (r Report) HasErrors() bool {
	return slices.ContainsFunc(r.Issues, func(i Issue) bool {
		return i.Severity == SeverityError
	})
}

// Linter checks documents. Safe for concurrent use.
type Linter struct {
	md            goldmark.Markdown
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
}

// New creates a Linter.
func New() *Linter {
	return &Linter{
		md:            goldmark.New(goldmark.WithExtensions(extension.GFM)),
		preprocessor:  &pipeline.LineEndingPreprocessor{},
		htmlConverter: pipeline.NewNodeConverter(),
	}
}

// Check returns the issues found in source, ordered by line.
func (l *Linter) Check(ctx context.Context, source []byte) ([]Issue, error) {
	md := l.preprocessor.PreprocessMarkdown(ctx, string(source))
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src := []byte(md)

	var issues []Issue

	if _, err := l.htmlConverter.ToHTML(ctx, md); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		issues = append(issues, Issue{Rule: RuleRender, Severity: SeverityError, Message: err.Error()})
	}
	if _, err := pipeline.ExtractTitle(md); err != nil {
		issues = append(issues, Issue{
			Rule:     RuleNoTitle,
			Severity: SeverityWarning,
			Message:  "no level-1 heading; the page needs an explicit or default title",
		})
	}

	pc := parser.NewContext()
	doc := l.md.Parser().Parse(text.NewReader(src), parser.WithContext(pc))

	w := &walker{src: src}
	if err := ast.Walk(doc, w.visit); err != nil {
		return nil, err
	}
	issues = append(issues, w.issues...)

	for _, ref := range pc.References() {
		issues = append(issues, Issue{
			Line:     lineOfText(src, []byte("["+string(ref.Label())+"]:")),
			Rule:     RuleReferenceLink,
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("reference definition [%s] is not supported; use inline links", ref.Label()),
		})
	}

	slices.SortStableFunc(issues, func(a, b Issue) int {
		return a.Line - b.Line
	})
	return issues, nil
}

type walker struct {
	src    []byte
	issues []Issue
}

func (w *walker) add(n ast.Node, rule, msg string) {
	w.issues = append(w.issues, Issue{
		Line:     w.line(n),
		Rule:     rule,
		Severity: SeverityWarning,
		Message:  msg,
	})
}

func (w *walker) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	switch node := n.(type) {
	case *east.Table:
		w.add(n, RuleTable, "tables are not supported")
		return ast.WalkSkipChildren, nil
	case *east.Strikethrough:
		w.add(n, RuleStrikethrough, "strikethrough is not supported")
	case *east.TaskCheckBox:
		w.add(n, RuleTaskList, "task list checkboxes are not supported")
	case *ast.List:
		w.checkList(node)
	case *ast.Emphasis:
		if hasEmphasisAncestor(node) {
			w.add(n, RuleNestedEmphasis, "nested emphasis is not supported")
		}
	case *ast.Heading:
		if w.isSetext(node) {
			w.add(n, RuleSetextHeading, "underlined headings are not supported; use #")
		}
	case *ast.CodeBlock:
		w.add(n, RuleIndentedCode, "indented code is not supported; use ``` fences")
	case *ast.ThematicBreak:
		w.add(n, RuleThematicBreak, "horizontal rules are not supported")
	case *ast.HTMLBlock, *ast.RawHTML:
		w.add(n, RuleHTML, "raw HTML is rendered as text")
	case *ast.AutoLink:
		w.add(n, RuleAutolink, "bare links are not linked; use [text](url)")
	}
	return ast.WalkContinue, nil
}

func (w *walker) checkList(list *ast.List) {
	if _, ok := list.Parent().(*ast.ListItem); ok {
		w.add(list, RuleNestedList, "nested lists are not supported")
	}
	if list.IsOrdered() {
		if list.Marker != '.' || list.Start != 1 {
			w.add(list, RuleListMarker, `ordered lists must be numbered "1. ", "2. ", ...`)
		}
		return
	}
	if list.Marker == '+' {
		w.add(list, RuleListMarker, `unordered lists must use "* " or "- "`)
	}
}

// isSetext reports whether no # marker precedes the heading text on its
// first line. Container markers (>, list bullets) may.
func (w *walker) isSetext(h *ast.Heading) bool {
	if h.Lines().Len() == 0 {
		return false
	}
	start := h.Lines().At(0).Start
	lineStart := bytes.LastIndexByte(w.src[:start], '\n') + 1
	return bytes.IndexByte(w.src[lineStart:start], '#') < 0
}

func (w *walker) line(n ast.Node) int {
	for cur := n; cur != nil; cur = cur.Parent() {
		if off, ok := offsetOf(cur); ok {
			return 1 + bytes.Count(w.src[:off], []byte("\n"))
		}
	}
	return 0
}

// offsetOf returns the source offset of the first text reachable from n.
// Inline nodes carry no lines, so only text segments and block lines count.
func offsetOf(n ast.Node) (int, bool) {
	if t, ok := n.(*ast.Text); ok {
		return t.Segment.Start, true
	}
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start, true
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if off, ok := offsetOf(c); ok {
			return off, true
		}
	}
	return 0, false
}

func hasEmphasisAncestor(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if _, ok := p.(*ast.Emphasis); ok {
			return true
		}
	}
	return false
}

func lineOfText(src, needle []byte) int {
	idx := bytes.Index(src, needle)
	if idx < 0 {
		return 0
	}
	return 1 + bytes.Count(src[:idx], []byte("\n"))
}
