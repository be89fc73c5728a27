package lint

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func findRule(issues []Issue, rule string) (Issue, bool) {
	for _, i := range issues {
		if i.Rule == rule {
			return i, true
		}
	}
	return Issue{}, false
}

// ---------------------------------------------------------------------------
// TestCheck - Unsupported constructs
// ---------------------------------------------------------------------------

func TestCheck_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		rule     string
		wantLine int // 0 skips the line assertion
	}{
		{name: "table", source: "# T\n\n| a | b |\n|---|---|\n| 1 | 2 |", rule: RuleTable, wantLine: 3},
		{name: "nested list", source: "# T\n\n* a\n  * b", rule: RuleNestedList, wantLine: 4},
		{name: "ordered list not starting at one", source: "# T\n\n3. x\n4. y", rule: RuleListMarker},
		{name: "ordered list with paren", source: "# T\n\n1) x", rule: RuleListMarker},
		{name: "plus bullet", source: "# T\n\n+ x", rule: RuleListMarker},
		{name: "reference link", source: "# T\n\nsee [x][r]\n\n[r]: /url", rule: RuleReferenceLink},
		{name: "nested emphasis", source: "# T\n\n**bold *it* x**", rule: RuleNestedEmphasis, wantLine: 3},
		{name: "setext heading", source: "Title\n=====", rule: RuleSetextHeading, wantLine: 1},
		{name: "indented code", source: "# T\n\n    code", rule: RuleIndentedCode, wantLine: 3},
		{name: "thematic break", source: "# T\n\n---", rule: RuleThematicBreak},
		{name: "html block", source: "# T\n\n<div>\nx\n</div>", rule: RuleHTML, wantLine: 3},
		{name: "strikethrough", source: "# T\n\n~~gone~~", rule: RuleStrikethrough},
		{name: "no title", source: "just text", rule: RuleNoTitle},
	}

	l := New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			issues, err := l.Check(context.Background(), []byte(tt.source))
			if err != nil {
				t.Fatalf("Check() error = %v", err)
			}
			issue, ok := findRule(issues, tt.rule)
			if !ok {
				t.Fatalf("Check() = %v, want rule %q", issues, tt.rule)
			}
			if issue.Severity != SeverityWarning {
				t.Errorf("Severity = %q, want warning", issue.Severity)
			}
			if tt.wantLine != 0 && issue.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", issue.Line, tt.wantLine)
			}
		})
	}
}

func TestCheck_CleanDocument(t *testing.T) {
	t.Parallel()

	source := "# Title\r\n\r\nSome **bold** and *italic* text with [a link](/x).\r\n\r\n" +
		"* a\r\n- b\r\n\r\n1. x\r\n2. y\r\n\r\n```\r\ncode\r\n```\r\n\r\n> quoted\r\n\r\n## Section"

	issues, err := New().Check(context.Background(), []byte(source))
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("Check() = %v, want no issues", issues)
	}
}

func TestCheck_SetextNotConfusedWithQuotedHeading(t *testing.T) {
	t.Parallel()

	issues, err := New().Check(context.Background(), []byte("# T\n\n> # Quoted"))
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if _, ok := findRule(issues, RuleSetextHeading); ok {
		t.Errorf("Check() = %v, want no setext issue", issues)
	}
}

// ---------------------------------------------------------------------------
// TestCheck - Build failures
// ---------------------------------------------------------------------------

func TestCheck_RenderError(t *testing.T) {
	t.Parallel()

	issues, err := New().Check(context.Background(), []byte("# T\n\nSome **open"))
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	issue, ok := findRule(issues, RuleRender)
	if !ok {
		t.Fatalf("Check() = %v, want render issue", issues)
	}
	if issue.Severity != SeverityError {
		t.Errorf("Severity = %q, want error", issue.Severity)
	}
	if !strings.Contains(issue.Message, "unterminated") {
		t.Errorf("Message = %q, want unterminated span", issue.Message)
	}

	r := Report{Path: "a.md", Issues: issues}
	if !r.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}

func TestCheck_SortedByLine(t *testing.T) {
	t.Parallel()

	issues, err := New().Check(context.Background(), []byte("x\n\n---\n\n+ y\n\n<p>z</p>"))
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	for i := 1; i < len(issues); i++ {
		if issues[i].Line < issues[i-1].Line {
			t.Fatalf("issues not sorted: %v", issues)
		}
	}
	if issues[0].Rule != RuleNoTitle {
		t.Errorf("first issue = %v, want document-level no-title", issues[0])
	}
}

func TestCheck_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New().Check(ctx, []byte("# T")); !errors.Is(err, context.Canceled) {
		t.Errorf("Check() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestIssue_String - Formatting
// ---------------------------------------------------------------------------

func TestIssue_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		issue Issue
		want  string
	}{
		{
			issue: Issue{Line: 4, Rule: RuleTable, Severity: SeverityWarning, Message: "tables are not supported"},
			want:  "line 4: warning [table] tables are not supported",
		},
		{
			issue: Issue{Rule: RuleRender, Severity: SeverityError, Message: "boom"},
			want:  "error [render] boom",
		},
	}

	for _, tt := range tests {
		if got := tt.issue.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
