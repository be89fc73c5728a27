package inline

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestSplitDelimiter - Delimiter-based extraction
// ---------------------------------------------------------------------------

func TestSplitDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []Span
		delim string
		kind  Kind
		want  []Span
	}{
		{
			name:  "code in middle",
			input: []Span{Text("This is text with a `code block` word")},
			delim: CodeDelimiter,
			kind:  Code,
			want: []Span{
				Text("This is text with a "),
				Typed("code block", Code),
				Text(" word"),
			},
		},
		{
			name:  "delimiter at end",
			input: []Span{Text("This is text with a word that is *bold*")},
			delim: ItalicDelimiter,
			kind:  Bold,
			want: []Span{
				Text("This is text with a word that is "),
				Typed("bold", Bold),
			},
		},
		{
			name:  "delimiter at start omits empty plain",
			input: []Span{Text("**bold** start")},
			delim: BoldDelimiter,
			kind:  Bold,
			want: []Span{
				Typed("bold", Bold),
				Text(" start"),
			},
		},
		{
			name:  "several pairs keep remainder text",
			input: []Span{Text("the `Valar` and `Maiar` remain")},
			delim: CodeDelimiter,
			kind:  Code,
			want: []Span{
				Text("the "),
				Typed("Valar", Code),
				Text(" and "),
				Typed("Maiar", Code),
				Text(" remain"),
			},
		},
		{
			name:  "no delimiter passes through",
			input: []Span{Text("plain words")},
			delim: BoldDelimiter,
			kind:  Bold,
			want:  []Span{Text("plain words")},
		},
		{
			name:  "typed spans are not rescanned",
			input: []Span{Typed("a *b* c", Code), NewLink("x*y*", "/u")},
			delim: ItalicDelimiter,
			kind:  Italic,
			want:  []Span{Typed("a *b* c", Code), NewLink("x*y*", "/u")},
		},
		{
			name:  "empty typed span is kept",
			input: []Span{Text("a `` b")},
			delim: CodeDelimiter,
			kind:  Code,
			want:  []Span{Text("a "), Typed("", Code), Text(" b")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := SplitDelimiter(tt.input, tt.delim, tt.kind)
			if err != nil {
				t.Fatalf("SplitDelimiter() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitDelimiter() =\n  %v\nwant\n  %v", got, tt.want)
			}
		})
	}
}

func TestSplitDelimiter_Unterminated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		delim string
	}{
		{name: "single backtick", text: "a `code", delim: CodeDelimiter},
		{name: "three asterisks", text: "*a* b *c", delim: ItalicDelimiter},
		{name: "odd bold", text: "**a** **b", delim: BoldDelimiter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := SplitDelimiter([]Span{Text(tt.text)}, tt.delim, Code)
			if !errors.Is(err, ErrUnterminatedSpan) {
				t.Fatalf("SplitDelimiter(%q) error = %v, want ErrUnterminatedSpan", tt.text, err)
			}
			if got != nil {
				t.Errorf("SplitDelimiter(%q) returned partial spans %v", tt.text, got)
			}
		})
	}
}

// TestSplitDelimiter_RoundTrip checks that reinserting delimiters around
// typed spans reproduces the input.
func TestSplitDelimiter_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"a `b` c",
		"`x``y`",
		"lead `one` mid `two` tail",
		"`only`",
		strings.Repeat("w `c` ", 5000),
	}

	for _, in := range inputs {
		spans, err := SplitDelimiter([]Span{Text(in)}, CodeDelimiter, Code)
		if err != nil {
			t.Fatalf("SplitDelimiter(%.20q) unexpected error: %v", in, err)
		}

		var b strings.Builder
		for i, s := range spans {
			if s.Kind == Code {
				b.WriteString(CodeDelimiter + s.Text + CodeDelimiter)
				continue
			}
			if i > 0 && spans[i-1].Kind == Plain {
				t.Errorf("SplitDelimiter(%.20q) produced adjacent plain spans", in)
			}
			b.WriteString(s.Text)
		}
		if b.String() != in {
			t.Errorf("round trip of %.20q = %.20q", in, b.String())
		}
	}
}

// ---------------------------------------------------------------------------
// TestExtractImages / TestExtractLinks - Reference extraction
// ---------------------------------------------------------------------------

func TestExtractImages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []Ref
	}{
		{
			name: "two images",
			text: "a ![alt](u1) b ![alt2](u2)",
			want: []Ref{{Text: "alt", Target: "u1"}, {Text: "alt2", Target: "u2"}},
		},
		{
			name: "urls",
			text: "This is text with a ![rick roll](https://i.imgur.com/aKaOqIh.gif) and ![obi wan](https://i.imgur.com/fJRm4Vk.jpeg)",
			want: []Ref{
				{Text: "rick roll", Target: "https://i.imgur.com/aKaOqIh.gif"},
				{Text: "obi wan", Target: "https://i.imgur.com/fJRm4Vk.jpeg"},
			},
		},
		{
			name: "start of text",
			text: "![logo](/logo.png)",
			want: []Ref{{Text: "logo", Target: "/logo.png"}},
		},
		{
			name: "glued to word is ignored",
			text: "word![x](y)",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ExtractImages(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractImages() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	text := "This is text with a link [to boot dev](https://www.boot.dev) and [to youtube](https://www.youtube.com/@bootdotdev)"
	want := []Ref{
		{Text: "to boot dev", Target: "https://www.boot.dev"},
		{Text: "to youtube", Target: "https://www.youtube.com/@bootdotdev"},
	}

	if got := ExtractLinks(text); !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractLinks() = %v, want %v", got, want)
	}
}

func TestExtractLinks_SkipsImages(t *testing.T) {
	t.Parallel()

	if got := ExtractLinks("see ![pic](/p.png)"); got != nil {
		t.Errorf("ExtractLinks() = %v, want nil", got)
	}
}

// ---------------------------------------------------------------------------
// TestSplitImages / TestSplitLinks - Span rewriting
// ---------------------------------------------------------------------------

func TestSplitLinks(t *testing.T) {
	t.Parallel()

	input := []Span{Text("This is text with a link [to boot dev](https://www.boot.dev) and [to youtube](https://www.youtube.com/@bootdotdev)")}
	want := []Span{
		Text("This is text with a link "),
		NewLink("to boot dev", "https://www.boot.dev"),
		Text(" and "),
		NewLink("to youtube", "https://www.youtube.com/@bootdotdev"),
	}

	if got := SplitLinks(input); !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLinks() =\n  %v\nwant\n  %v", got, want)
	}
}

func TestSplitImages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []Span
		want  []Span
	}{
		{
			name:  "two images with trailing none",
			input: []Span{Text("This is text with a ![rick roll](https://i.imgur.com/aKaOqIh.gif) and ![obi wan](https://i.imgur.com/fJRm4Vk.jpeg)")},
			want: []Span{
				Text("This is text with a "),
				NewImage("rick roll", "https://i.imgur.com/aKaOqIh.gif"),
				Text(" and "),
				NewImage("obi wan", "https://i.imgur.com/fJRm4Vk.jpeg"),
			},
		},
		{
			name:  "remainder kept",
			input: []Span{Text("see ![a](b) here")},
			want:  []Span{Text("see "), NewImage("a", "b"), Text(" here")},
		},
		{
			name:  "newline separator normalized",
			input: []Span{Text("line\n![a](b)")},
			want:  []Span{Text("line "), NewImage("a", "b")},
		},
		{
			name:  "no match passes through",
			input: []Span{Text("nothing here")},
			want:  []Span{Text("nothing here")},
		},
		{
			name:  "typed span untouched",
			input: []Span{Typed(" ![a](b)", Code)},
			want:  []Span{Typed(" ![a](b)", Code)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SplitImages(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitImages() =\n  %v\nwant\n  %v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTextToSpans - Full inline pipeline
// ---------------------------------------------------------------------------

func TestTextToSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []Span
	}{
		{
			name: "every kind",
			text: "This is **text** with an *italic* word and a `code block` and an ![obi wan image](https://i.imgur.com/fJRm4Vk.jpeg) and a [link](https://boot.dev)",
			want: []Span{
				Text("This is "),
				Typed("text", Bold),
				Text(" with an "),
				Typed("italic", Italic),
				Text(" word and a "),
				Typed("code block", Code),
				Text(" and an "),
				NewImage("obi wan image", "https://i.imgur.com/fJRm4Vk.jpeg"),
				Text(" and a "),
				NewLink("link", "https://boot.dev"),
			},
		},
		{
			name: "lone image",
			text: "![LOTR image artistmonkeys](/images/rivendell.png)",
			want: []Span{NewImage("LOTR image artistmonkeys", "/images/rivendell.png")},
		},
		{
			name: "lone link",
			text: "[Back Home](/)",
			want: []Span{NewLink("Back Home", "/")},
		},
		{
			name: "bold before italic",
			text: "Some **bold** and *it*",
			want: []Span{Text("Some "), Typed("bold", Bold), Text(" and "), Typed("it", Italic)},
		},
		{
			name: "empty text",
			text: "",
			want: []Span{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := TextToSpans(tt.text)
			if err != nil {
				t.Fatalf("TextToSpans() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TextToSpans() =\n  %v\nwant\n  %v", got, tt.want)
			}
		})
	}
}

func TestTextToSpans_Unterminated(t *testing.T) {
	t.Parallel()

	_, err := TextToSpans("a `code")
	if !errors.Is(err, ErrUnterminatedSpan) {
		t.Fatalf("TextToSpans() error = %v, want ErrUnterminatedSpan", err)
	}
}
