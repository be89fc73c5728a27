package pipeline

import (
	"errors"
	"testing"
)

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		markdown string
		want     string
		wantErr  error
	}{
		{name: "first block", markdown: "# Hello\n\nbody", want: "Hello"},
		{name: "trailing whitespace", markdown: "# Hello   \n\nbody", want: "Hello"},
		{name: "extra spaces after marker", markdown: "#    Spaced", want: "Spaced"},
		{name: "no separator", markdown: "#Tight", want: "Tight"},
		{name: "after lower levels", markdown: "## Sub\n\n### Deeper\n\n# Main", want: "Main"},
		{name: "first of several", markdown: "# One\n\n# Two", want: "One"},
		{name: "inline markup kept", markdown: "# A **bold** title", want: "A **bold** title"},
		{name: "no level-1 heading", markdown: "## Only sub\n\ntext", wantErr: ErrNoTitleFound},
		{name: "marker mid-paragraph", markdown: "text\n# not a heading", wantErr: ErrNoTitleFound},
		{name: "empty", markdown: "", wantErr: ErrNoTitleFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractTitle(tt.markdown)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ExtractTitle() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
