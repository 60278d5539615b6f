package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
)

func plainSpans(texts ...string) []Span {
	out := make([]Span, 0, len(texts))
	for _, t := range texts {
		out = append(out, Span{Text: t})
	}
	return out
}

func TestWrapSpans(t *testing.T) {
	tests := []struct {
		name  string
		spans []Span
		width int
		want  []string
	}{
		{
			name:  "fits",
			spans: plainSpans("hello world"),
			width: 20,
			want:  []string{"hello world"},
		},
		{
			name:  "word boundary",
			spans: plainSpans("Azure | AWS | Python"),
			width: 11,
			want:  []string{"Azure | AWS", "| Python"},
		},
		{
			name:  "across spans",
			spans: plainSpans("type: ", "help"),
			width: 5,
			want:  []string{"type:", "help"},
		},
		{
			name:  "long word hard break",
			spans: plainSpans("abcdefghij"),
			width: 4,
			want:  []string{"abcd", "efgh", "ij"},
		},
		{
			name:  "wide runes",
			spans: plainSpans("你好世界"),
			width: 4,
			want:  []string{"你好", "世界"},
		},
		{
			name:  "no wrapping when width unset",
			spans: plainSpans("a b c"),
			width: 0,
			want:  []string{"a b c"},
		},
		{
			name:  "empty",
			spans: nil,
			width: 10,
			want:  []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinesToPlainStrings(wrapSpans(tt.spans, tt.width))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("wrapSpans mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrapSpansKeepsLinkOnEveryPiece(t *testing.T) {
	link := Span{Text: "github.com/Alex-TheLuchador", Style: lipgloss.NewStyle(), Link: "https://github.com/Alex-TheLuchador"}
	lines := wrapSpans([]Span{{Text: "GitHub: "}, link}, 12)
	if len(lines) < 2 {
		t.Fatalf("expected link to wrap, got %d lines", len(lines))
	}
	for i, line := range lines[1:] {
		for _, sp := range line.Spans {
			if sp.Link != link.Link {
				t.Fatalf("line %d span %q lost link", i+1, sp.Text)
			}
		}
	}
	for _, line := range lines {
		if line.Width() > 12 {
			t.Fatalf("line %q exceeds width", LinesToPlainStrings([]Line{line})[0])
		}
	}
}

func TestWrapSpansMergesTokensFromSameSpan(t *testing.T) {
	lines := wrapSpans(plainSpans("one two three"), 40)
	if len(lines) != 1 || len(lines[0].Spans) != 1 {
		t.Fatalf("expected a single merged span, got %+v", lines)
	}
}
