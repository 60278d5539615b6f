package terminal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlainSegmentsSplitOnNewlines(t *testing.T) {
	got := Plain("a\n\nb").Segments()
	want := []Segment{Text("a"), Break(), Break(), Text("b")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Segments mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroLineIsEmptyPlain(t *testing.T) {
	var l Line
	if l.Kind() != LinePlain || l.String() != "" || len(l.Segments()) != 0 {
		t.Fatalf("zero line should be an empty plain line")
	}
}

func TestRichLineIsImmutable(t *testing.T) {
	segs := []Segment{Text("hi "), Highlight("there")}
	l := Rich(segs...)
	segs[1] = Text("mutated")

	got := l.Segments()
	got[0] = Text("also mutated")

	if l.String() != "hi there" {
		t.Fatalf("rich line changed after construction: %q", l.String())
	}
}

func TestWelcomeLinesHighlights(t *testing.T) {
	var highlights []string
	for _, line := range WelcomeLines() {
		for _, seg := range line.Segments() {
			if seg.Kind == SegmentHighlight {
				highlights = append(highlights, seg.Text)
			}
		}
	}
	want := []string{"A.L.E.X", "Alex Hernandez", "Data and AI Systems Engineer", "help"}
	if diff := cmp.Diff(want, highlights); diff != "" {
		t.Fatalf("highlights mismatch (-want +got):\n%s", diff)
	}
}
