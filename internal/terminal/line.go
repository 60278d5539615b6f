package terminal

import "strings"

// LineKind distinguishes the two shapes a buffered line can take.
type LineKind int

const (
	LinePlain LineKind = iota + 1
	LineRich
)

// SegmentKind tags one piece of a rich line.
type SegmentKind int

const (
	SegmentText SegmentKind = iota + 1
	SegmentHighlight
	SegmentInput
	SegmentLink
	SegmentBreak
)

// Segment is one styled piece of a rich line. URL and External only apply to links.
// External links open in a new browsing context without leaking referrer or opener;
// the terminal renderer gives them their own style.
type Segment struct {
	Kind     SegmentKind
	Text     string
	URL      string
	External bool
}

func Text(s string) Segment      { return Segment{Kind: SegmentText, Text: s} }
func Highlight(s string) Segment { return Segment{Kind: SegmentHighlight, Text: s} }
func Input(s string) Segment     { return Segment{Kind: SegmentInput, Text: s} }
func Break() Segment             { return Segment{Kind: SegmentBreak} }

// Link builds a link segment shown as label.
func Link(label, url string, external bool) Segment {
	return Segment{Kind: SegmentLink, Text: label, URL: url, External: external}
}

// Line is a unit of rendered output. It is immutable once built: the zero value is an
// empty plain line and every accessor hands out copies.
type Line struct {
	kind     LineKind
	text     string
	segments []Segment
}

// Plain builds a plain text line. Embedded "\n" characters render as line breaks.
func Plain(text string) Line {
	return Line{kind: LinePlain, text: text}
}

// Rich builds a structured line from segments.
func Rich(segments ...Segment) Line {
	return Line{kind: LineRich, segments: append([]Segment(nil), segments...)}
}

// Kind reports the variant; the zero Line counts as plain.
func (l Line) Kind() LineKind {
	if l.kind == 0 {
		return LinePlain
	}
	return l.kind
}

// Segments returns the line as segments. Plain lines are split on "\n" into text and
// break segments so renderers only need one code path.
func (l Line) Segments() []Segment {
	if l.Kind() == LineRich {
		return append([]Segment(nil), l.segments...)
	}
	parts := strings.Split(l.text, "\n")
	out := make([]Segment, 0, len(parts)*2)
	for i, part := range parts {
		if i > 0 {
			out = append(out, Break())
		}
		if part != "" {
			out = append(out, Text(part))
		}
	}
	return out
}

// String flattens the line to plain text, breaks become "\n".
func (l Line) String() string {
	if l.Kind() == LinePlain {
		return l.text
	}
	var b strings.Builder
	for _, seg := range l.segments {
		if seg.Kind == SegmentBreak {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}
