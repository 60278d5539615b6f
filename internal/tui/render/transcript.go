package render

import (
	"retro-term/internal/terminal"
)

// RenderTranscript 将终端缓冲区的行渲染为按宽度折行的显示行。
// width <= 0 时不折行。
func RenderTranscript(lines []terminal.Line, width int, styles Styles) []Line {
	buf := Buffer{}
	for _, line := range lines {
		buf.WriteLines(RenderLine(line, width, styles)...)
	}
	return buf.Lines
}

// RenderLine 渲染单条终端行；SegmentBreak 开启新的显示行。
func RenderLine(line terminal.Line, width int, styles Styles) []Line {
	rows := [][]Span{nil}
	for _, seg := range line.Segments() {
		if seg.Kind == terminal.SegmentBreak {
			rows = append(rows, nil)
			continue
		}
		last := len(rows) - 1
		rows[last] = append(rows[last], segmentSpan(seg, styles))
	}

	out := make([]Line, 0, len(rows))
	for _, spans := range rows {
		out = append(out, wrapSpans(spans, width)...)
	}
	return out
}

func segmentSpan(seg terminal.Segment, styles Styles) Span {
	switch seg.Kind {
	case terminal.SegmentHighlight:
		return Span{Text: seg.Text, Style: styles.Highlight}
	case terminal.SegmentInput:
		return Span{Text: seg.Text, Style: styles.Input}
	case terminal.SegmentLink:
		style := styles.Link
		if seg.External {
			style = styles.External
		}
		return Span{Text: seg.Text, Style: style, Link: seg.URL}
	default:
		return Span{Text: seg.Text, Style: styles.Text}
	}
}

// PlainTranscript 返回不折行、无样式的文本行，用于复制与非交互输出。
func PlainTranscript(lines []terminal.Line) []string {
	return LinesToPlainStrings(RenderTranscript(lines, 0, Styles{}))
}
