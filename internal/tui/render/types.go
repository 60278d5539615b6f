package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Span 表示一段文本及其样式；Link 非空时渲染为 OSC 8 超链接。
type Span struct {
	Text  string
	Style lipgloss.Style
	Link  string
}

// Line 由多个 Span 组成，对应终端中的一行。
type Line struct {
	Spans []Span
}

// Width 返回行的显示宽度。
func (l Line) Width() int {
	w := 0
	for _, sp := range l.Spans {
		w += runewidth.StringWidth(sp.Text)
	}
	return w
}

// Buffer 收集渲染结果，按行存储。
type Buffer struct {
	Lines []Line
}

// WriteLines 追加多行。
func (b *Buffer) WriteLines(lines ...Line) {
	if b == nil {
		return
	}
	b.Lines = append(b.Lines, lines...)
}

// LinesToStrings 将样式化的行转换为字符串列表。
func LinesToStrings(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		var b strings.Builder
		for _, sp := range line.Spans {
			text := sp.Style.Render(sp.Text)
			if sp.Link != "" {
				text = termenv.Hyperlink(sp.Link, text)
			}
			b.WriteString(text)
		}
		out = append(out, b.String())
	}
	return out
}

// LinesToPlainStrings 去除样式与超链接，仅保留文本。
func LinesToPlainStrings(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		var b strings.Builder
		for _, sp := range line.Spans {
			b.WriteString(sp.Text)
		}
		out = append(out, b.String())
	}
	return out
}
