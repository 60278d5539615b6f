package render

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// token 是折行的最小单位：一个单词或一段连续空白，记录所属 span。
type token struct {
	text  string
	span  int
	space bool
}

// wrapSpans 以词为单位按显示宽度折行，保留每个片段的样式与链接。
// 续行去掉行首空白，超宽单词按宽度硬切。
func wrapSpans(spans []Span, width int) []Line {
	if width <= 0 {
		return []Line{{Spans: dropEmpty(spans)}}
	}

	var (
		out     []Line
		cur     []Span
		lastSrc = -1
		curW    int
	)
	push := func(tok token, w int) {
		curW += w
		// 同一 span 的相邻 token 合并，避免重复的样式序列。
		if n := len(cur); n > 0 && lastSrc == tok.span {
			cur[n-1].Text += tok.text
			return
		}
		src := spans[tok.span]
		cur = append(cur, Span{Text: tok.text, Style: src.Style, Link: src.Link})
		lastSrc = tok.span
	}
	commit := func() {
		out = append(out, Line{Spans: trimTrailingSpace(cur)})
		cur = nil
		lastSrc = -1
		curW = 0
	}

	for _, tok := range tokenize(spans) {
		w := runewidth.StringWidth(tok.text)
		if tok.space {
			if curW == 0 && len(out) > 0 {
				continue
			}
			if curW+w > width {
				commit()
				continue
			}
			push(tok, w)
			continue
		}
		if curW+w <= width {
			push(tok, w)
			continue
		}
		if curW > 0 {
			commit()
		}
		if w <= width {
			push(tok, w)
			continue
		}
		pieces := breakLongWord(tok.text, width)
		for i, piece := range pieces {
			push(token{text: piece, span: tok.span}, runewidth.StringWidth(piece))
			if i < len(pieces)-1 {
				commit()
			}
		}
	}
	if len(cur) > 0 || len(out) == 0 {
		commit()
	}
	return out
}

func tokenize(spans []Span) []token {
	var out []token
	for idx, sp := range spans {
		var b strings.Builder
		space := false
		flush := func() {
			if b.Len() > 0 {
				out = append(out, token{text: b.String(), span: idx, space: space})
				b.Reset()
			}
		}
		for _, r := range sp.Text {
			isSpace := unicode.IsSpace(r)
			if isSpace != space {
				flush()
				space = isSpace
			}
			b.WriteRune(r)
		}
		flush()
	}
	return out
}

func dropEmpty(spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if sp.Text != "" {
			out = append(out, sp)
		}
	}
	return out
}

func trimTrailingSpace(spans []Span) []Span {
	for len(spans) > 0 {
		last := spans[len(spans)-1]
		trimmed := strings.TrimRightFunc(last.Text, unicode.IsSpace)
		if trimmed != "" {
			spans[len(spans)-1].Text = trimmed
			return spans
		}
		spans = spans[:len(spans)-1]
	}
	return spans
}

func breakLongWord(word string, width int) []string {
	var (
		out  []string
		b    strings.Builder
		curW int
	)
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if curW+rw > width && b.Len() > 0 {
			out = append(out, b.String())
			b.Reset()
			curW = 0
		}
		b.WriteRune(r)
		curW += rw
	}
	if b.Len() > 0 {
		out = append(out, b.String())
	}
	return out
}
