package tui

import "strings"

// promptHistory 记录本次运行中提交过的命令，供上下箭头回看；不落盘。
// cursor == len(entries) 表示当前在“最新输入”（非浏览历史）位置。
type promptHistory struct {
	entries []string
	cursor  int
	draft   string
}

// Add 记录一次提交；空输入与紧邻的重复输入不记录。
func (h *promptHistory) Add(text string) {
	text = strings.TrimSpace(text)
	if text != "" && (len(h.entries) == 0 || h.entries[len(h.entries)-1] != text) {
		h.entries = append(h.entries, text)
	}
	h.Reset()
}

func (h *promptHistory) Reset() {
	h.cursor = len(h.entries)
	h.draft = ""
}

// Prev 返回上一条记录；首次进入浏览时保存当前草稿。
func (h *promptHistory) Prev(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == len(h.entries) {
		h.draft = current
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next 返回下一条记录，越过最新一条时恢复草稿。
func (h *promptHistory) Next() (string, bool) {
	if h.cursor >= len(h.entries) {
		return "", false
	}
	h.cursor++
	if h.cursor == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.cursor], true
}
