package tui

import (
	"retro-term/internal/terminal"

	"github.com/sahilm/fuzzy"
)

const maxHints = 4

// matchCommands 用模糊匹配挑选与输入相近的命令，按得分排序。
// 只用于提示与补全，不影响命令分发。
func matchCommands(input string, names []string) []string {
	query := terminal.Normalize(input)
	if query == "" {
		return nil
	}
	results := fuzzy.Find(query, names)
	out := make([]string, 0, min(len(results), maxHints))
	for _, res := range results {
		if len(out) == maxHints {
			break
		}
		out = append(out, res.Str)
	}
	return out
}
