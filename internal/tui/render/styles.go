package render

import (
	"retro-term/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles 是终端各类文本的 lipgloss 样式集合。
type Styles struct {
	Text      lipgloss.Style
	Highlight lipgloss.Style
	Input     lipgloss.Style
	Link      lipgloss.Style
	External  lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
}

// NewStyles 根据主题配置构造样式。
// 外部链接在普通链接样式上加斜体，与就地打开的 mailto 区分。
func NewStyles(theme config.Theme) Styles {
	link := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Link)).Underline(true)
	return Styles{
		Text:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text)),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight)).Bold(true),
		Input:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Input)).Bold(true),
		Link:      link,
		External:  link.Italic(true),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Muted)),
		Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Bold(true),
	}
}
