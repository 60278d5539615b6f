package render

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Viewport 包装 bubbles viewport：内容每次更新后都滚动到底部。
type Viewport struct {
	viewport.Model
	lastLines []string
}

// NewViewport 创建视口；Bubble Tea v1 使用默认渲染器，不启用高性能命令路径。
func NewViewport(width, height int) Viewport {
	return Viewport{Model: viewport.New(width, height)}
}

// Resize 更新宽高；宽度变化时清空行缓存，强制下次全量更新。
func (v *Viewport) Resize(width, height int) {
	if v == nil {
		return
	}
	if v.Width != width {
		v.lastLines = nil
	}
	v.Width = width
	v.Height = height
}

// HandleUpdate 代理 bubbles 的 Update（鼠标滚轮等），保持内部状态。
func (v *Viewport) HandleUpdate(msg tea.Msg) tea.Cmd {
	if v == nil {
		return nil
	}
	var cmd tea.Cmd
	v.Model, cmd = v.Model.Update(msg)
	return cmd
}

// SetLines 更新内容并跳转到最大滚动偏移，确保滚动基于更新后的内容。
func (v *Viewport) SetLines(lines []string) {
	if v == nil {
		return
	}
	if !slices.Equal(lines, v.lastLines) || v.lastLines == nil {
		v.lastLines = append([]string{}, lines...)
		v.SetContent(strings.Join(lines, "\n"))
	}
	v.GotoBottom()
}

// ScrollPageDown 下翻一页。
func (v *Viewport) ScrollPageDown() {
	if v != nil {
		v.ViewDown()
	}
}

// ScrollPageUp 上翻一页。
func (v *Viewport) ScrollPageUp() {
	if v != nil {
		v.ViewUp()
	}
}
