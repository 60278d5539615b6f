package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Result 返回 TUI 运行后的必要信息。
type Result struct {
	SessionID string
	Lines     int
}

// ProgramOptions 根据配置决定是否启用备用屏幕与鼠标滚轮。
func ProgramOptions(opts Options) []tea.ProgramOption {
	programOptions := []tea.ProgramOption{}
	if opts.Config.AltScreen && !opts.CopyableOutput {
		programOptions = append(programOptions, tea.WithAltScreen())
	}
	if opts.Config.Mouse {
		programOptions = append(programOptions, tea.WithMouseCellMotion())
	}
	return programOptions
}

// Run 封装 Bubble Tea 入口，返回最终的 UI 结果。
func Run(opts Options) (Result, error) {
	program := tea.NewProgram(New(opts), ProgramOptions(opts)...)
	m, err := program.Run()
	if err != nil {
		return Result{}, err
	}
	tuiModel, ok := m.(*Model)
	if !ok {
		return Result{}, errors.New("unexpected tui model")
	}
	return Result{
		SessionID: tuiModel.SessionID(),
		Lines:     len(tuiModel.Lines()),
	}, nil
}
