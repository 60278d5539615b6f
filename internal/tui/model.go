package tui

import (
	"strconv"
	"strings"

	"retro-term/internal/config"
	"retro-term/internal/logger"
	"retro-term/internal/terminal"
	"retro-term/internal/tui/render"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
)

type Options struct {
	Config         config.Config
	SessionID      string
	Log            *logger.LogEntry
	CopyableOutput bool
	// Clipboard 默认写系统剪贴板，测试时可替换。
	Clipboard func(string) error
}

type copyResultMsg struct {
	Lines int
	Err   error
}

type status struct {
	Text string
	Err  bool
}

type Model struct {
	input           textinput.Model
	viewport        render.Viewport
	help            help.Model
	keys            keyMap
	styles          render.Styles
	buffer          *terminal.Buffer
	dispatcher      *terminal.Dispatcher
	history         promptHistory
	hints           []string
	status          status
	copy            func(string) error
	log             *logger.LogEntry
	sessionID       string
	width           int
	height          int
	transcriptDirty bool
}

func New(opts Options) *Model {
	cfg := opts.Config
	styles := render.NewStyles(cfg.Theme)

	ti := textinput.New()
	ti.Prompt = terminal.EchoPrefix
	ti.PromptStyle = styles.Accent
	ti.TextStyle = styles.Text
	ti.Placeholder = "type a command, try help"
	ti.CharLimit = 256
	ti.Focus()

	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	log := opts.Log
	if log == nil {
		log = logger.Named("tui")
	}
	log = log.WithField("session", sessionID)

	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	var initial []terminal.Line
	if cfg.Welcome {
		initial = terminal.WelcomeLines()
	}
	buffer := terminal.NewBuffer(initial...)

	h := help.New()
	h.Styles.ShortKey = styles.Muted
	h.Styles.ShortDesc = styles.Muted
	h.Styles.ShortSeparator = styles.Muted

	m := &Model{
		input:     ti,
		viewport:  render.NewViewport(80, 12),
		help:      h,
		keys:      defaultKeyMap(),
		styles:    styles,
		buffer:    buffer,
		copy:      copyFn,
		log:       log,
		sessionID: sessionID,
	}
	buffer.OnChange(m.refreshTranscript)
	m.dispatcher = terminal.NewDispatcher(buffer, terminal.Options{Log: log})
	m.resize(80, 24)
	m.flushTranscript()
	return m
}

func (m *Model) Init() tea.Cmd {
	m.log.Info("terminal session started")
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m.finish(cmds...)
	case tea.MouseMsg:
		if cmd := m.viewport.HandleUpdate(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m.finish(cmds...)
	case copyResultMsg:
		if msg.Err != nil {
			m.log.Warnf("copy transcript failed: %v", msg.Err)
			m.status = status{Text: "copy failed: " + msg.Err.Error(), Err: true}
		} else {
			m.status = status{Text: "copied " + pluralLines(msg.Lines) + " to clipboard"}
		}
		return m.finish(cmds...)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.log.Info("terminal session ended")
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			m.submit()
			return m.finish(cmds...)
		case key.Matches(msg, m.keys.Cancel):
			m.input.Reset()
			m.history.Reset()
			m.hints = nil
			return m.finish(cmds...)
		case key.Matches(msg, m.keys.Complete):
			m.complete()
			return m.finish(cmds...)
		case key.Matches(msg, m.keys.Prev):
			if text, ok := m.history.Prev(m.input.Value()); ok {
				m.setInput(text)
			}
			return m.finish(cmds...)
		case key.Matches(msg, m.keys.Next):
			if text, ok := m.history.Next(); ok {
				m.setInput(text)
			}
			return m.finish(cmds...)
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.ScrollPageUp()
			return m.finish(cmds...)
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.ScrollPageDown()
			return m.finish(cmds...)
		case key.Matches(msg, m.keys.Copy):
			cmds = append(cmds, m.copyTranscript())
			return m.finish(cmds...)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.hints = matchCommands(m.input.Value(), m.dispatcher.Table().Names())
	cmds = append(cmds, cmd)
	return m.finish(cmds...)
}

// finish 在本轮 Update 结束前刷新脏的输出区，保证滚动基于最新内容。
func (m *Model) finish(cmds ...tea.Cmd) (tea.Model, tea.Cmd) {
	if m.transcriptDirty {
		m.flushTranscript()
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	title := m.styles.Accent.Render("A.L.E.X") + m.styles.Muted.Render(" · retro terminal")
	pane := paneStyle.
		BorderForeground(m.styles.Accent.GetForeground()).
		Width(max(20, m.width-2)).
		Render(m.viewport.View())
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		pane,
		m.input.View(),
		m.renderHints(),
		m.renderFooter(),
	)
}

// Lines returns a copy of the output buffer.
func (m *Model) Lines() []terminal.Line {
	return m.buffer.Lines()
}

// SessionID returns the id attached to every log entry of this session.
func (m *Model) SessionID() string {
	return m.sessionID
}

func (m *Model) submit() {
	raw := m.input.Value()
	m.history.Add(raw)
	outcome := m.dispatcher.Submit(raw)
	m.input.Reset()
	m.hints = nil
	if outcome != terminal.OutcomeIgnored {
		m.status = status{}
	}
}

func (m *Model) complete() {
	if len(m.hints) == 0 {
		return
	}
	m.setInput(m.hints[0])
}

func (m *Model) setInput(text string) {
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.hints = matchCommands(text, m.dispatcher.Table().Names())
}

func (m *Model) copyTranscript() tea.Cmd {
	lines := render.PlainTranscript(m.buffer.Lines())
	text := strings.Join(lines, "\n")
	write := m.copy
	return func() tea.Msg {
		return copyResultMsg{Lines: len(lines), Err: write(text)}
	}
}

func (m *Model) refreshTranscript() {
	m.transcriptDirty = true
}

func (m *Model) flushTranscript() {
	lines := render.RenderTranscript(m.buffer.Lines(), m.viewport.Width, m.styles)
	m.transcriptDirty = false
	m.viewport.SetLines(render.LinesToStrings(lines))
}

// resize 计算布局：标题 1 行，输出区边框 2 行，输入、提示、底栏各 1 行。
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	viewHeight := max(3, height-6)
	viewWidth := max(10, width-4)
	m.viewport.Resize(viewWidth, viewHeight)
	m.input.Width = max(10, width-runewidth.StringWidth(m.input.Prompt)-1)
	m.help.Width = width
	m.refreshTranscript()
}

func (m *Model) renderHints() string {
	if len(m.hints) == 0 {
		return ""
	}
	return m.styles.Muted.Render("tab → " + strings.Join(m.hints, "  "))
}

func (m *Model) renderFooter() string {
	if m.status.Text == "" {
		return m.help.View(m.keys)
	}
	text := runewidth.Truncate(m.status.Text, max(10, m.width), "…")
	if m.status.Err {
		return m.styles.Highlight.Render(text)
	}
	return m.styles.Muted.Render(text)
}

var paneStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

func pluralLines(n int) string {
	if n == 1 {
		return "1 line"
	}
	return strconv.Itoa(n) + " lines"
}
