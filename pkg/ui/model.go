package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agenthands/nlex/pkg/lexer"
)

// Model is the interactive tokenizer: source goes into the editor, the
// live token sequence shows in the viewport below it. Tokens refresh on
// every keystroke.
type Model struct {
	editor      textarea.Model
	tokenView   viewport.Model
	help        help.Model
	highlighter *Highlighter
	scanner     *lexer.Scanner

	width      int
	height     int
	showHelp   bool
	tokenCount int
	keys       keyMap
}

func NewModel() Model {
	ta := textarea.New()
	ta.Placeholder = "Type source to tokenize..."
	ta.CharLimit = 5000
	ta.ShowLineNumbers = true
	ta.SetHeight(6)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(bgLight)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(textMuted)
	ta.FocusedStyle.Text = lipgloss.NewStyle().Foreground(textPrimary)
	ta.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(textMuted)

	vp := viewport.New(80, 12)
	vp.Style = tokenViewStyle

	return Model{
		editor:      ta,
		tokenView:   vp,
		help:        help.New(),
		highlighter: NewHighlighter(),
		scanner:     lexer.NewScanner(nil),
		keys:        keys,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			m.editor.SetValue("")

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)

	m.tokenView, cmd = m.tokenView.Update(msg)
	cmds = append(cmds, cmd)

	m.refreshTokens()

	return m, tea.Batch(cmds...)
}

// refreshTokens re-scans the editor contents and rebuilds the token
// view. The scanner instance is reused across keystrokes via Reset.
func (m *Model) refreshTokens() {
	m.scanner.Reset([]byte(m.editor.Value()))
	tokens := m.scanner.Tokenize()
	m.tokenCount = len(tokens)
	if len(tokens) == 0 {
		m.tokenView.SetContent(lipgloss.NewStyle().Foreground(textMuted).Render("(no tokens)"))
		return
	}
	m.tokenView.SetContent(m.highlighter.Tokens(tokens))
}

func (m *Model) updateLayout() {
	width := m.width - 6
	if width < 20 {
		width = 20
	}
	m.editor.SetWidth(width)
	m.tokenView.Width = width

	viewHeight := m.height - m.editor.Height() - 8
	if viewHeight < 4 {
		viewHeight = 4
	}
	m.tokenView.Height = viewHeight
}

func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render("nlex — interactive tokenizer"))
	sections = append(sections, editorStyle.Render(m.editor.View()))
	sections = append(sections, m.tokenView.View())
	sections = append(sections, statusBarStyle.Render(fmt.Sprintf(" %d token(s) ", m.tokenCount)))

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	} else {
		sections = append(sections, m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) renderHelp() string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Render(m.help.FullHelpView(m.keys.FullHelp()))
}

// Run starts the interactive tokenizer and blocks until it exits.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
