package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskflow/internal/domain"
)

// BoardModel is a read-only bubbletea viewer for a Board.
type BoardModel struct {
	renderer *Renderer
	title    string
	keys     KeyMap
	board    domain.Board
	cursors  []int
	focus    int
	width    int
}

// NewBoardModel creates a viewer for board.
func NewBoardModel(board domain.Board, title string, renderer *Renderer) *BoardModel {
	return &BoardModel{
		renderer: renderer,
		title:    title,
		keys:     DefaultKeyMap(),
		board:    board,
		cursors:  make([]int, len(board.Columns)),
	}
}

// Init implements tea.Model.
func (m *BoardModel) Init() tea.Cmd {
	return nil
}

// Focus returns the index of the focused column.
func (m *BoardModel) Focus() int {
	return m.focus
}

// Cursor returns the selected row of the focused column.
func (m *BoardModel) Cursor() int {
	if len(m.cursors) == 0 {
		return 0
	}
	return m.cursors[m.focus]
}

// Update implements tea.Model.
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := len(m.board.Columns)
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case columns == 0:
		return m, nil
	case key.Matches(msg, m.keys.Left):
		m.focus = (m.focus + columns - 1) % columns
	case key.Matches(msg, m.keys.Right):
		m.focus = (m.focus + 1) % columns
	case key.Matches(msg, m.keys.Up):
		if m.cursors[m.focus] > 0 {
			m.cursors[m.focus]--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursors[m.focus] < len(m.board.Columns[m.focus].Tasks)-1 {
			m.cursors[m.focus]++
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *BoardModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderer.styles.Header.Render(m.title))
	b.WriteString("\n")

	columns := make([]string, 0, len(m.board.Columns))
	for i, c := range m.board.Columns {
		columns = append(columns, m.renderer.Column(c, i == m.focus, m.cursors[i]))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")

	help := make([]string, 0, len(m.keys.ShortHelp()))
	for _, k := range m.keys.ShortHelp() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(m.renderer.styles.Help.Render(strings.Join(help, " • ")))
	return b.String()
}

// RunBoard shows the board until the user quits.
func RunBoard(board domain.Board, title string, renderer *Renderer) error {
	_, err := tea.NewProgram(NewBoardModel(board, title, renderer)).Run()
	return err
}
