package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskflow/internal/domain"
)

func newTestBoardModel() *BoardModel {
	tasks := []*domain.Task{
		{ID: 0, Title: "a", Priority: domain.PriorityLow, Status: domain.StatusTodo},
		{ID: 1, Title: "b", Priority: domain.PriorityLow, Status: domain.StatusTodo},
		{ID: 2, Title: "c", Priority: domain.PriorityLow, Status: domain.StatusDone},
	}
	return NewBoardModel(domain.NewBoard(tasks), "demo", NewRenderer(DefaultStyles(), 20))
}

func press(m *BoardModel, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBoardModel_MovesFocus(t *testing.T) {
	m := newTestBoardModel()

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.Focus())

	press(m, runes("l"))
	press(m, runes("l"))
	assert.Equal(t, 3, m.Focus())

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.Focus(), "focus wraps around")

	press(m, runes("h"))
	assert.Equal(t, 3, m.Focus())
}

func TestBoardModel_MovesCursorWithinColumn(t *testing.T) {
	m := newTestBoardModel()

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Cursor())

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Cursor(), "cursor stops at the last task")

	press(m, runes("k"))
	press(m, runes("k"))
	assert.Equal(t, 0, m.Cursor())

	press(m, runes("l"))
	press(m, runes("j"))
	assert.Equal(t, 0, m.Cursor(), "empty column keeps cursor at 0")
}

func TestBoardModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestBoardModel()
		cmd := press(m, msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestBoardModel_View(t *testing.T) {
	m := newTestBoardModel()
	view := m.View()

	assert.Contains(t, view, "demo")
	assert.Contains(t, view, "Todo (2)")
	assert.Contains(t, view, "Done (1)")
	assert.Contains(t, view, "q/esc back")
}
