package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/runoshun/taskflow/internal/domain"
)

const minColumnWidth = 12

// Renderer turns tasks and boards into styled terminal text.
type Renderer struct {
	styles      Styles
	columnWidth int
}

// NewRenderer creates a Renderer. Widths below the minimum are raised.
func NewRenderer(styles Styles, columnWidth int) *Renderer {
	if columnWidth < minColumnWidth {
		columnWidth = minColumnWidth
	}
	return &Renderer{styles: styles, columnWidth: columnWidth}
}

// ColumnWidth returns the width of a board column's content.
func (r *Renderer) ColumnWidth() int {
	return r.columnWidth
}

// TaskLine renders one line of the plain task list:
// "#<id> <icon> <title> <stars>".
func (r *Renderer) TaskLine(t *domain.Task) string {
	return fmt.Sprintf("%s %s %s %s",
		r.styles.TaskID.Render(fmt.Sprintf("#%d", t.ID)),
		t.Status.Icon(),
		r.styles.TaskTitle.Render(t.Title),
		t.Priority.Stars())
}

// TaskDetail renders the indented detail lines under a list entry.
func (r *Renderer) TaskDetail(t *domain.Task) string {
	var b strings.Builder
	if t.Description != "" {
		fmt.Fprintf(&b, "    %s\n", t.Description)
	}
	meta := []string{"Status: " + t.Status.Display()}
	if t.DueDate != "" {
		meta = append(meta, "Due: "+t.DueDate)
	}
	meta = append(meta, "Created: "+t.CreatedAt)
	if t.HasIssue() {
		meta = append(meta, fmt.Sprintf("Issue: #%d", *t.IssueNumber))
	}
	b.WriteString("    " + r.styles.Meta.Render(strings.Join(meta, " | ")))
	return b.String()
}

// TaskList renders tasks in the order given.
func (r *Renderer) TaskList(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return r.styles.Empty.Render("No tasks yet.")
	}
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, r.TaskLine(t)+"\n"+r.TaskDetail(t))
	}
	return strings.Join(lines, "\n\n")
}

// Card renders a task as a single board line truncated to the column width.
func (r *Renderer) Card(t *domain.Task) string {
	line := fmt.Sprintf("#%d %s %s", t.ID, t.Title, t.Priority.Stars())
	return truncate.StringWithTail(line, uint(r.columnWidth), "…")
}

// ColumnHeader returns "<Status> (<count>)".
func ColumnHeader(c domain.Column) string {
	return fmt.Sprintf("%s (%d)", c.Status.Display(), len(c.Tasks))
}

// Column renders one board column. selected is the highlighted row,
// or -1 for none.
func (r *Renderer) Column(c domain.Column, focused bool, selected int) string {
	lines := []string{r.styles.StatusStyle(c.Status).Render(ColumnHeader(c)), ""}
	if len(c.Tasks) == 0 {
		lines = append(lines, r.styles.Empty.Render("(empty)"))
	}
	for i, t := range c.Tasks {
		style := r.styles.Card
		if focused && i == selected {
			style = r.styles.CardSelected
		}
		lines = append(lines, style.Render(r.Card(t)))
	}

	frame := r.styles.Column
	if focused {
		frame = r.styles.ColumnFocused
	}
	return frame.Width(r.columnWidth).Render(strings.Join(lines, "\n"))
}

// Board renders all columns side by side with no focus.
func (r *Renderer) Board(b domain.Board) string {
	columns := make([]string, 0, len(b.Columns))
	for _, c := range b.Columns {
		columns = append(columns, r.Column(c, false, -1))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// PlainBoard renders the board without styling, one column after another.
// It is used when output is not a terminal.
func PlainBoard(b domain.Board) string {
	var sb strings.Builder
	for i, c := range b.Columns {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(ColumnHeader(c) + "\n")
		for _, t := range c.Tasks {
			fmt.Fprintf(&sb, "  #%d %s [%s]\n", t.ID, t.Title, t.Priority)
		}
	}
	return sb.String()
}

// Label pads or truncates s to exactly width cells, for aligned
// selection lists.
func Label(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
