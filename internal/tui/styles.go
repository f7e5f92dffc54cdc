// Package tui renders tasks and the status board in the terminal.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskflow/internal/domain"
)

// Colors defines the color palette.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Status colors
	Todo       lipgloss.Color
	InProgress lipgloss.Color
	NeedsHelp  lipgloss.Color
	Done       lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Warning: lipgloss.Color("#FDCB6E"), // Yellow
	Success: lipgloss.Color("#00B894"), // Green

	TitleNormal:   lipgloss.Color("#DFE6E9"),
	TitleSelected: lipgloss.Color("#FFEAA7"),

	Todo:       lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	NeedsHelp:  lipgloss.Color("#D63031"), // Red
	Done:       lipgloss.Color("#00B894"), // Green
}

// Styles contains the lipgloss styles used by the renderers.
type Styles struct {
	Header lipgloss.Style

	// Board
	Column        lipgloss.Style
	ColumnFocused lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	Empty         lipgloss.Style

	// List
	TaskID    lipgloss.Style
	TaskTitle lipgloss.Style
	Meta      lipgloss.Style

	// Messages
	Warning lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style

	Help lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 1),

		ColumnFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		CardSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		Empty: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		TaskID: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleNormal),

		Meta: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Warning: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Error),

		Success: lipgloss.NewStyle().
			Foreground(Colors.Success),

		Help: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
	}
}

// StatusStyle returns the column header style for a status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch status {
	case domain.StatusTodo:
		return base.Foreground(Colors.Todo)
	case domain.StatusInProgress:
		return base.Foreground(Colors.InProgress)
	case domain.StatusNeedsHelp:
		return base.Foreground(Colors.NeedsHelp)
	case domain.StatusDone:
		return base.Foreground(Colors.Done)
	default:
		return base.Foreground(Colors.Muted)
	}
}
