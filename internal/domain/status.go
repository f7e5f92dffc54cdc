package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status represents the board column a task is in.
type Status string

// Status values as stored in the task record.
const (
	StatusTodo       Status = "Todo"
	StatusInProgress Status = "InProgress"
	StatusNeedsHelp  Status = "NeedsHelp"
	StatusDone       Status = "Done"
)

// AllStatuses returns all valid status values in board column order.
func AllStatuses() []Status {
	return []Status{
		StatusTodo,
		StatusInProgress,
		StatusNeedsHelp,
		StatusDone,
	}
}

// Any status may move to any other, including Done back to Todo.
// There is no terminal state.

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusNeedsHelp, StatusDone:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusTodo:
		return "Todo"
	case StatusInProgress:
		return "In Progress"
	case StatusNeedsHelp:
		return "Needs Help"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// Icon returns the list marker for the status.
func (s Status) Icon() string {
	switch s {
	case StatusTodo:
		return "🆕"
	case StatusInProgress:
		return "🔄"
	case StatusNeedsHelp:
		return "🆘"
	case StatusDone:
		return "✅"
	default:
		return "•"
	}
}

// ParseStatus parses a status from its stored or display name.
// Matching ignores case, spaces, dashes and underscores, so "in-progress",
// "In Progress" and "InProgress" are all accepted.
func ParseStatus(s string) (Status, error) {
	key := normalizeEnumKey(s)
	for _, st := range AllStatuses() {
		if normalizeEnumKey(string(st)) == key {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

func normalizeEnumKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// UnmarshalJSON rejects unknown status names.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	st := Status(raw)
	if !st.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	*s = st
	return nil
}
