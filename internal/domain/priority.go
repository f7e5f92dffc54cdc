package domain

import (
	"encoding/json"
	"fmt"
)

// Priority represents how urgent a task is.
type Priority string

// Priority values as stored in the task record.
const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// AllPriorities returns all valid priorities, lowest first.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Stars returns the star rating shown next to a task title.
func (p Priority) Stars() string {
	switch p {
	case PriorityMedium:
		return "⭐⭐"
	case PriorityHigh:
		return "⭐⭐⭐"
	default:
		return "⭐"
	}
}

// ParsePriority parses a priority name, ignoring case.
func ParsePriority(s string) (Priority, error) {
	key := normalizeEnumKey(s)
	for _, p := range AllPriorities() {
		if normalizeEnumKey(string(p)) == key {
			return p, nil
		}
	}
	return "", ErrInvalidPriority
}

// UnmarshalJSON rejects unknown priority names.
func (p *Priority) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	pr := Priority(raw)
	if !pr.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, raw)
	}
	*p = pr
	return nil
}
