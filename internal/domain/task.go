// Package domain contains core business entities and interfaces.
package domain

// CreatedAtLayout is the default layout for Task.CreatedAt.
const CreatedAtLayout = "January 02, 2006"

// Task represents a tracked unit of work.
// Field order matches the stored record.
type Task struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`       // Title (required)
	Description string   `json:"description"` // Description (may be empty)
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	DueDate     string   `json:"due_date"`                      // Free-form, never parsed
	IssueNumber *int     `json:"github_issue_number,omitempty"` // Mirrored GitHub issue (nil = not mirrored)
	CreatedAt   string   `json:"created_at"`                    // Formatted creation date, immutable
}

// HasIssue returns true if the task was mirrored to a GitHub issue.
func (t *Task) HasIssue() bool {
	return t.IssueNumber != nil
}

// NextTaskID returns the id for a task appended to tasks.
// It is one past the highest id in use, so an empty list yields 0 and
// an append-only list yields its length.
func NextTaskID(tasks []*Task) int {
	next := 0
	for _, t := range tasks {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

// FindTask returns the task with the given id, or nil.
func FindTask(tasks []*Task, id int) *Task {
	for _, t := range tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
