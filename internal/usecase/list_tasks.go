package usecase

import (
	"fmt"

	"github.com/runoshun/taskflow/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Status domain.Status // Only tasks with this status (optional, empty = all)
}

// ListTasksOutput contains the listed tasks in insertion order.
type ListTasksOutput struct {
	Tasks []*domain.Task
}

// ListTasks is the use case for listing tasks.
type ListTasks struct{}

// NewListTasks creates a new ListTasks use case.
func NewListTasks() *ListTasks {
	return &ListTasks{}
}

// Execute returns the session's tasks.
func (uc *ListTasks) Execute(s *Session, in ListTasksInput) (*ListTasksOutput, error) {
	if in.Status == "" {
		return &ListTasksOutput{Tasks: s.Tasks}, nil
	}
	if !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
	}
	tasks := make([]*domain.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if t.Status == in.Status {
			tasks = append(tasks, t)
		}
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}
