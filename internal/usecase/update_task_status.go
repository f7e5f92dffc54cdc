package usecase

import (
	"fmt"
	"log/slog"

	"github.com/runoshun/taskflow/internal/domain"
)

// UpdateTaskStatusInput identifies a task and its new status.
// Position is used by the interactive menu, ID by the status command.
type UpdateTaskStatusInput struct {
	Position *int          // Index in the current listing
	ID       *int          // Task ID (used when Position is nil)
	Status   domain.Status // New status (required)
}

// UpdateTaskStatusOutput contains the updated task.
type UpdateTaskStatusOutput struct {
	Task      *domain.Task
	OldStatus domain.Status
}

// UpdateTaskStatus is the use case for changing a task's status.
// Any status can move to any other.
type UpdateTaskStatus struct {
	tasks  domain.TaskRepository
	logger *slog.Logger
}

// NewUpdateTaskStatus creates a new UpdateTaskStatus use case.
func NewUpdateTaskStatus(tasks domain.TaskRepository, logger *slog.Logger) *UpdateTaskStatus {
	return &UpdateTaskStatus{
		tasks:  tasks,
		logger: orDiscard(logger),
	}
}

// Execute sets the status in place and saves the list.
func (uc *UpdateTaskStatus) Execute(s *Session, in UpdateTaskStatusInput) (*UpdateTaskStatusOutput, error) {
	if !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
	}

	var task *domain.Task
	switch {
	case in.Position != nil:
		if *in.Position < 0 || *in.Position >= len(s.Tasks) {
			return nil, fmt.Errorf("%w: position %d", domain.ErrTaskNotFound, *in.Position)
		}
		task = s.Tasks[*in.Position]
	case in.ID != nil:
		task = domain.FindTask(s.Tasks, *in.ID)
		if task == nil {
			return nil, fmt.Errorf("%w: #%d", domain.ErrTaskNotFound, *in.ID)
		}
	default:
		return nil, domain.ErrTaskNotFound
	}

	old := task.Status
	task.Status = in.Status
	if err := uc.tasks.Save(s.Tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	uc.logger.Info("task status updated", "id", task.ID, "from", old, "to", in.Status)
	return &UpdateTaskStatusOutput{Task: task, OldStatus: old}, nil
}
