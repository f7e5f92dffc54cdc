package usecase

import (
	"fmt"

	"github.com/runoshun/taskflow/internal/domain"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	ID int
}

// ShowTaskOutput contains the task and, when mirrored, its issue URL.
type ShowTaskOutput struct {
	Task     *domain.Task
	IssueURL string
}

// ShowTask is the use case for displaying a single task.
type ShowTask struct{}

// NewShowTask creates a new ShowTask use case.
func NewShowTask() *ShowTask {
	return &ShowTask{}
}

// Execute looks the task up by id. The issue URL is built against the
// current repository, since tasks do not record where they were mirrored.
func (uc *ShowTask) Execute(s *Session, in ShowTaskInput) (*ShowTaskOutput, error) {
	task := domain.FindTask(s.Tasks, in.ID)
	if task == nil {
		return nil, fmt.Errorf("%w: #%d", domain.ErrTaskNotFound, in.ID)
	}
	out := &ShowTaskOutput{Task: task}
	if task.HasIssue() && s.Current != nil {
		out.IssueURL = fmt.Sprintf("%s/issues/%d", s.Settings.RepositoryURL(*s.Current), *task.IssueNumber)
	}
	return out, nil
}
