package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/runoshun/taskflow/internal/domain"
)

// AddTaskInput contains the parameters for creating a task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Repository  *domain.Repository // Mirror target (optional, nil = session's current repository)
	Title       string             // Task title (required)
	Description string             // Task description (optional)
	Priority    domain.Priority    // Priority (optional, empty = Medium)
	DueDate     string             // Free-form due date (optional)
	CreateIssue bool               // Mirror the task as a GitHub issue
}

// AddTaskOutput contains the result of creating a task.
type AddTaskOutput struct {
	Task     *domain.Task
	Warnings []string
}

// AddTask is the use case for creating a new task.
type AddTask struct {
	tasks  domain.TaskRepository
	clock  domain.Clock
	logger *slog.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository, clock domain.Clock, logger *slog.Logger) *AddTask {
	return &AddTask{
		tasks:  tasks,
		clock:  clock,
		logger: orDiscard(logger),
	}
}

// Execute appends a Todo task and saves the list. When requested, the
// task is then mirrored to a GitHub issue. A failed mirror is reported as
// a warning and never undoes the local save. If the issue is created but
// cannot be recorded, the output is returned with the error so the
// warning naming the issue still reaches the user.
func (uc *AddTask) Execute(ctx context.Context, s *Session, in AddTaskInput) (*AddTaskOutput, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, domain.ErrEmptyTitle
	}
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, priority)
	}

	layout := s.Settings.Display.DateFormat
	if layout == "" {
		layout = domain.CreatedAtLayout
	}
	task := &domain.Task{
		ID:          domain.NextTaskID(s.Tasks),
		Title:       in.Title,
		Description: in.Description,
		Priority:    priority,
		Status:      domain.StatusTodo,
		DueDate:     in.DueDate,
		CreatedAt:   uc.clock.Now().Format(layout),
	}

	s.Tasks = append(s.Tasks, task)
	if err := uc.tasks.Save(s.Tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}
	uc.logger.Info("task added", "id", task.ID, "title", task.Title)

	out := &AddTaskOutput{Task: task}
	if !in.CreateIssue {
		return out, nil
	}

	repo := in.Repository
	if repo == nil {
		repo = s.Current
	}
	switch {
	case s.Tracker == nil:
		out.Warnings = append(out.Warnings, "Not connected to GitHub, issue not created")
		return out, nil
	case repo == nil:
		out.Warnings = append(out.Warnings, "No repository selected, issue not created")
		return out, nil
	}

	number, err := s.Tracker.CreateIssue(ctx, repo.Owner, repo.Name, task.Title, task.Description)
	if err != nil {
		uc.logger.Warn("issue creation failed", "id", task.ID, "repo", repo.FullName(), "err", err)
		out.Warnings = append(out.Warnings, fmt.Sprintf("Failed to create GitHub issue: %v", err))
		return out, nil
	}

	task.IssueNumber = &number
	if err := uc.tasks.Save(s.Tasks); err != nil {
		out.Warnings = append(out.Warnings, fmt.Sprintf(
			"Created GitHub issue #%d in %s but could not record it on task #%d", number, repo.FullName(), task.ID))
		return out, fmt.Errorf("save issue number: %w", err)
	}
	uc.logger.Info("issue created", "id", task.ID, "repo", repo.FullName(), "issue", number)
	return out, nil
}
