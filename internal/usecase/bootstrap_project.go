package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/runoshun/taskflow/internal/domain"
)

// BootstrapProjectOutput contains the created tracking issue.
type BootstrapProjectOutput struct {
	Title       string
	IssueNumber int
}

// BootstrapProject creates a GitHub issue describing the status board.
// It only touches GitHub; local records are never modified.
type BootstrapProject struct {
	logger *slog.Logger
}

// NewBootstrapProject creates a new BootstrapProject use case.
func NewBootstrapProject(logger *slog.Logger) *BootstrapProject {
	return &BootstrapProject{logger: orDiscard(logger)}
}

// Execute creates the tracking issue in the current repository.
func (uc *BootstrapProject) Execute(ctx context.Context, s *Session) (*BootstrapProjectOutput, error) {
	if s.Tracker == nil {
		return nil, domain.ErrNoTracker
	}
	if s.Current == nil {
		return nil, domain.ErrNoRepository
	}

	repo := *s.Current
	title := ProjectIssueTitle(repo)
	body := ProjectIssueBody(domain.NewBoard(s.Tasks))
	number, err := s.Tracker.CreateIssue(ctx, repo.Owner, repo.Name, title, body)
	if err != nil {
		uc.logger.Warn("tracking issue creation failed", "repo", repo.FullName(), "err", err)
		return nil, fmt.Errorf("create tracking issue: %w", err)
	}

	uc.logger.Info("tracking issue created", "repo", repo.FullName(), "issue", number)
	return &BootstrapProjectOutput{Title: title, IssueNumber: number}, nil
}

// ProjectIssueTitle returns the title of a repository's tracking issue.
func ProjectIssueTitle(repo domain.Repository) string {
	return "Project Board: " + repo.DisplayName
}

// ProjectIssueBody renders the board columns as a markdown checklist.
func ProjectIssueBody(board domain.Board) string {
	var b strings.Builder
	b.WriteString("## Board columns\n\n")
	for _, c := range board.Columns {
		fmt.Fprintf(&b, "- [ ] %s (%d)\n", c.Status.Display(), len(c.Tasks))
	}
	b.WriteString("\nTasks are tracked locally with taskflow.\n")
	return b.String()
}
