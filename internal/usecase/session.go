// Package usecase contains application use cases.
package usecase

import (
	"io"
	"log/slog"

	"github.com/runoshun/taskflow/internal/domain"
)

// Session is the in-memory state of one run. It is owned by the caller and
// passed to each use case; the task list and config are the source of truth
// and are written back in full after every change.
type Session struct {
	Config   *domain.Config
	Settings *domain.Settings
	Tracker  domain.IssueTracker // nil when not connected
	Current  *domain.Repository  // nil until a repository is selected
	Tasks    []*domain.Task
}

// CanMirror reports whether tasks can be mirrored to GitHub issues.
func (s *Session) CanMirror() bool {
	return s.Tracker != nil && s.Current != nil
}

// NeedsSetup reports whether first-time setup should run.
func (s *Session) NeedsSetup() bool {
	return len(s.Config.Repositories) == 0
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return logger
}
