package usecase

import (
	"log/slog"
	"runtime"

	"github.com/runoshun/taskflow/internal/domain"
)

// OpenProjectOutput reports how the project URL was delivered.
type OpenProjectOutput struct {
	URL      string
	Opened   bool // Browser was launched
	Copied   bool // URL was copied to the clipboard instead
	Warnings []string
}

// OpenProject opens the current repository's projects page in a browser,
// falling back to the clipboard.
type OpenProject struct {
	executor  domain.CommandExecutor
	clipboard domain.Clipboard
	logger    *slog.Logger
	goos      string
}

// NewOpenProject creates a new OpenProject use case.
func NewOpenProject(executor domain.CommandExecutor, clipboard domain.Clipboard, logger *slog.Logger) *OpenProject {
	return &OpenProject{
		executor:  executor,
		clipboard: clipboard,
		logger:    orDiscard(logger),
		goos:      runtime.GOOS,
	}
}

// Execute never fails once a repository is selected; delivery problems
// become warnings and the URL is always returned for display.
func (uc *OpenProject) Execute(s *Session) (*OpenProjectOutput, error) {
	if s.Current == nil {
		return nil, domain.ErrNoRepository
	}

	url := s.Settings.ProjectURL(*s.Current)
	out := &OpenProjectOutput{URL: url}

	_, err := uc.executor.Execute(domain.OpenURLCommand(uc.goos, url))
	if err == nil {
		out.Opened = true
		return out, nil
	}
	uc.logger.Warn("browser open failed", "url", url, "err", err)

	if err := uc.clipboard.WriteAll(url); err != nil {
		uc.logger.Warn("clipboard write failed", "err", err)
		out.Warnings = append(out.Warnings, "Could not open a browser or copy the URL")
		return out, nil
	}
	out.Copied = true
	out.Warnings = append(out.Warnings, "Could not open a browser, URL copied to clipboard")
	return out, nil
}
