package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/runoshun/taskflow/internal/domain"
)

// OpenSessionInput contains the parameters for opening a session.
type OpenSessionInput struct {
	Settings *domain.Settings // nil = defaults
	Connect  bool             // Connect to GitHub when a token is configured
}

// OpenSessionOutput contains the loaded session.
type OpenSessionOutput struct {
	Session  *Session
	Warnings []string
}

// OpenSession loads the config, connects to GitHub and loads tasks.
type OpenSession struct {
	configs   domain.ConfigStore
	tasks     domain.TaskRepository
	connector domain.TrackerConnector
	logger    *slog.Logger
}

// NewOpenSession creates a new OpenSession use case.
func NewOpenSession(configs domain.ConfigStore, tasks domain.TaskRepository, connector domain.TrackerConnector, logger *slog.Logger) *OpenSession {
	return &OpenSession{
		configs:   configs,
		tasks:     tasks,
		connector: connector,
		logger:    orDiscard(logger),
	}
}

// Execute opens a session. A config record that cannot be read is an
// error. A task record that cannot be read is replaced by an empty list
// and reported as a warning.
func (uc *OpenSession) Execute(ctx context.Context, in OpenSessionInput) (*OpenSessionOutput, error) {
	cfg, err := uc.configs.LoadOrCreate()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	settings := in.Settings
	if settings == nil {
		settings = domain.NewDefaultSettings()
	}
	s := &Session{Config: cfg, Settings: settings}
	out := &OpenSessionOutput{Session: s}

	if in.Connect {
		if cfg.HasToken() {
			tracker, err := uc.connector.Connect(ctx, *cfg.Token)
			if err != nil {
				uc.logger.Warn("github connection failed", "err", err)
				out.Warnings = append(out.Warnings, "GitHub connection failed")
			} else {
				s.Tracker = tracker
			}
		} else {
			out.Warnings = append(out.Warnings, "No GitHub token configured")
		}
	}

	tasks, err := uc.tasks.Load()
	if err != nil {
		// The task record is treated as disposable, unlike the config.
		uc.logger.Error("task record unreadable, starting empty", "err", err)
		out.Warnings = append(out.Warnings, fmt.Sprintf("Could not read tasks, starting with an empty list: %v", err))
		tasks = []*domain.Task{}
	}
	s.Tasks = tasks

	uc.logger.Info("session opened",
		"tasks", len(tasks),
		"repositories", len(cfg.Repositories),
		"connected", s.Tracker != nil)
	return out, nil
}
