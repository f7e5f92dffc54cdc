package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/runoshun/taskflow/internal/domain"
)

// AddRepositoryInput contains the parameters for adding a repository.
type AddRepositoryInput struct {
	Owner       string // Required
	Name        string // Required
	DisplayName string // Optional, defaults to Name
}

// AddRepositoryOutput contains the added repository.
type AddRepositoryOutput struct {
	Repository domain.Repository
}

// AddRepository verifies a repository on GitHub and appends it to the config.
type AddRepository struct {
	configs domain.ConfigStore
	logger  *slog.Logger
}

// NewAddRepository creates a new AddRepository use case.
func NewAddRepository(configs domain.ConfigStore, logger *slog.Logger) *AddRepository {
	return &AddRepository{
		configs: configs,
		logger:  orDiscard(logger),
	}
}

// Execute adds the repository. Verification needs a connected tracker;
// without one, or when verification fails, the config is left unchanged.
func (uc *AddRepository) Execute(ctx context.Context, s *Session, in AddRepositoryInput) (*AddRepositoryOutput, error) {
	owner := strings.TrimSpace(in.Owner)
	name := strings.TrimSpace(in.Name)
	if owner == "" || name == "" {
		return nil, domain.ErrInvalidRepository
	}
	display := strings.TrimSpace(in.DisplayName)
	if display == "" {
		display = name
	}

	if s.Tracker == nil {
		return nil, domain.ErrNoTracker
	}
	if err := s.Tracker.VerifyRepository(ctx, owner, name); err != nil {
		uc.logger.Warn("repository verification failed", "repo", owner+"/"+name, "err", err)
		return nil, fmt.Errorf("%w %s/%s: %v", domain.ErrRepositoryUnreachable, owner, name, err)
	}

	repo := domain.Repository{Owner: owner, Name: name, DisplayName: display}
	s.Config.Repositories = append(s.Config.Repositories, repo)
	if err := uc.configs.Save(s.Config); err != nil {
		return nil, fmt.Errorf("save config: %w", err)
	}

	uc.logger.Info("repository added", "repo", repo.FullName())
	return &AddRepositoryOutput{Repository: repo}, nil
}
