package usecase

import (
	"github.com/runoshun/taskflow/internal/domain"
)

// SelectRepositoryInput contains the parameters for selecting a repository.
type SelectRepositoryInput struct {
	Index int // Position in Config.Repositories
}

// SelectRepository sets the session's current repository.
type SelectRepository struct{}

// NewSelectRepository creates a new SelectRepository use case.
func NewSelectRepository() *SelectRepository {
	return &SelectRepository{}
}

// Execute copies the chosen repository into the session.
func (uc *SelectRepository) Execute(s *Session, in SelectRepositoryInput) (domain.Repository, error) {
	repos := s.Config.Repositories
	if len(repos) == 0 {
		return domain.Repository{}, domain.ErrNoRepositories
	}
	if in.Index < 0 || in.Index >= len(repos) {
		return domain.Repository{}, domain.ErrRepositoryNotFound
	}
	repo := repos[in.Index]
	s.Current = &repo
	return repo, nil
}

// RepositoryChoices returns the labels shown when choosing a repository.
func RepositoryChoices(cfg *domain.Config) []string {
	choices := make([]string, 0, len(cfg.Repositories))
	for _, r := range cfg.Repositories {
		choices = append(choices, r.Label())
	}
	return choices
}
