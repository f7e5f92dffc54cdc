package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/infra/jsonstore"
)

// Ensure Store implements domain.ConfigStore.
var _ domain.ConfigStore = (*Store)(nil)

// Store persists the configuration record as JSON.
type Store struct {
	path string
}

// NewStore creates a Store for config.json in configDir.
func NewStore(configDir string) *Store {
	return &Store{path: domain.ConfigPath(configDir)}
}

// Path returns the record path.
func (s *Store) Path() string {
	return s.path
}

// LoadOrCreate reads the record, or writes and returns the default one
// when it does not exist. A record that exists but cannot be parsed is an
// error wrapping domain.ErrConfigParse.
func (s *Store) LoadOrCreate() (*domain.Config, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		cfg := domain.NewDefaultConfig()
		if err := s.Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	var cfg domain.Config
	if err := json.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("%w %s: %v", domain.ErrConfigParse, s.path, err)
	}
	if cfg.Repositories == nil {
		cfg.Repositories = []domain.Repository{}
	}
	return &cfg, nil
}

// Save overwrites the record with cfg.
func (s *Store) Save(cfg *domain.Config) error {
	content, err := jsonstore.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := jsonstore.WriteFile(s.path, content); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}
