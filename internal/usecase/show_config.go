package usecase

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/taskflow/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct {
	Session   *Session
	ConfigDir string
}

// ShowConfigOutput describes the files in the config directory and the
// effective settings.
type ShowConfigOutput struct {
	Settings       *domain.Settings
	ConfigPath     string
	TasksPath      string
	SettingsPath   string
	LogPath        string
	Repositories   []domain.Repository
	HasToken       bool
	SettingsExists bool
}

// ShowConfig reports where taskflow keeps its files.
type ShowConfig struct{}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig() *ShowConfig {
	return &ShowConfig{}
}

// Execute collects configuration information.
func (uc *ShowConfig) Execute(in ShowConfigInput) (*ShowConfigOutput, error) {
	out := &ShowConfigOutput{
		Settings:     in.Session.Settings,
		ConfigPath:   domain.ConfigPath(in.ConfigDir),
		TasksPath:    domain.TasksPath(in.ConfigDir),
		SettingsPath: domain.SettingsPath(in.ConfigDir),
		LogPath:      domain.LogPath(in.ConfigDir),
		Repositories: in.Session.Config.Repositories,
		HasToken:     in.Session.Config.HasToken(),
	}
	_, err := os.Stat(out.SettingsPath)
	switch {
	case err == nil:
		out.SettingsExists = true
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("stat settings: %w", err)
	}
	return out, nil
}

// InitSettingsOutput contains the created settings path.
type InitSettingsOutput struct {
	Path string
}

// InitSettings writes the settings template.
type InitSettings struct {
	settings domain.SettingsInitializer
	path     string
}

// NewInitSettings creates a new InitSettings use case.
func NewInitSettings(settings domain.SettingsInitializer, path string) *InitSettings {
	return &InitSettings{settings: settings, path: path}
}

// Execute creates the settings file. An existing file is left untouched.
func (uc *InitSettings) Execute() (*InitSettingsOutput, error) {
	if err := uc.settings.Init(); err != nil {
		return nil, err
	}
	return &InitSettingsOutput{Path: uc.path}, nil
}
