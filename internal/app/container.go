// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/infra/clipboard"
	"github.com/runoshun/taskflow/internal/infra/config"
	"github.com/runoshun/taskflow/internal/infra/executor"
	"github.com/runoshun/taskflow/internal/infra/github"
	"github.com/runoshun/taskflow/internal/infra/gitremote"
	"github.com/runoshun/taskflow/internal/infra/jsonstore"
	"github.com/runoshun/taskflow/internal/infra/logging"
	"github.com/runoshun/taskflow/internal/infra/prompt"
	"github.com/runoshun/taskflow/internal/usecase"
)

// Config holds the application file paths.
type Config struct {
	ConfigDir    string // Directory holding all taskflow files
	ConfigPath   string // Path to config.json
	TasksPath    string // Path to tasks.json
	SettingsPath string // Path to settings.toml
	LogPath      string // Path to the log file
	WorkDir      string // Working directory, used for git remote detection
}

// NewConfig derives the file paths for configDir.
func NewConfig(configDir, workDir string) Config {
	return Config{
		ConfigDir:    configDir,
		ConfigPath:   domain.ConfigPath(configDir),
		TasksPath:    domain.TasksPath(configDir),
		SettingsPath: domain.SettingsPath(configDir),
		LogPath:      domain.LogPath(configDir),
		WorkDir:      workDir,
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Configs      domain.ConfigStore
	Tasks        domain.TaskRepository
	SettingsInit domain.SettingsInitializer
	Connector    domain.TrackerConnector
	Remotes      domain.RemoteDetector
	Executor     domain.CommandExecutor
	Clipboard    domain.Clipboard
	Prompter     domain.Prompter
	Clock        domain.Clock

	// Pointer fields
	Settings *domain.Settings
	Logger   *slog.Logger
	closer   io.Closer

	// Interactive reports whether stdin and stdout are terminals.
	Interactive func() bool

	// Configuration
	Config Config
}

// New creates a Container for configDir (the default directory when empty).
// A config directory that cannot be resolved or created is an error.
// An unreadable settings file is not: defaults are used and the problem
// is reported through Settings.Warnings.
func New(configDir string) (*Container, error) {
	dir, err := config.EnsureDir(configDir)
	if err != nil {
		return nil, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	cfg := NewConfig(dir, cwd)

	settingsLoader := config.NewLoader(dir)
	settings, err := settingsLoader.Load()
	if err != nil {
		settings = domain.NewDefaultSettings()
		settings.Warnings = append(settings.Warnings, err.Error())
	}

	logger := logging.New(cfg.LogPath, logging.ParseLevel(settings.Log.Level))

	return &Container{
		Configs:      config.NewStore(dir),
		Tasks:        jsonstore.New(cfg.TasksPath),
		SettingsInit: settingsLoader,
		Connector:    github.NewConnector(settings.GitHub.APIURL, logger.Logger),
		Remotes:      gitremote.NewDetector(settings.GitHub.WebURL),
		Executor:     executor.NewClient(),
		Clipboard:    clipboard.New(),
		Prompter:     prompt.New(os.Getenv("ACCESSIBLE") != ""),
		Clock:        domain.RealClock{},
		Settings:     settings,
		Logger:       logger.Logger,
		closer:       logger,
		Interactive:  isTerminal,
		Config:       cfg,
	}, nil
}

// NewWithDeps creates a Container with explicit dependencies (for testing).
// Ports not given here are left nil for the caller to set.
func NewWithDeps(cfg Config, configs domain.ConfigStore, tasks domain.TaskRepository, clock domain.Clock, logger *slog.Logger) *Container {
	return &Container{
		Configs:     configs,
		Tasks:       tasks,
		Clock:       clock,
		Settings:    domain.NewDefaultSettings(),
		Logger:      logger,
		Interactive: func() bool { return false },
		Config:      cfg,
	}
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// OpenSessionUseCase returns a new OpenSession use case.
func (c *Container) OpenSessionUseCase() *usecase.OpenSession {
	return usecase.NewOpenSession(c.Configs, c.Tasks, c.Connector, c.Logger)
}

// SetTokenUseCase returns a new SetToken use case.
func (c *Container) SetTokenUseCase() *usecase.SetToken {
	return usecase.NewSetToken(c.Configs, c.Connector, c.Logger)
}

// AddRepositoryUseCase returns a new AddRepository use case.
func (c *Container) AddRepositoryUseCase() *usecase.AddRepository {
	return usecase.NewAddRepository(c.Configs, c.Logger)
}

// SelectRepositoryUseCase returns a new SelectRepository use case.
func (c *Container) SelectRepositoryUseCase() *usecase.SelectRepository {
	return usecase.NewSelectRepository()
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks()
}

// UpdateTaskStatusUseCase returns a new UpdateTaskStatus use case.
func (c *Container) UpdateTaskStatusUseCase() *usecase.UpdateTaskStatus {
	return usecase.NewUpdateTaskStatus(c.Tasks, c.Logger)
}

// ShowBoardUseCase returns a new ShowBoard use case.
func (c *Container) ShowBoardUseCase() *usecase.ShowBoard {
	return usecase.NewShowBoard()
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask()
}

// BootstrapProjectUseCase returns a new BootstrapProject use case.
func (c *Container) BootstrapProjectUseCase() *usecase.BootstrapProject {
	return usecase.NewBootstrapProject(c.Logger)
}

// OpenProjectUseCase returns a new OpenProject use case.
func (c *Container) OpenProjectUseCase() *usecase.OpenProject {
	return usecase.NewOpenProject(c.Executor, c.Clipboard, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig()
}

// InitSettingsUseCase returns a new InitSettings use case.
func (c *Container) InitSettingsUseCase() *usecase.InitSettings {
	return usecase.NewInitSettings(c.SettingsInit, c.Config.SettingsPath)
}
