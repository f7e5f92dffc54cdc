package domain

import (
	"context"
	"time"
)

// TaskRepository persists the ordered task list.
// The whole list is read and written at once.
type TaskRepository interface {
	// Load returns all tasks in insertion order.
	// A missing record yields an empty list and no error.
	Load() ([]*Task, error)

	// Save overwrites the record with tasks.
	Save(tasks []*Task) error
}

// ConfigStore persists the configuration record.
type ConfigStore interface {
	// LoadOrCreate returns the stored configuration, writing and returning
	// the default one when no record exists.
	LoadOrCreate() (*Config, error)

	// Save overwrites the record with cfg.
	Save(cfg *Config) error
}

// SettingsLoader loads optional user settings.
type SettingsLoader interface {
	// Load returns settings, falling back to defaults when no file exists.
	Load() (*Settings, error)
}

// SettingsInitializer writes the settings template.
type SettingsInitializer interface {
	// Init creates the settings file; ErrConfigExists if it already exists.
	Init() error
}

// IssueTracker is a connected GitHub client.
type IssueTracker interface {
	// VerifyRepository checks the repository is reachable with the current token.
	VerifyRepository(ctx context.Context, owner, name string) error

	// CreateIssue opens an issue and returns its number.
	CreateIssue(ctx context.Context, owner, name, title, body string) (int, error)
}

// TrackerConnector builds an IssueTracker from a token.
type TrackerConnector interface {
	// Connect authenticates with token. Any failure is returned as an error;
	// callers degrade to running without a tracker.
	Connect(ctx context.Context, token string) (IssueTracker, error)
}

// RemoteDetector finds the GitHub repository of a working directory.
type RemoteDetector interface {
	// Detect returns the owner and name of the origin remote in dir.
	Detect(dir string) (owner, name string, err error)
}

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Execute runs the command and returns its combined output.
	Execute(cmd *ExecCommand) ([]byte, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Prompter asks the user questions on the terminal.
// Cancelling any prompt returns ErrPromptAborted.
type Prompter interface {
	// Input asks for a line of text; value pre-fills the answer.
	Input(title, value string, validate func(string) error) (string, error)

	// Secret asks for text without echoing it.
	Secret(title string) (string, error)

	// Select returns the index of the chosen option.
	Select(title string, options []string, initial int) (int, error)

	// Confirm asks a yes/no question.
	Confirm(title string, initial bool) (bool, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
