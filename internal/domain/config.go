package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// File names inside the config directory.
const (
	ConfigFileName   = "config.json"
	TasksFileName    = "tasks.json"
	SettingsFileName = "settings.toml"
	LogFileName      = "taskflow.log"
)

// ConfigPath returns the path of the persisted configuration record.
func ConfigPath(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

// TasksPath returns the path of the persisted task record.
func TasksPath(configDir string) string {
	return filepath.Join(configDir, TasksFileName)
}

// SettingsPath returns the path of the optional settings file.
func SettingsPath(configDir string) string {
	return filepath.Join(configDir, SettingsFileName)
}

// LogPath returns the path of the log file.
func LogPath(configDir string) string {
	return filepath.Join(configDir, "logs", LogFileName)
}

// Repository identifies a GitHub repository tasks can be mirrored into.
// Duplicates are allowed.
type Repository struct {
	Owner       string `json:"owner"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// FullName returns "owner/name".
func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}

// Label returns the form used in selection lists: "display (owner/name)".
func (r Repository) Label() string {
	return fmt.Sprintf("%s (%s)", r.DisplayName, r.FullName())
}

// Config is the persisted configuration record.
// The default repo fields are only read; the program never sets them.
type Config struct {
	Token            *string      `json:"github_token,omitempty"`
	DefaultRepoOwner *string      `json:"default_repo_owner,omitempty"`
	DefaultRepoName  *string      `json:"default_repo_name,omitempty"`
	Repositories     []Repository `json:"repositories"`
}

// NewDefaultConfig returns the configuration written on first run.
func NewDefaultConfig() *Config {
	return &Config{Repositories: []Repository{}}
}

// HasToken returns true if a GitHub token is configured.
func (c *Config) HasToken() bool {
	return c.Token != nil && *c.Token != ""
}

// DefaultRepositoryIndex returns the index of the repository matching the
// default repo fields, or 0 when unset or unmatched.
func (c *Config) DefaultRepositoryIndex() int {
	if c.DefaultRepoOwner == nil || c.DefaultRepoName == nil {
		return 0
	}
	for i, r := range c.Repositories {
		if r.Owner == *c.DefaultRepoOwner && r.Name == *c.DefaultRepoName {
			return i
		}
	}
	return 0
}

// FindRepository looks up a configured repository by "owner/name" or display name.
func (c *Config) FindRepository(ref string) (Repository, bool) {
	for _, r := range c.Repositories {
		if r.FullName() == ref {
			return r, true
		}
	}
	for _, r := range c.Repositories {
		if r.DisplayName == ref {
			return r, true
		}
	}
	return Repository{}, false
}

// Settings holds optional preferences from settings.toml.
type Settings struct {
	Warnings []string        `toml:"-"`
	Log      LogSettings     `toml:"log"`
	GitHub   GitHubSettings  `toml:"github"`
	Display  DisplaySettings `toml:"display"`
}

// LogSettings holds the [log] section.
type LogSettings struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// GitHubSettings holds the [github] section.
type GitHubSettings struct {
	APIURL string `toml:"api_url"` // Empty = public GitHub API
	WebURL string `toml:"web_url"`
}

// DisplaySettings holds the [display] section.
type DisplaySettings struct {
	DateFormat  string `toml:"date_format"`
	ColumnWidth int    `toml:"column_width"`
}

// Default setting values.
const (
	DefaultLogLevel    = "info"
	DefaultWebURL      = "https://github.com"
	DefaultColumnWidth = 28
)

// NewDefaultSettings returns settings used when no settings file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		Log:     LogSettings{Level: DefaultLogLevel},
		GitHub:  GitHubSettings{WebURL: DefaultWebURL},
		Display: DisplaySettings{DateFormat: CreatedAtLayout, ColumnWidth: DefaultColumnWidth},
	}
}

// ProjectURL returns the web URL of a repository's projects page.
func (s *Settings) ProjectURL(repo Repository) string {
	return s.RepositoryURL(repo) + "/projects"
}

// RepositoryURL returns the web URL of a repository.
func (s *Settings) RepositoryURL(repo Repository) string {
	base := s.GitHub.WebURL
	if base == "" {
		base = DefaultWebURL
	}
	return strings.TrimRight(base, "/") + "/" + repo.FullName()
}

// SettingsTemplate is written by "config init".
const SettingsTemplate = `# taskflow settings

[log]
# debug, info, warn or error
level = "info"

[github]
# API endpoint for GitHub Enterprise; leave empty for github.com
api_url = ""
web_url = "https://github.com"

[display]
# Go time layout used for a task's created date
date_format = "January 02, 2006"
column_width = 28
`
