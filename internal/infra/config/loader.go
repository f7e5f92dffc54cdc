// Package config provides the configuration record store and settings loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/taskflow/internal/domain"
)

// Ensure Loader implements domain.SettingsLoader.
var _ domain.SettingsLoader = (*Loader)(nil)

// Loader loads settings from a TOML file.
type Loader struct {
	path string
}

// NewLoader creates a new Loader reading settings.toml in configDir.
func NewLoader(configDir string) *Loader {
	return &Loader{path: domain.SettingsPath(configDir)}
}

// Path returns the settings file path.
func (l *Loader) Path() string {
	return l.path
}

// Load returns settings merged over defaults.
// A missing file yields defaults without error.
func (l *Loader) Load() (*domain.Settings, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewDefaultSettings(), nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	return convertRawToSettings(raw), nil
}

// Init writes the settings template. It fails if the file already exists.
func (l *Loader) Init() error {
	if _, err := os.Stat(l.path); err == nil {
		return domain.ErrConfigExists
	}
	return os.WriteFile(l.path, []byte(domain.SettingsTemplate), 0o600)
}

// convertRawToSettings applies the raw map over defaults and collects warnings.
func convertRawToSettings(raw map[string]any) *domain.Settings {
	res := domain.NewDefaultSettings()
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok && s != "" {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "github":
			for k, v := range m {
				switch k {
				case "api_url":
					if s, ok := v.(string); ok {
						res.GitHub.APIURL = s
					}
				case "web_url":
					if s, ok := v.(string); ok && s != "" {
						res.GitHub.WebURL = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [github]: %s", k))
				}
			}
		case "display":
			for k, v := range m {
				switch k {
				case "date_format":
					if s, ok := v.(string); ok && s != "" {
						res.Display.DateFormat = s
					}
				case "column_width":
					if n, ok := v.(int64); ok && n > 0 {
						res.Display.ColumnWidth = int(n)
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [display]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}
