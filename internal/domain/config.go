package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string  `toml:"-"`
	UI       UIConfig  `toml:"ui"`
	Log      LogConfig `toml:"log"`
}

// UIConfig holds settings from the [ui] section.
type UIConfig struct {
	DefaultFilter string `toml:"default_filter,omitempty"` // Initial visibility filter: all, active, completed
	SubmitKey     string `toml:"submit_key,omitempty"`     // Key that submits the new-task input
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
	File  string `toml:"file,omitempty"`  // Log file path (empty disables logging)
}

// Default configuration values.
const (
	DefaultLogLevel  = "info"
	DefaultSubmitKey = "enter"
)

// Directory and file names for git-todo.
const (
	AppDirName          = "git-todo"    // Directory name under the user config home
	ConfigFileName      = "config.toml" // Global config file name
	LocalConfigFileName = ".todo.toml"  // Config file name in the working directory
)

// GlobalAppDir returns the global application directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalAppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalAppDir(configHome), ConfigFileName)
}

// LocalConfigPath returns the local config path for a directory.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			DefaultFilter: string(FilterAll),
			SubmitKey:     DefaultSubmitKey,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// InitialFilter returns the configured initial filter.
// Invalid values fall back to FilterAll and are reported by Validate.
func (c *Config) InitialFilter() VisibilityFilter {
	f, err := ParseVisibilityFilter(c.UI.DefaultFilter)
	if err != nil {
		return FilterAll
	}
	return f
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if _, err := ParseVisibilityFilter(c.UI.DefaultFilter); err != nil {
		return fmt.Errorf("[ui] default_filter: %w", err)
	}
	if strings.TrimSpace(c.UI.SubmitKey) == "" {
		return fmt.Errorf("[ui] submit_key: %w", ErrEmptySubmitKey)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("[log] level: %w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}

// RenderConfigTemplate renders a commented config template seeded from cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
