package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/git-todo/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	localDir      string // Directory holding .todo.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/git-todo)
}

// NewManager creates a new Manager.
func NewManager(localDir string) *Manager {
	return &Manager{
		localDir:      localDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(localDir, globalConfDir string) *Manager {
	return &Manager{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// GetLocalConfigInfo returns information about the local config file.
func (m *Manager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.getConfigInfo(domain.LocalConfigPath(m.localDir))
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// getConfigInfo reads a config file and returns its info.
func (m *Manager) getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitLocalConfig creates a local config file rendered from cfg.
func (m *Manager) InitLocalConfig(cfg *domain.Config, force bool) error {
	return m.initConfig(domain.LocalConfigPath(m.localDir), cfg, force)
}

// InitGlobalConfig creates a global config file rendered from cfg.
func (m *Manager) InitGlobalConfig(cfg *domain.Config, force bool) error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}

	if err := os.MkdirAll(m.globalConfDir, 0700); err != nil {
		return err
	}

	return m.initConfig(filepath.Join(m.globalConfDir, domain.ConfigFileName), cfg, force)
}

// initConfig writes the rendered template, refusing to overwrite unless forced.
func (m *Manager) initConfig(path string, cfg *domain.Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return domain.ErrConfigExists
	}

	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	content := domain.RenderConfigTemplate(cfg)

	return os.WriteFile(path, []byte(content), 0600)
}
