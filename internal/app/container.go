// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/runoshun/git-todo/internal/domain"
	"github.com/runoshun/git-todo/internal/infra/config"
	"github.com/runoshun/git-todo/internal/infra/logging"
	"github.com/runoshun/git-todo/internal/infra/script"
	"github.com/runoshun/git-todo/internal/store"
	"github.com/runoshun/git-todo/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir string // Directory the program was started in (holds .todo.toml)
	LogPath string // Resolved log file path (empty = logging disabled)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.Dispatcher
	ScriptParser  domain.ScriptParser
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	AppConfig *domain.Config

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// It loads and validates the layered configuration, opens the log file
// and creates an empty store using the configured initial filter.
func New(dir string) (*Container, error) {
	cfg := Config{WorkDir: dir}

	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := appConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.LogPath = resolveLogPath(dir, appConfig.Log.File)
	logger := newLogger(cfg.LogPath, appConfig.Log.Level)

	st := store.New(appConfig.InitialFilter())
	st.Subscribe(func(action domain.Action, state domain.AppState) {
		logger.Debug(0, "dispatch", fmt.Sprintf("%s: %d tasks, filter=%s, next_id=%d",
			action.Kind(), len(state.Tasks.Tasks), state.Filter, state.Tasks.NextID))
	})

	return &Container{
		Store:         st,
		ScriptParser:  script.NewDecoder(),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		Logger:        logger,
		AppConfig:     appConfig,
		Config:        cfg,
	}, nil
}

// resolveLogPath resolves a configured log file against dir.
func resolveLogPath(dir, file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

// newLogger creates the file logger, or a no-op logger when no file is configured.
func newLogger(path, level string) domain.Logger {
	if path == "" {
		return domain.NopLogger{}
	}
	return logging.New(path, logging.ParseLevel(level))
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// A nil appConfig uses defaults; a nil logger discards entries.
func NewWithDeps(cfg Config, appConfig *domain.Config, st domain.Dispatcher, logger domain.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	if st == nil {
		st = store.New(appConfig.InitialFilter())
	}
	return &Container{
		Store:        st,
		ScriptParser: script.NewDecoder(),
		Logger:       logger,
		AppConfig:    appConfig,
		Config:       cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.Logger.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// UseCase factory methods

// SubmitTaskUseCase returns a new SubmitTask use case bound to the configured submit key.
func (c *Container) SubmitTaskUseCase() *usecase.SubmitTask {
	return usecase.NewSubmitTask(c.Store, c.Logger, c.AppConfig.UI.SubmitKey)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Store, c.Logger)
}

// ToggleAllUseCase returns a new ToggleAll use case.
func (c *Container) ToggleAllUseCase() *usecase.ToggleAll {
	return usecase.NewToggleAll(c.Store, c.Logger)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Store, c.Logger)
}

// RemoveTaskUseCase returns a new RemoveTask use case.
func (c *Container) RemoveTaskUseCase() *usecase.RemoveTask {
	return usecase.NewRemoveTask(c.Store, c.Logger)
}

// ClearCompletedUseCase returns a new ClearCompleted use case.
func (c *Container) ClearCompletedUseCase() *usecase.ClearCompleted {
	return usecase.NewClearCompleted(c.Store, c.Logger)
}

// ChangeFilterUseCase returns a new ChangeFilter use case.
func (c *Container) ChangeFilterUseCase() *usecase.ChangeFilter {
	return usecase.NewChangeFilter(c.Store, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store)
}

// ReplayUseCase returns a new Replay use case.
func (c *Container) ReplayUseCase() *usecase.Replay {
	return usecase.NewReplay(c.Store, c.ScriptParser, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Config.LogPath)
}
