package domain

// Dispatcher is the single entry point for state changes.
// Implementations must serialize Dispatch calls.
type Dispatcher interface {
	// Dispatch applies the action and returns a snapshot of the resulting state.
	Dispatch(action Action) AppState

	// DispatchFunc calls fn with the current state and dispatches the action
	// it returns, with no other dispatch in between.
	// A nil action leaves the state unchanged and notifies no one.
	DispatchFunc(fn func(AppState) Action) AppState

	// State returns a snapshot of the current state.
	State() AppState
}

// ScriptParser decodes an action script into actions, in order.
type ScriptParser interface {
	Parse(content []byte) ([]Action, error)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// LoadLocal returns only the local configuration.
	LoadLocal() (*Config, error)
}

// ConfigInfo holds information about a configuration file.
type ConfigInfo struct {
	Path    string // File path
	Content string // File content (empty if not exists)
	Exists  bool   // Whether the file exists
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetLocalConfigInfo returns information about the local config file.
	GetLocalConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitLocalConfig writes a local config file rendered from cfg.
	// It returns ErrConfigExists if the file exists and force is false.
	InitLocalConfig(cfg *Config, force bool) error

	// InitGlobalConfig writes a global config file rendered from cfg.
	InitGlobalConfig(cfg *Config, force bool) error
}

// Logger writes operational log entries.
// taskID 0 means the entry is not about a specific task.
type Logger interface {
	Debug(taskID int, category, msg string)
	Info(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// NopLogger discards all entries.
type NopLogger struct{}

func (NopLogger) Debug(int, string, string) {}
func (NopLogger) Info(int, string, string)  {}
func (NopLogger) Warn(int, string, string)  {}
func (NopLogger) Error(int, string, string) {}
