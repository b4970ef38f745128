// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"sync"

	"github.com/runoshun/git-todo/internal/domain"
)

// MockDispatcher is a test double for domain.Dispatcher.
// It applies actions with the real reducer and records every dispatch.
// Fields are ordered to minimize memory padding.
type MockDispatcher struct {
	Actions []domain.Action
	Current domain.AppState
	mu      sync.Mutex
}

// NewMockDispatcher creates a MockDispatcher with an empty state.
func NewMockDispatcher() *MockDispatcher {
	return &MockDispatcher{
		Current: domain.NewAppState(domain.FilterAll),
	}
}

// NewMockDispatcherWithTasks creates a MockDispatcher seeded with tasks.
func NewMockDispatcherWithTasks(tasks ...domain.Task) *MockDispatcher {
	m := NewMockDispatcher()
	m.Current = domain.Reduce(m.Current, domain.SetTasks{Tasks: tasks})
	return m
}

// Ensure MockDispatcher implements domain.Dispatcher interface.
var _ domain.Dispatcher = (*MockDispatcher)(nil)

// Dispatch records the action and reduces the current state.
func (m *MockDispatcher) Dispatch(action domain.Action) domain.AppState {
	return m.DispatchFunc(func(domain.AppState) domain.Action { return action })
}

// DispatchFunc records and applies the action fn derives from the current state.
// A nil action is not recorded.
func (m *MockDispatcher) DispatchFunc(fn func(domain.AppState) domain.Action) domain.AppState {
	m.mu.Lock()
	defer m.mu.Unlock()
	action := fn(m.Current.Clone())
	if action == nil {
		return m.Current.Clone()
	}
	m.Actions = append(m.Actions, action)
	version := m.Current.Version
	m.Current = domain.Reduce(m.Current, action)
	m.Current.Version = version + 1
	return m.Current.Clone()
}

// State returns a copy of the current state.
func (m *MockDispatcher) State() domain.AppState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Current.Clone()
}

// Dispatched returns a copy of the recorded actions.
func (m *MockDispatcher) Dispatched() []domain.Action {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Action(nil), m.Actions...)
}

// LogEntry is one entry captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	TaskID   int
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) record(level string, taskID int, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID int, category, msg string) { m.record("debug", taskID, category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(taskID int, category, msg string) { m.record("info", taskID, category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(taskID int, category, msg string) { m.record("warn", taskID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(taskID int, category, msg string) { m.record("error", taskID, category, msg) }

// Recorded returns a copy of the recorded entries.
func (m *MockLogger) Recorded() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]LogEntry(nil), m.Entries...)
}

// MockScriptParser is a test double for domain.ScriptParser.
type MockScriptParser struct {
	Err     error
	Actions []domain.Action
	Content []byte
}

// Ensure MockScriptParser implements domain.ScriptParser interface.
var _ domain.ScriptParser = (*MockScriptParser)(nil)

// Parse records the content and returns the configured actions or error.
func (m *MockScriptParser) Parse(content []byte) ([]domain.Action, error) {
	m.Content = content
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Actions, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config       *domain.Config
	GlobalConfig *domain.Config
	LocalConfig  *domain.Config
	LoadErr      error
	GlobalErr    error
	LocalErr     error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config or error.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	if m.GlobalConfig != nil {
		return m.GlobalConfig, nil
	}
	return m.Config, nil
}

// LoadLocal returns the configured local config or error.
func (m *MockConfigLoader) LoadLocal() (*domain.Config, error) {
	if m.LocalErr != nil {
		return nil, m.LocalErr
	}
	if m.LocalConfig != nil {
		return m.LocalConfig, nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitLocalErr     error
	InitGlobalErr    error
	InitConfig       *domain.Config
	LocalConfigInfo  domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitLocalCalled  bool
	InitGlobalCalled bool
	InitForce        bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		LocalConfigInfo: domain.ConfigInfo{
			Path:   "/test/.todo.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/git-todo/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetLocalConfigInfo returns the configured local config info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitLocalConfig records the call and returns configured error.
func (m *MockConfigManager) InitLocalConfig(cfg *domain.Config, force bool) error {
	m.InitLocalCalled = true
	m.InitConfig = cfg
	m.InitForce = force
	return m.InitLocalErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config, force bool) error {
	m.InitGlobalCalled = true
	m.InitConfig = cfg
	m.InitForce = force
	return m.InitGlobalErr
}
