package domain

import (
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "all", cfg.UI.DefaultFilter)
	assert.Equal(t, DefaultSubmitKey, cfg.UI.SubmitKey)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		wantErr error
		modify  func(*Config)
		name    string
	}{
		{name: "invalid filter", modify: func(c *Config) { c.UI.DefaultFilter = "done" }, wantErr: ErrInvalidFilter},
		{name: "empty submit key", modify: func(c *Config) { c.UI.SubmitKey = " " }, wantErr: ErrEmptySubmitKey},
		{name: "invalid log level", modify: func(c *Config) { c.Log.Level = "trace" }, wantErr: ErrInvalidLogLevel},
		{name: "empty log level ok", modify: func(c *Config) { c.Log.Level = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfig_InitialFilter(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.UI.DefaultFilter = "active"
	assert.Equal(t, FilterActive, cfg.InitialFilter())

	cfg.UI.DefaultFilter = "nope"
	assert.Equal(t, FilterAll, cfg.InitialFilter())
}

func TestRenderConfigTemplate_IsValidTOML(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.UI.DefaultFilter = "completed"
	cfg.Log.Level = "debug"

	content := RenderConfigTemplate(cfg)

	var parsed Config
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
	assert.Equal(t, "completed", parsed.UI.DefaultFilter)
	assert.Equal(t, DefaultSubmitKey, parsed.UI.SubmitKey)
	assert.Equal(t, "debug", parsed.Log.Level)
}

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/u/.config", "git-todo", "config.toml"), GlobalConfigPath("/home/u/.config"))
	assert.Equal(t, filepath.Join("/work", ".todo.toml"), LocalConfigPath("/work"))
}
