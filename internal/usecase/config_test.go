package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/git-todo/internal/domain"
	"github.com/runoshun/git-todo/internal/testutil"
	"github.com/runoshun/git-todo/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	manager := testutil.NewMockConfigManager()
	manager.LocalConfigInfo = domain.ConfigInfo{
		Path:    "/work/.todo.toml",
		Content: "[ui]\ndefault_filter = \"active\"\n",
		Exists:  true,
	}
	loader := testutil.NewMockConfigLoader()
	loader.Config.UI.DefaultFilter = "active"

	out, err := usecase.NewShowConfig(manager, loader).Execute(context.Background(), usecase.ShowConfigInput{})
	require.NoError(t, err)

	assert.True(t, out.LocalConfig.Exists)
	assert.Equal(t, "/work/.todo.toml", out.LocalConfig.Path)
	assert.False(t, out.GlobalConfig.Exists)
	assert.Equal(t, "active", out.Effective.UI.DefaultFilter)
}

func TestShowConfig_Execute_LoadError(t *testing.T) {
	loader := testutil.NewMockConfigLoader()
	loader.LoadErr = errors.New("boom")

	_, err := usecase.NewShowConfig(testutil.NewMockConfigManager(), loader).Execute(context.Background(), usecase.ShowConfigInput{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestInitConfig_Execute(t *testing.T) {
	t.Run("creates local config", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		require.NoError(t, err)
		assert.Equal(t, "/test/.todo.toml", out.Path)
		assert.True(t, manager.InitLocalCalled)
		assert.False(t, manager.InitGlobalCalled)
		assert.Equal(t, domain.NewDefaultConfig(), manager.InitConfig)
	})

	t.Run("creates global config with force", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		cfg := domain.NewDefaultConfig()
		cfg.Log.Level = "debug"

		out, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{
			Config: cfg,
			Global: true,
			Force:  true,
		})

		require.NoError(t, err)
		assert.Equal(t, "/home/test/.config/git-todo/config.toml", out.Path)
		assert.True(t, manager.InitGlobalCalled)
		assert.True(t, manager.InitForce)
		assert.Same(t, cfg, manager.InitConfig)
	})

	t.Run("returns error when config already exists", func(t *testing.T) {
		manager := testutil.NewMockConfigManager()
		manager.InitLocalErr = domain.ErrConfigExists

		_, err := usecase.NewInitConfig(manager).Execute(context.Background(), usecase.InitConfigInput{})

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})
}
