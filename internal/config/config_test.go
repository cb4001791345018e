package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blueprint-ai/backend/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.AppPort)
	assert.Equal(t, "/data/blueprint.db", cfg.DatabasePath)
	assert.Equal(t, "gpt-4.1", cfg.InitialModel)
	assert.Equal(t, 20000, cfg.InitialMaxTokens)
	assert.Equal(t, 4000, cfg.RefineMaxTokens)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, "Vue", cfg.DefaultFramework)
	assert.Equal(t, "ElementPlus", cfg.DefaultComponentLibrary)
	assert.InDelta(t, 0.5, cfg.DefaultTemperature, 0.0001)
	assert.Equal(t, 128, cfg.SchemaCacheSize)
	// The key has no default on purpose; generation stays disabled until
	// it is provided.
	assert.Empty(t, cfg.AIAPIKey)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9100")
	t.Setenv("AI_BASE_URL", "https://api.example.com/v1")
	t.Setenv("REFINE_MODEL", "gpt-4o-mini")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.AppPort)
	assert.Equal(t, "https://api.example.com/v1", cfg.AIBaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.RefineModel)
}
