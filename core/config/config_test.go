package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Falcon4_CT.xml", cfg.Paths.CatalogFile)
	assert.Equal(t, "parents.txt", cfg.Paths.ReportFile)
	assert.Equal(t, "KoreaObj", cfg.Paths.TextureDir)
	assert.Equal(t, "KoreaObj_HiRes", cfg.Paths.HighResTextureDir)
	assert.Empty(t, cfg.Paths.RulesFile)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "bms-manager.db", cfg.History.Path)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PATHS_CATALOG_FILE", "/data/Falcon4_CT.xml")
	t.Setenv("PATHS_TEXTURE_DIR", "/data/KoreaObj")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HISTORY_PATH", "")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/data/Falcon4_CT.xml", cfg.Paths.CatalogFile)
	assert.Equal(t, "/data/KoreaObj", cfg.Paths.TextureDir)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Explicitly empty disables history.
	assert.Empty(t, cfg.History.Path)

	// Untouched keys keep their defaults.
	assert.Equal(t, "parents.txt", cfg.Paths.ReportFile)
}
