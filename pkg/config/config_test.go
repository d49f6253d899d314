package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/limbo/lifetrack/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("LT_FROM_FILE=file\nLT_OVERRIDDEN=file\nLT_NUMBER=42\nLT_BAD_NUMBER=x\nLT_UID=1001\n"), 0o600))
	t.Setenv("CONFIG_PATH", envPath)
	t.Setenv("LT_OVERRIDDEN", "env")

	cfg := config.New()
	assert.Equal(t, "file", cfg.GetString("LT_FROM_FILE"))
	assert.Equal(t, "env", cfg.GetString("LT_OVERRIDDEN"))
	assert.Equal(t, "fallback", cfg.GetStringOr("LT_MISSING", "fallback"))
	assert.Equal(t, 42, cfg.GetIntOr("LT_NUMBER", 7))
	assert.Equal(t, 7, cfg.GetIntOr("LT_BAD_NUMBER", 7))
	assert.Equal(t, 7, cfg.GetIntOr("LT_MISSING", 7))

	uid, ok := cfg.GetInt64("LT_UID")
	assert.True(t, ok)
	assert.Equal(t, int64(1001), uid)
	_, ok = cfg.GetInt64("LT_MISSING")
	assert.False(t, ok)
}
