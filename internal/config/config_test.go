package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/pantry/internal/domain"
)

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.NotNil(t, cfg)
	assert.NotEmpty(t, cfg.LogLevel)
	assert.NotEmpty(t, cfg.Prompt)
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "/tmp/pantry.log")
	t.Setenv("PANTRY_TODAY", "2024-12-01")
	t.Setenv("PANTRY_PROMPT", "pantry$ ")
	t.Setenv("PANTRY_SEED", "1")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/pantry.log", cfg.LogFile)
	assert.Equal(t, "2024-12-01", cfg.TodayOverride)
	assert.Equal(t, "pantry$ ", cfg.Prompt)
	assert.True(t, cfg.Seed)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PANTRY_PROMPT=file>\n"), 0600))
	t.Setenv("PANTRY_PROMPT", "")
	require.NoError(t, os.Unsetenv("PANTRY_PROMPT"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file>", cfg.Prompt)
}

func TestLoadMalformedEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.env")
	require.NoError(t, os.WriteFile(path, []byte("PANTRY-PROMPT=x\n"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMalformedDefaultEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PANTRY-PROMPT=x\n"), 0600))
	chdir(t, dir)

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadWithoutDefaultEnvFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoadInvalidToday(t *testing.T) {
	t.Setenv("PANTRY_TODAY", "yesterday")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestToday(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

	cfg := &Config{}
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), cfg.Today(now))

	cfg.TodayOverride = "2024-12-01"
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), cfg.Today(now))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir for older toolchains).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
