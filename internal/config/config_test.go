// SPDX-License-Identifier: MIT

package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/internal/config"
)

func load(t *testing.T, args ...string) (config.Settings, error) {
	t.Helper()

	return config.Load(config.NewFlagSet("lvpath"), args)
}

func TestLoad_Defaults(t *testing.T) {
	s, err := load(t)
	require.NoError(t, err)

	assert.Empty(t, s.Graph)
	assert.Empty(t, s.Sources)
	assert.Nil(t, s.Target)
	assert.Equal(t, 0, s.HeapDemo)
	assert.Equal(t, int64(1), s.Seed)
	assert.True(t, math.IsInf(s.MaxDistance, 1))
	assert.Equal(t, "info", s.LogLevel)
	assert.False(t, s.Letters)
}

func TestLoad_Flags(t *testing.T) {
	s, err := load(t,
		"--source", "0,2", "--source", "4",
		"--target", "3",
		"--heap-demo", "7",
		"--max-distance", "12.5",
		"--letters",
	)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 4}, s.Sources)
	require.NotNil(t, s.Target)
	assert.Equal(t, 3, *s.Target)
	assert.Equal(t, 7, s.HeapDemo)
	assert.Equal(t, 12.5, s.MaxDistance)
	assert.True(t, s.Letters)
}

func TestLoad_EnvOverridesFileAndFlagOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lvpath.toml")
	require.NoError(t, os.WriteFile(path, []byte("heap-demo = 3\nseed = 9\nlog-level = \"warn\"\n"), 0o600))

	t.Setenv("LVPATH_HEAP_DEMO", "5")
	t.Setenv("LVPATH_SOURCE", "1 2")
	t.Setenv("LVPATH_LOG_LEVEL", "debug")

	s, err := load(t, "--config", path, "--log-level", "error")
	require.NoError(t, err)

	assert.Equal(t, 5, s.HeapDemo)
	assert.Equal(t, int64(9), s.Seed)
	assert.Equal(t, []int{1, 2}, s.Sources)
	assert.Equal(t, "error", s.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	_, err := load(t, "--source", "A")
	assert.ErrorIs(t, err, config.ErrInvalidSetting)

	_, err = load(t, "--target", "x")
	assert.ErrorIs(t, err, config.ErrInvalidSetting)

	_, err = load(t, "--heap-demo", "-1")
	assert.ErrorIs(t, err, config.ErrInvalidSetting)

	_, err = load(t, "--max-distance", "-2")
	assert.ErrorIs(t, err, config.ErrInvalidSetting)

	_, err = load(t, "--no-such-flag")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse flags")

	_, err = load(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	_, err = load(t, "--help")
	assert.ErrorIs(t, err, pflag.ErrHelp)
}
