package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/diffreport/internal/config"
	"github.com/renato0307/diffreport/internal/logging"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestAfterApply_LeavesEnvironmentAlone(t *testing.T) {
	unsetEnv(t, "DIFFREPORT_DEBUG", "DIFFREPORT_DEBUG_FILE", "DIFFREPORT_MAX_LOG_FILES")
	previous := logging.Logger
	t.Cleanup(func() { logging.Logger = previous })

	cli := &CLI{
		Debug:       true,
		DebugFile:   filepath.Join(t.TempDir(), "debug.log"),
		MaxLogFiles: 5,
	}
	cli.SetSettings(&config.Settings{})

	require.NoError(t, cli.AfterApply())
	t.Cleanup(func() { cli.Close() })

	require.NotNil(t, cli.Container)
	for _, key := range []string{"DIFFREPORT_DEBUG", "DIFFREPORT_DEBUG_FILE", "DIFFREPORT_MAX_LOG_FILES"} {
		_, set := os.LookupEnv(key)
		assert.False(t, set, key)
	}
}

func TestAfterApply_SettingsEnableDebug(t *testing.T) {
	unsetEnv(t, "DIFFREPORT_DEBUG", "DIFFREPORT_DEBUG_FILE", "DIFFREPORT_MAX_LOG_FILES")
	previous := logging.Logger
	t.Cleanup(func() { logging.Logger = previous })

	enabled := true
	maxLogFiles := 7
	cli := &CLI{
		DebugFile:   filepath.Join(t.TempDir(), "debug.log"),
		MaxLogFiles: logging.DefaultMaxLogFiles,
	}
	cli.SetSettings(&config.Settings{Debug: &enabled, MaxLogFiles: &maxLogFiles})

	require.NoError(t, cli.AfterApply())

	assert.True(t, cli.Debug)
	assert.Equal(t, 7, cli.MaxLogFiles)
}
