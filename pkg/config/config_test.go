package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"hemttrun/pkg/test"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupFs swaps in a memory filesystem for the duration of the test.
func setupFs(t *testing.T) afero.Fs {
	t.Helper()
	old := AppFs
	AppFs = afero.NewMemMapFs()
	t.Cleanup(func() { AppFs = old })
	return AppFs
}

func TestDefault(t *testing.T) {
	cfg := Default()

	wd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, "hemtt", cfg.HemttPath)
	assert.Equal(t, wd, cfg.ProjectDir)
	assert.Empty(t, cfg.Arma3Executable)
	assert.False(t, cfg.DarkMode)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Pedantic)
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		setupFs(t)
		logger := test.NewMockLogger(slog.LevelDebug)

		cfg := Load("/cfg/config.json", logger)

		assert.Equal(t, Default(), cfg)
		assert.True(t, logger.HasMessage("using defaults"))
	})

	t.Run("present keys override defaults, absent keys keep them", func(t *testing.T) {
		fs := setupFs(t)
		test.CreateTestFile(t, fs, "/cfg/config.json",
			`{"hemtt_path": "/opt/hemtt/hemtt", "dark_mode": true}`)

		cfg := Load("/cfg/config.json", test.NewMockLogger(slog.LevelInfo))

		assert.Equal(t, "/opt/hemtt/hemtt", cfg.HemttPath)
		assert.True(t, cfg.DarkMode)
		assert.Equal(t, Default().ProjectDir, cfg.ProjectDir)
		assert.False(t, cfg.Verbose)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		fs := setupFs(t)
		test.CreateTestFile(t, fs, "/cfg/config.json",
			`{"verbose": true, "some_future_key": 42}`)

		cfg := Load("/cfg/config.json", test.NewMockLogger(slog.LevelInfo))

		assert.True(t, cfg.Verbose)
	})

	t.Run("malformed JSON yields defaults with a warning", func(t *testing.T) {
		fs := setupFs(t)
		test.CreateTestFile(t, fs, "/cfg/config.json", `{"hemtt_path": `)
		logger := test.NewMockLogger(slog.LevelWarn)

		cfg := Load("/cfg/config.json", logger)

		assert.Equal(t, Default(), cfg)
		assert.True(t, logger.HasMessage("malformed config file"))
	})

	t.Run("non-object JSON yields defaults", func(t *testing.T) {
		fs := setupFs(t)
		test.CreateTestFile(t, fs, "/cfg/config.json", `[1, 2, 3]`)

		cfg := Load("/cfg/config.json", test.NewMockLogger(slog.LevelInfo))

		assert.Equal(t, Default(), cfg)
	})
}

func TestSave(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		setupFs(t)

		want := Config{
			HemttPath:       "hemtt",
			ProjectDir:      "/work/mod",
			Arma3Executable: "/games/arma3.exe",
			DarkMode:        true,
			Verbose:         true,
		}
		require.NoError(t, Save("/cfg/nested/config.json", want))

		got := Load("/cfg/nested/config.json", test.NewMockLogger(slog.LevelInfo))
		assert.Equal(t, want, got)
	})

	t.Run("writes indented JSON with snake_case keys", func(t *testing.T) {
		fs := setupFs(t)

		require.NoError(t, Save("/cfg/config.json", Default()))

		data, err := afero.ReadFile(fs, "/cfg/config.json")
		require.NoError(t, err)
		assert.Contains(t, string(data), `"hemtt_path"`)
		assert.Contains(t, string(data), "\n  ")

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Contains(t, raw, "project_dir")
		assert.Contains(t, raw, "dark_mode")
	})
}

func TestSet(t *testing.T) {
	t.Run("string keys", func(t *testing.T) {
		cfg := Default()
		require.NoError(t, Set(&cfg, "hemtt_path", "/usr/bin/hemtt"))
		require.NoError(t, Set(&cfg, "project_dir", "/work/mod"))
		require.NoError(t, Set(&cfg, "arma3_executable", "/games/arma3.exe"))

		assert.Equal(t, "/usr/bin/hemtt", cfg.HemttPath)
		assert.Equal(t, "/work/mod", cfg.ProjectDir)
		assert.Equal(t, "/games/arma3.exe", cfg.Arma3Executable)
	})

	t.Run("boolean keys", func(t *testing.T) {
		cfg := Default()
		require.NoError(t, Set(&cfg, "dark_mode", "true"))
		require.NoError(t, Set(&cfg, "verbose", "1"))
		require.NoError(t, Set(&cfg, "pedantic", "false"))

		assert.True(t, cfg.DarkMode)
		assert.True(t, cfg.Verbose)
		assert.False(t, cfg.Pedantic)
	})

	t.Run("invalid boolean", func(t *testing.T) {
		cfg := Default()
		err := Set(&cfg, "verbose", "maybe")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "expects a boolean")
	})

	t.Run("unknown key", func(t *testing.T) {
		cfg := Default()
		err := Set(&cfg, "nonsense", "value")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown config key")
	})
}
