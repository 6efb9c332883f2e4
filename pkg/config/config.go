// Package config persists launcher preferences as a flat JSON document.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"hemttrun/pkg/log"

	"github.com/spf13/afero"
)

// AppFs is the filesystem used for config file IO. Tests swap in a memory
// filesystem.
var AppFs afero.Fs = afero.NewOsFs()

// Config holds the persisted user preferences.
type Config struct {
	HemttPath       string `json:"hemtt_path"`
	ProjectDir      string `json:"project_dir"`
	Arma3Executable string `json:"arma3_executable"`
	DarkMode        bool   `json:"dark_mode"`
	Verbose         bool   `json:"verbose"`
	Pedantic        bool   `json:"pedantic"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return Config{
		HemttPath:  "hemtt",
		ProjectDir: wd,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(base, "hemttrun", "config.json")
}

// Load reads the file at path and merges its keys over the defaults. Keys
// absent from the file keep their default values; unknown keys are ignored.
// Any failure (missing file, unreadable, malformed JSON) yields the plain
// defaults. Loading never fails.
func Load(path string, logger log.Logger) Config {
	cfg := Default()
	data, err := afero.ReadFile(AppFs, path)
	if err != nil {
		logger.Debug("config file not loaded, using defaults", "path", path, "error", err)
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		logger.Warn("malformed config file, using defaults", "path", path, "error", err)
		return Default()
	}
	return cfg
}

// Save writes cfg to path as indented JSON, creating parent directories as
// needed. Persistence is best-effort; callers typically log the error and
// move on.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := AppFs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}
	if err := afero.WriteFile(AppFs, path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Set updates the named key on cfg from its string representation, as
// entered on the command line.
func Set(cfg *Config, key, value string) error {
	switch key {
	case "hemtt_path":
		cfg.HemttPath = value
	case "project_dir":
		cfg.ProjectDir = value
	case "arma3_executable":
		cfg.Arma3Executable = value
	case "dark_mode", "verbose", "pedantic":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects a boolean, got %q", key, value)
		}
		switch key {
		case "dark_mode":
			cfg.DarkMode = b
		case "verbose":
			cfg.Verbose = b
		case "pedantic":
			cfg.Pedantic = b
		}
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
