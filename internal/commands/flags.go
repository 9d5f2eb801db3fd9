package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/simpletodo/internal/core/config"
	"github.com/colonyops/simpletodo/internal/core/styles"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Profile    string

	// Config is populated by LoadConfig. Commands that rewrite the config
	// file never load it.
	Config *config.Config
}

// LoadConfig reads and validates the config file, applies the --profile
// override and activates the configured theme. The result is cached on f.
func (f *Flags) LoadConfig() (*config.Config, error) {
	if f.Config != nil {
		return f.Config, nil
	}

	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if f.Profile != "" {
		cfg.Profile = f.Profile
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("--profile: %w", err)
		}
	}

	// Validation ensures the theme name is valid.
	palette, _ := styles.GetPalette(cfg.TUI.Theme)
	styles.SetTheme(palette)

	f.Config = cfg
	return cfg, nil
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "simpletodo", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/simpletodo/simpletodo.log
// On Linux: $XDG_STATE_HOME/simpletodo/simpletodo.log (defaults to ~/.local/state/simpletodo/simpletodo.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "simpletodo", "simpletodo.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "simpletodo", "simpletodo.log")
	}

	return filepath.Join(home, ".local", "state", "simpletodo", "simpletodo.log")
}
