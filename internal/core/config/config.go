// Package config handles configuration loading and validation for simpletodo.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/simpletodo/internal/core/styles"
	"github.com/colonyops/simpletodo/internal/core/task"
)

// Week start values for the calendar.
const (
	WeekStartSunday = "sunday"
	WeekStartMonday = "monday"
)

// Config holds the application configuration.
type Config struct {
	Profile  string    `yaml:"profile"`
	PageSize int       `yaml:"page_size"` // 0 keeps the profile default
	TUI      TUIConfig `yaml:"tui"`
}

// TUIConfig holds presentation settings.
type TUIConfig struct {
	Theme      string `yaml:"theme"`
	CalendarOn bool   `yaml:"calendar_on"` // start with the due date calendar shown
	WeekStart  string `yaml:"week_start"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Profile: task.DefaultProfile,
		TUI: TUIConfig{
			Theme:     styles.DefaultTheme,
			WeekStart: WeekStartSunday,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Profile == "" {
		c.Profile = defaults.Profile
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.WeekStart == "" {
		c.TUI.WeekStart = defaults.TUI.WeekStart
	}
}

// ListProfile resolves the configured profile with any page size override.
// Call after Validate.
func (c *Config) ListProfile() task.Profile {
	p, ok := task.LookupProfile(c.Profile)
	if !ok {
		p, _ = task.LookupProfile(task.DefaultProfile)
	}

	// Page size only applies to profiles that paginate.
	if p.PageSize > 0 {
		p = p.WithPageSize(c.PageSize)
	}
	return p
}

// FirstWeekday returns the calendar's first day of the week.
func (c *Config) FirstWeekday() time.Weekday {
	if c.TUI.WeekStart == WeekStartMonday {
		return time.Monday
	}
	return time.Sunday
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
