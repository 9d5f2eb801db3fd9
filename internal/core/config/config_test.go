package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/simpletodo/internal/core/task"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, task.DefaultProfile, cfg.Profile)
		assert.Equal(t, "tokyo-night", cfg.TUI.Theme)
		assert.Equal(t, WeekStartSunday, cfg.TUI.WeekStart)
		assert.False(t, cfg.TUI.CalendarOn)
		assert.Zero(t, cfg.PageSize)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
profile: sorted
page_size: 8
tui:
  theme: gruvbox
  calendar_on: true
  week_start: monday
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sorted", cfg.Profile)
	assert.Equal(t, 8, cfg.PageSize)
	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.True(t, cfg.TUI.CalendarOn)
	assert.Equal(t, time.Monday, cfg.FirstWeekday())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "tui:\n  calendar_on: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, task.DefaultProfile, cfg.Profile)
	assert.Equal(t, "tokyo-night", cfg.TUI.Theme)
	assert.Equal(t, time.Sunday, cfg.FirstWeekday())
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "profile: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{name: "defaults are valid"},
		{
			name:      "unknown profile",
			mutate:    func(c *Config) { c.Profile = "kanban" },
			wantField: "profile",
		},
		{
			name:      "negative page size",
			mutate:    func(c *Config) { c.PageSize = -1 },
			wantField: "page_size",
		},
		{
			name:      "huge page size",
			mutate:    func(c *Config) { c.PageSize = 500 },
			wantField: "page_size",
		},
		{
			name:      "unknown theme",
			mutate:    func(c *Config) { c.TUI.Theme = "solarized" },
			wantField: "tui.theme",
		},
		{
			name:      "unknown week start",
			mutate:    func(c *Config) { c.TUI.WeekStart = "friday" },
			wantField: "tui.week_start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}

			err := cfg.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.NotEmpty(t, fieldErrs)
			assert.Contains(t, fieldErrs[0].Field, tt.wantField)
		})
	}
}

func TestListProfile(t *testing.T) {
	t.Run("profile default page size", func(t *testing.T) {
		cfg := DefaultConfig()
		p := cfg.ListProfile()
		assert.Equal(t, "paged", p.Name)
		assert.Equal(t, 5, p.PageSize)
	})

	t.Run("page size override", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.PageSize = 7
		assert.Equal(t, 7, cfg.ListProfile().PageSize)
	})

	t.Run("override ignored for unpaged profile", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Profile = "dated"
		cfg.PageSize = 7
		assert.Zero(t, cfg.ListProfile().PageSize)
	})
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TUI.CalendarOn = true

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "profile: paged")

	path := writeConfig(t, string(data))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}
