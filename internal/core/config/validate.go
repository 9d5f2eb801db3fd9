package config

import (
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/simpletodo/internal/core/styles"
	"github.com/colonyops/simpletodo/internal/core/task"
	"github.com/colonyops/simpletodo/internal/core/validate"
)

// maxPageSize keeps a page within a normal terminal height.
const maxPageSize = 50

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("profile", c.Profile, validate.OneOf(task.ProfileNames()...)),
		c.validatePageSize(),
		criterio.Run("tui.theme", c.TUI.Theme, validate.OneOf(styles.ThemeNames()...)),
		criterio.Run("tui.week_start", c.TUI.WeekStart, validate.OneOf(WeekStartSunday, WeekStartMonday)),
	)
}

func (c *Config) validatePageSize() error {
	switch {
	case c.PageSize < 0:
		return criterio.NewFieldErrors("page_size", fmt.Errorf("must not be negative"))
	case c.PageSize > maxPageSize:
		return criterio.NewFieldErrors("page_size", fmt.Errorf("must be at most %d", maxPageSize))
	}
	return nil
}
