package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/simpletodo/internal/core/logging"
	"github.com/colonyops/simpletodo/internal/core/task"
	"github.com/colonyops/simpletodo/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(ctx context.Context, _ *cli.Command) error {
	cfg, err := cmd.flags.LoadConfig()
	if err != nil {
		return err
	}
	profile := cfg.ListProfile()
	ctx = logging.WithProfile(ctx, profile.Name)

	list := task.NewList(profile, task.WithLogger(logging.Component("list")))

	deps := tui.Deps{
		List: list,
	}
	opts := tui.Opts{
		Context:      ctx,
		CalendarOn:   cfg.TUI.CalendarOn,
		FirstWeekday: cfg.FirstWeekday(),
	}

	log.Info().Ctx(ctx).
		Str("profile", profile.Name).
		Int("page_size", profile.PageSize).
		Msg("starting tui")

	p := tea.NewProgram(tui.New(deps, opts), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if m, ok := finalModel.(tui.Model); ok {
		log.Info().Ctx(ctx).Int("tasks", m.TaskCount()).Msg("tui exited")
	}
	return nil
}
