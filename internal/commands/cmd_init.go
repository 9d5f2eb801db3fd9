package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	initcmd "github.com/colonyops/simpletodo/internal/commands/init"
	"github.com/colonyops/simpletodo/internal/core/logging"
)

type InitCmd struct {
	flags *Flags
	force bool
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Write a default configuration file",
		UsageText: "simpletodo init [options]",
		Description: `Writes the default configuration to the path given by --config.

When a config file already exists you are asked before it is replaced and a
backup is kept next to it as <config>.bak. Without a terminal the command
refuses to overwrite unless --force is given.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	wizard := initcmd.NewWizard(initcmd.WizardOptions{
		ConfigPath:  cmd.flags.ConfigPath,
		Force:       cmd.force,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}, logging.Component("init"))

	res, err := wizard.Run(ctx)
	if err != nil {
		return err
	}

	w := c.Root().Writer
	if !res.Written {
		_, _ = fmt.Fprintln(w, "Init cancelled")
		return nil
	}

	if res.BackupPath != "" {
		_, _ = fmt.Fprintf(w, "Backed up existing config to %s\n", res.BackupPath)
	}
	_, _ = fmt.Fprintf(w, "Wrote config to %s\n", res.ConfigPath)
	log.Debug().Str("path", res.ConfigPath).Msg("init complete")
	return nil
}
