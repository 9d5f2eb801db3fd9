package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewApp builds the root command with its global flags, subcommands and the
// default TUI action. Lifecycle hooks are attached by the caller.
func NewApp(flags *Flags, version string) *cli.Command {
	app := &cli.Command{
		Name:      "simpletodo",
		Usage:     "A small in-memory to-do list for the terminal",
		UsageText: "simpletodo [global options] command [command options]",
		Description: `simpletodo keeps a to-do list for the lifetime of the process.

Add tasks, optionally with a due date picked from the calendar, mark them
done, delete them and page through them sorted by due date. Nothing is saved
when you quit.

Run 'simpletodo' with no arguments to open the list.
Run 'simpletodo init' to write a config file.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("SIMPLETODO_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("SIMPLETODO_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("SIMPLETODO_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "profile",
				Usage:       "list profile (basic, dated, sorted, paged); overrides the config file",
				Sources:     cli.EnvVars("SIMPLETODO_PROFILE"),
				Destination: &flags.Profile,
			},
		},
	}

	app = NewInitCmd(flags).Register(app)
	app = NewConfigValidateCmd(flags).Register(app)

	tuiCmd := NewTuiCmd(flags)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'simpletodo --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	return app
}
