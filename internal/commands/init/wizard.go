// Package initcmd writes a starter configuration file.
package initcmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"

	"github.com/colonyops/simpletodo/internal/core/config"
)

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(title, description string) (bool, error)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath  string
	Force       bool // overwrite existing config without asking
	Interactive bool // stdin is a terminal and prompts may be shown

	// Confirm defaults to a huh confirm prompt.
	Confirm ConfirmFunc
}

// Result describes what the wizard did.
type Result struct {
	Written    bool
	ConfigPath string
	BackupPath string
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
	log  zerolog.Logger
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions, log zerolog.Logger) *Wizard {
	if opts.Confirm == nil {
		opts.Confirm = huhConfirm
	}
	return &Wizard{opts: opts, log: log}
}

// Run writes the default configuration, asking before an existing file is
// replaced. A declined prompt is not an error; Result.Written is false.
func (w *Wizard) Run(_ context.Context) (Result, error) {
	res := Result{ConfigPath: w.opts.ConfigPath}

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if !w.opts.Interactive {
			return res, fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		overwrite, err := w.opts.Confirm(
			"Config file already exists",
			w.opts.ConfigPath+"\nOverwrite? (a backup will be created)",
		)
		if err != nil {
			return res, err
		}
		if !overwrite {
			w.log.Info().Str("path", w.opts.ConfigPath).Msg("init cancelled")
			return res, nil
		}
	}

	backup, err := BackupConfig(w.opts.ConfigPath)
	if err != nil {
		return res, err
	}
	res.BackupPath = backup

	data, err := config.DefaultConfig().Marshal()
	if err != nil {
		return res, err
	}
	if err := WriteConfig(w.opts.ConfigPath, data); err != nil {
		return res, err
	}

	w.log.Info().
		Str("path", w.opts.ConfigPath).
		Str("backup", backup).
		Msg("config written")

	res.Written = true
	return res, nil
}

func huhConfirm(title, description string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Value(&ok).
		Run()
	return ok, err
}
