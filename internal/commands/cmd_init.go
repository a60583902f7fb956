package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	initcmd "github.com/tandemview/tandem/internal/commands/init"
)

type InitCmd struct {
	flags *Flags
	yes   bool
	force bool
	theme string
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Initialize tandem configuration with an interactive wizard",
		UsageText: "tandem init [options]",
		Description: `Sets up tandem for first-time use with an interactive wizard.

The wizard generates ~/.config/tandem/config.yaml with the chosen
theme, markdown style, and pane layout.

Use --yes to accept all defaults without prompts.
Use --force to overwrite existing configuration.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
			&cli.StringFlag{
				Name:        "theme",
				Usage:       "color theme to write to the config",
				Destination: &cmd.theme,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, c *cli.Command) error {
	wizard := initcmd.NewWizard(initcmd.WizardOptions{
		ConfigPath: cmd.flags.ConfigPath,
		Yes:        cmd.yes,
		Force:      cmd.force,
		Theme:      cmd.theme,
	})
	return wizard.Run(ctx)
}
