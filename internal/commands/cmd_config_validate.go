package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/tandemview/tandem/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "tandem config validate [options]",
				Description: "Validates the loaded configuration: timing values, score thresholds, theme name, and pane layout.",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type validationReport struct {
	Valid  bool              `json:"valid"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)

	report := validationReport{Valid: err == nil}
	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		report.Fields = make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			report.Fields[fe.Field] = fe.Err.Error()
		}
	} else if err != nil {
		report.Fields = map[string]string{"config": err.Error()}
	}

	if cmd.jsonOutput {
		if werr := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, report); werr != nil {
			return werr
		}
		return err
	}

	out := c.Root().Writer
	if err == nil {
		_, _ = fmt.Fprintln(out, "configuration is valid")
		return nil
	}

	_, _ = fmt.Fprintln(out, "configuration is invalid:")
	for field, msg := range report.Fields {
		_, _ = fmt.Fprintf(out, "  %s: %s\n", field, msg)
	}
	return err
}
