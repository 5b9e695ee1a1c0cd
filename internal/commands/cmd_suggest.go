package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/meditrack/meditrack/internal/printer"
)

type SuggestCmd struct {
	flags *Flags
}

// NewSuggestCmd creates a new suggest command
func NewSuggestCmd(flags *Flags) *SuggestCmd {
	return &SuggestCmd{flags: flags}
}

// Register adds the suggest command to the application
func (cmd *SuggestCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "suggest",
		Usage:       "Look up autocomplete suggestions",
		UsageText:   "meditrack suggest <subcommand> [query]",
		Description: "Queries the backend's suggestion lists for medicine names, medical tests, and record types.",
		Commands: []*cli.Command{
			{
				Name:      "medicines",
				Usage:     "Suggest medicine names",
				UsageText: "meditrack suggest medicines [query]",
				Action:    cmd.runMedicines,
			},
			{
				Name:      "tests",
				Usage:     "Suggest medical test names",
				UsageText: "meditrack suggest tests [query]",
				Action:    cmd.runTests,
			},
			{
				Name:   "record-types",
				Usage:  "List the known health record types",
				Action: cmd.runRecordTypes,
			},
		},
	})

	return app
}

func (cmd *SuggestCmd) runMedicines(ctx context.Context, c *cli.Command) error {
	names, err := cmd.flags.API.Suggestions.Medicines(ctx, c.Args().First())
	if err != nil {
		return fmt.Errorf("suggest medicines: %w", err)
	}
	return cmd.print(ctx, c, names)
}

func (cmd *SuggestCmd) runTests(ctx context.Context, c *cli.Command) error {
	names, err := cmd.flags.API.Suggestions.MedicalTests(ctx, c.Args().First())
	if err != nil {
		return fmt.Errorf("suggest tests: %w", err)
	}
	return cmd.print(ctx, c, names)
}

func (cmd *SuggestCmd) runRecordTypes(ctx context.Context, c *cli.Command) error {
	names, err := cmd.flags.API.Suggestions.RecordTypes(ctx)
	if err != nil {
		return fmt.Errorf("list record types: %w", err)
	}
	return cmd.print(ctx, c, names)
}

func (cmd *SuggestCmd) print(ctx context.Context, c *cli.Command, names []string) error {
	if len(names) == 0 {
		printer.Ctx(ctx).Infof("No suggestions")
		return nil
	}
	for _, name := range names {
		_, _ = fmt.Fprintln(c.Root().Writer, name)
	}
	return nil
}
