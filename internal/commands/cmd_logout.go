package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/meditrack/meditrack/internal/printer"
)

type LogoutCmd struct {
	flags *Flags
}

// NewLogoutCmd creates a new logout command
func NewLogoutCmd(flags *Flags) *LogoutCmd {
	return &LogoutCmd{flags: flags}
}

// Register adds the logout command to the application
func (cmd *LogoutCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "logout",
		Usage:       "Sign out and clear cached credentials",
		UsageText:   "meditrack logout",
		Description: "Clears the stored token and user cache. Safe to run when not signed in.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *LogoutCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	cmd.flags.Sessions.Logout()

	p.Successf("Signed out")
	return nil
}
