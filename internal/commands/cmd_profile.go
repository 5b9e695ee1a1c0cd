package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/meditrack/meditrack/internal/printer"
)

type ProfileCmd struct {
	flags     *Flags
	firstName string
	lastName  string
	phone     string
}

// NewProfileCmd creates a new profile command
func NewProfileCmd(flags *Flags) *ProfileCmd {
	return &ProfileCmd{flags: flags}
}

// Register adds the profile command to the application
func (cmd *ProfileCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "profile",
		Usage:       "Show and update your profile",
		UsageText:   "meditrack profile <subcommand>",
		Description: "Shows the signed-in user's profile, updates it, or toggles two-factor authentication.",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the signed-in user's profile",
				Action: cmd.runShow,
			},
			{
				Name:      "update",
				Usage:     "Update name and phone number",
				UsageText: "meditrack profile update [--first <name>] [--last <name>] [--phone <number>]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "first",
						Usage:       "first name",
						Destination: &cmd.firstName,
					},
					&cli.StringFlag{
						Name:        "last",
						Usage:       "last name",
						Destination: &cmd.lastName,
					},
					&cli.StringFlag{
						Name:        "phone",
						Usage:       "phone number",
						Destination: &cmd.phone,
					},
				},
				Action: cmd.runUpdate,
			},
			{
				Name:   "mfa",
				Usage:  "Toggle two-factor authentication",
				Action: cmd.runToggleMFA,
			},
		},
	})

	return app
}

func (cmd *ProfileCmd) runShow(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	user, err := cmd.flags.API.Users.Me(ctx)
	if err != nil {
		return fmt.Errorf("fetch profile: %w", err)
	}
	cmd.flags.Sessions.SetUser(user)

	p.Section("Profile")
	p.Printf("Name:   %s", user.Name())
	p.Printf("Email:  %s", user.Email())
	if phone, ok := user["phoneNumber"].(string); ok && phone != "" {
		p.Printf("Phone:  %s", phone)
	}
	status := "disabled"
	if user.MFAEnabled() {
		status = "enabled"
	}
	p.Printf("2FA:    %s", status)

	return nil
}

func (cmd *ProfileCmd) runUpdate(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if cmd.firstName == "" && cmd.lastName == "" && cmd.phone == "" {
		return fmt.Errorf("nothing to update: pass at least one of --first, --last, --phone")
	}

	// Unset name flags keep their current values.
	current, err := cmd.flags.API.Users.Me(ctx)
	if err != nil {
		return fmt.Errorf("fetch profile: %w", err)
	}
	if cmd.firstName == "" {
		cmd.firstName, _ = current["firstName"].(string)
	}
	if cmd.lastName == "" {
		cmd.lastName, _ = current["lastName"].(string)
	}

	user, err := cmd.flags.API.Users.UpdateProfile(ctx, cmd.firstName, cmd.lastName, cmd.phone)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	cmd.flags.Sessions.UpdateUser(user)

	p.Success("Profile updated", user.Name())
	return nil
}

func (cmd *ProfileCmd) runToggleMFA(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	user, err := cmd.flags.API.Users.ToggleMFA(ctx)
	if err != nil {
		return fmt.Errorf("toggle 2fa: %w", err)
	}
	cmd.flags.Sessions.UpdateUser(user)

	if user.MFAEnabled() {
		p.Successf("Two-factor authentication enabled")
	} else {
		p.Successf("Two-factor authentication disabled")
	}
	return nil
}
