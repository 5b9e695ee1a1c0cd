package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/meditrack/meditrack/internal/api"
	"github.com/meditrack/meditrack/internal/core/validate"
	"github.com/meditrack/meditrack/internal/printer"
)

type RegisterCmd struct {
	flags     *Flags
	email     string
	firstName string
	lastName  string
}

// NewRegisterCmd creates a new register command
func NewRegisterCmd(flags *Flags) *RegisterCmd {
	return &RegisterCmd{flags: flags}
}

// Register adds the register command to the application
func (cmd *RegisterCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "register",
		Usage:       "Create a new account",
		UsageText:   "meditrack register --email <email> --first <name> --last <name>",
		Description: "Creates an account on the backend and signs you in. The password is prompted without echo.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "email",
				Usage:       "account email address",
				Required:    true,
				Destination: &cmd.email,
			},
			&cli.StringFlag{
				Name:        "first",
				Usage:       "first name",
				Required:    true,
				Destination: &cmd.firstName,
			},
			&cli.StringFlag{
				Name:        "last",
				Usage:       "last name",
				Required:    true,
				Destination: &cmd.lastName,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RegisterCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if err := validate.Email(cmd.email); err != nil {
		return err
	}

	password, err := readPassword("Password")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirm password")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	res, err := cmd.flags.API.Auth.Register(ctx, api.RegisterRequest{
		Email:     cmd.email,
		Password:  password,
		FirstName: cmd.firstName,
		LastName:  cmd.lastName,
	})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	cmd.flags.Sessions.Login(res.Token, userFromAuth(res))

	p.Success("Account created", res.Email)
	return nil
}
