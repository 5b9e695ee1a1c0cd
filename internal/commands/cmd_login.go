package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/meditrack/meditrack/internal/api"
	"github.com/meditrack/meditrack/internal/core/session"
	"github.com/meditrack/meditrack/internal/core/validate"
	"github.com/meditrack/meditrack/internal/printer"
)

type LoginCmd struct {
	flags *Flags
	email string
}

// NewLoginCmd creates a new login command
func NewLoginCmd(flags *Flags) *LoginCmd {
	return &LoginCmd{flags: flags}
}

// Register adds the login command to the application
func (cmd *LoginCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "login",
		Usage:     "Sign in to your account",
		UsageText: "meditrack login --email <email>",
		Description: `Signs in with email and password. The password is prompted without echo.

Accounts with two-factor enabled receive a one-time passcode by email
and are prompted for it before the session is established.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "email",
				Usage:       "account email address",
				Required:    true,
				Destination: &cmd.email,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LoginCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if err := validate.Email(cmd.email); err != nil {
		return err
	}

	password, err := readPassword("Password")
	if err != nil {
		return err
	}

	res, err := cmd.flags.API.Auth.Login(ctx, api.LoginRequest{Email: cmd.email, Password: password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if res.MFARequired {
		res, err = cmd.verifyOTP(ctx, p)
		if err != nil {
			return err
		}
	}

	cmd.flags.Sessions.Login(res.Token, userFromAuth(res))

	p.Success("Signed in", res.Email)
	return nil
}

func (cmd *LoginCmd) verifyOTP(ctx context.Context, p *printer.Printer) (api.AuthResult, error) {
	if err := cmd.flags.API.Auth.RequestOTP(ctx, cmd.email); err != nil {
		return api.AuthResult{}, fmt.Errorf("request passcode: %w", err)
	}
	p.Infof("A one-time passcode was sent to %s", cmd.email)

	code, err := readLine("Passcode")
	if err != nil {
		return api.AuthResult{}, err
	}
	if err := validate.OTP(code); err != nil {
		return api.AuthResult{}, err
	}

	res, err := cmd.flags.API.Auth.VerifyOTP(ctx, cmd.email, code)
	if err != nil {
		return api.AuthResult{}, fmt.Errorf("verify passcode: %w", err)
	}

	return res, nil
}

// userFromAuth builds the cached user from an auth result.
func userFromAuth(res api.AuthResult) session.User {
	return session.User{
		"id":        float64(res.UserID),
		"email":     res.Email,
		"firstName": res.FirstName,
		"lastName":  res.LastName,
	}
}
