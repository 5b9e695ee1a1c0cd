package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/meditrack/meditrack/internal/api"
	"github.com/meditrack/meditrack/internal/core/validate"
	"github.com/meditrack/meditrack/internal/printer"
)

type FamilyCmd struct {
	flags  *Flags
	member api.FamilyMember
}

// NewFamilyCmd creates a new family command
func NewFamilyCmd(flags *Flags) *FamilyCmd {
	return &FamilyCmd{flags: flags}
}

// Register adds the family command to the application
func (cmd *FamilyCmd) Register(app *cli.Command) *cli.Command {
	memberFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "first",
			Usage:       "first name",
			Destination: &cmd.member.FirstName,
		},
		&cli.StringFlag{
			Name:        "last",
			Usage:       "last name",
			Destination: &cmd.member.LastName,
		},
		&cli.StringFlag{
			Name:        "dob",
			Usage:       "date of birth (YYYY-MM-DD)",
			Destination: &cmd.member.DateOfBirth,
		},
		&cli.StringFlag{
			Name:        "relationship",
			Usage:       "relationship to you (e.g. daughter, father)",
			Destination: &cmd.member.Relationship,
		},
		&cli.StringFlag{
			Name:        "phone",
			Usage:       "phone number",
			Destination: &cmd.member.PhoneNumber,
		},
		&cli.StringFlag{
			Name:        "email",
			Usage:       "email address",
			Destination: &cmd.member.Email,
		},
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:        "family",
		Usage:       "Manage family member profiles",
		UsageText:   "meditrack family <subcommand>",
		Description: "Lists, shows, adds, edits, and removes the family members you track health data for.",
		Commands: []*cli.Command{
			{
				Name:   "ls",
				Usage:  "List all family members",
				Action: cmd.runLs,
			},
			{
				Name:      "get",
				Usage:     "Show a family member",
				UsageText: "meditrack family get <id>",
				Action:    cmd.runGet,
			},
			{
				Name:      "add",
				Usage:     "Add a family member",
				UsageText: "meditrack family add --first <name> --last <name> [options]",
				Flags:     memberFlags,
				Action:    cmd.runAdd,
			},
			{
				Name:      "edit",
				Usage:     "Edit a family member",
				UsageText: "meditrack family edit <id> [options]",
				Flags:     memberFlags,
				Action:    cmd.runEdit,
			},
			{
				Name:      "rm",
				Usage:     "Remove a family member",
				UsageText: "meditrack family rm <id>",
				Action:    cmd.runRm,
			},
		},
	})

	return app
}

func (cmd *FamilyCmd) runLs(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	members, err := cmd.flags.API.Family.List(ctx)
	if err != nil {
		return fmt.Errorf("list family members: %w", err)
	}

	if len(members) == 0 {
		p.Infof("No family members yet. Add one with 'meditrack family add'")
		return nil
	}

	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tRELATIONSHIP\tBORN\tPHONE")
	for _, m := range members {
		_, _ = fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%s\n",
			m.ID, m.FirstName, m.LastName, m.Relationship, m.DateOfBirth, m.PhoneNumber)
	}
	return w.Flush()
}

func (cmd *FamilyCmd) runGet(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	id, err := argID(c)
	if err != nil {
		return err
	}

	m, err := cmd.flags.API.Family.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get family member: %w", err)
	}

	p.Section(fmt.Sprintf("%s %s", m.FirstName, m.LastName))
	if m.Relationship != "" {
		p.Printf("Relationship:  %s", m.Relationship)
	}
	if m.DateOfBirth != "" {
		p.Printf("Born:          %s", m.DateOfBirth)
	}
	if m.PhoneNumber != "" {
		p.Printf("Phone:         %s", m.PhoneNumber)
	}
	if m.Email != "" {
		p.Printf("Email:         %s", m.Email)
	}
	return nil
}

func (cmd *FamilyCmd) runAdd(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if err := cmd.validateMember(); err != nil {
		return err
	}

	m, err := cmd.flags.API.Family.Create(ctx, cmd.member)
	if err != nil {
		return fmt.Errorf("add family member: %w", err)
	}

	p.Success("Family member added", fmt.Sprintf("%s %s (id %d)", m.FirstName, m.LastName, m.ID))
	return nil
}

func (cmd *FamilyCmd) runEdit(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	id, err := argID(c)
	if err != nil {
		return err
	}

	// Unset flags keep their current values.
	current, err := cmd.flags.API.Family.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get family member: %w", err)
	}
	merged := mergeMember(current, cmd.member)

	m, err := cmd.flags.API.Family.Update(ctx, id, merged)
	if err != nil {
		return fmt.Errorf("edit family member: %w", err)
	}

	p.Success("Family member updated", fmt.Sprintf("%s %s", m.FirstName, m.LastName))
	return nil
}

func (cmd *FamilyCmd) runRm(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	id, err := argID(c)
	if err != nil {
		return err
	}

	if err := cmd.flags.API.Family.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove family member: %w", err)
	}

	p.Successf("Family member removed")
	return nil
}

func (cmd *FamilyCmd) validateMember() error {
	if err := validate.Required("first", cmd.member.FirstName); err != nil {
		return err
	}
	if err := validate.Required("last", cmd.member.LastName); err != nil {
		return err
	}
	if err := validate.Date(cmd.member.DateOfBirth); err != nil {
		return err
	}
	if cmd.member.Email != "" {
		return validate.Email(cmd.member.Email)
	}
	return nil
}

// mergeMember overlays set fields from override onto base.
func mergeMember(base, override api.FamilyMember) api.FamilyMember {
	if override.FirstName != "" {
		base.FirstName = override.FirstName
	}
	if override.LastName != "" {
		base.LastName = override.LastName
	}
	if override.DateOfBirth != "" {
		base.DateOfBirth = override.DateOfBirth
	}
	if override.Relationship != "" {
		base.Relationship = override.Relationship
	}
	if override.PhoneNumber != "" {
		base.PhoneNumber = override.PhoneNumber
	}
	if override.Email != "" {
		base.Email = override.Email
	}
	return base
}
