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

type RecordsCmd struct {
	flags  *Flags
	member int64
	record api.HealthRecord
}

// NewRecordsCmd creates a new records command
func NewRecordsCmd(flags *Flags) *RecordsCmd {
	return &RecordsCmd{flags: flags}
}

// Register adds the records command to the application
func (cmd *RecordsCmd) Register(app *cli.Command) *cli.Command {
	recordFlags := []cli.Flag{
		&cli.Int64Flag{
			Name:        "member",
			Usage:       "family member id the record belongs to",
			Destination: &cmd.record.FamilyMemberID,
		},
		&cli.StringFlag{
			Name:        "type",
			Usage:       "record type (e.g. Blood Pressure, Vaccination)",
			Destination: &cmd.record.RecordType,
		},
		&cli.StringFlag{
			Name:        "title",
			Usage:       "short title",
			Destination: &cmd.record.Title,
		},
		&cli.StringFlag{
			Name:        "value",
			Usage:       "measured value",
			Destination: &cmd.record.Value,
		},
		&cli.StringFlag{
			Name:        "unit",
			Usage:       "unit for the value (e.g. mmHg, kg)",
			Destination: &cmd.record.Unit,
		},
		&cli.StringFlag{
			Name:        "date",
			Usage:       "recorded date (YYYY-MM-DD)",
			Destination: &cmd.record.RecordedDate,
		},
		&cli.StringFlag{
			Name:        "doctor",
			Usage:       "doctor's name",
			Destination: &cmd.record.DoctorName,
		},
		&cli.StringFlag{
			Name:        "description",
			Usage:       "longer description",
			Destination: &cmd.record.Description,
		},
		&cli.StringFlag{
			Name:        "notes",
			Usage:       "free-form notes",
			Destination: &cmd.record.Notes,
		},
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:        "records",
		Usage:       "Manage health records",
		UsageText:   "meditrack records <subcommand>",
		Description: "Lists, shows, adds, edits, and removes health records such as measurements, vaccinations, and visits.",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List health records",
				UsageText: "meditrack records ls [--member <id>]",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:        "member",
						Usage:       "only show records for this family member",
						Destination: &cmd.member,
					},
				},
				Action: cmd.runLs,
			},
			{
				Name:      "get",
				Usage:     "Show a health record",
				UsageText: "meditrack records get <id>",
				Action:    cmd.runGet,
			},
			{
				Name:      "add",
				Usage:     "Add a health record",
				UsageText: "meditrack records add --member <id> --type <type> --title <title> [options]",
				Flags:     recordFlags,
				Action:    cmd.runAdd,
			},
			{
				Name:      "edit",
				Usage:     "Edit a health record",
				UsageText: "meditrack records edit <id> [options]",
				Flags:     recordFlags,
				Action:    cmd.runEdit,
			},
			{
				Name:      "rm",
				Usage:     "Remove a health record",
				UsageText: "meditrack records rm <id>",
				Action:    cmd.runRm,
			},
		},
	})

	return app
}

func (cmd *RecordsCmd) runLs(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	records, err := cmd.flags.API.Records.List(ctx, cmd.member)
	if err != nil {
		return fmt.Errorf("list health records: %w", err)
	}

	if len(records) == 0 {
		p.Infof("No health records found")
		return nil
	}

	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tMEMBER\tTYPE\tTITLE\tVALUE\tDATE")
	for _, r := range records {
		value := r.Value
		if value != "" && r.Unit != "" {
			value += " " + r.Unit
		}
		_, _ = fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
			r.ID, r.FamilyMemberID, r.RecordType, r.Title, value, r.RecordedDate)
	}
	return w.Flush()
}

func (cmd *RecordsCmd) runGet(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	id, err := argID(c)
	if err != nil {
		return err
	}

	r, err := cmd.flags.API.Records.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get health record: %w", err)
	}

	p.Section(r.Title)
	p.Printf("Type:    %s", r.RecordType)
	p.Printf("Member:  %d", r.FamilyMemberID)
	if r.Value != "" {
		value := r.Value
		if r.Unit != "" {
			value += " " + r.Unit
		}
		p.Printf("Value:   %s", value)
	}
	if r.RecordedDate != "" {
		p.Printf("Date:    %s", r.RecordedDate)
	}
	if r.DoctorName != "" {
		p.Printf("Doctor:  %s", r.DoctorName)
	}
	if r.Description != "" {
		p.Printf("Details: %s", r.Description)
	}
	if r.Notes != "" {
		p.Printf("Notes:   %s", r.Notes)
	}
	return nil
}

func (cmd *RecordsCmd) runAdd(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if err := cmd.validateRecord(); err != nil {
		return err
	}

	r, err := cmd.flags.API.Records.Create(ctx, cmd.record)
	if err != nil {
		return fmt.Errorf("add health record: %w", err)
	}

	p.Success("Health record added", fmt.Sprintf("%s (id %d)", r.Title, r.ID))
	return nil
}

func (cmd *RecordsCmd) runEdit(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	id, err := argID(c)
	if err != nil {
		return err
	}

	// Unset flags keep their current values.
	current, err := cmd.flags.API.Records.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get health record: %w", err)
	}
	merged := mergeRecord(current, cmd.record)

	r, err := cmd.flags.API.Records.Update(ctx, id, merged)
	if err != nil {
		return fmt.Errorf("edit health record: %w", err)
	}

	p.Success("Health record updated", r.Title)
	return nil
}

func (cmd *RecordsCmd) runRm(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	id, err := argID(c)
	if err != nil {
		return err
	}

	if err := cmd.flags.API.Records.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove health record: %w", err)
	}

	p.Successf("Health record removed")
	return nil
}

func (cmd *RecordsCmd) validateRecord() error {
	if cmd.record.FamilyMemberID <= 0 {
		return fmt.Errorf("--member is required")
	}
	if err := validate.Required("type", cmd.record.RecordType); err != nil {
		return err
	}
	if err := validate.Required("title", cmd.record.Title); err != nil {
		return err
	}
	return validate.Date(cmd.record.RecordedDate)
}

// mergeRecord overlays set fields from override onto base.
func mergeRecord(base, override api.HealthRecord) api.HealthRecord {
	if override.FamilyMemberID > 0 {
		base.FamilyMemberID = override.FamilyMemberID
	}
	if override.RecordType != "" {
		base.RecordType = override.RecordType
	}
	if override.Title != "" {
		base.Title = override.Title
	}
	if override.Description != "" {
		base.Description = override.Description
	}
	if override.Value != "" {
		base.Value = override.Value
	}
	if override.Unit != "" {
		base.Unit = override.Unit
	}
	if override.RecordedDate != "" {
		base.RecordedDate = override.RecordedDate
	}
	if override.DoctorName != "" {
		base.DoctorName = override.DoctorName
	}
	if override.Notes != "" {
		base.Notes = override.Notes
	}
	return base
}
