package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/meditrack/meditrack/internal/api"
	"github.com/meditrack/meditrack/internal/core/validate"
	"github.com/meditrack/meditrack/internal/printer"
)

type MedsCmd struct {
	flags  *Flags
	member int64
	med    api.Medication

	remindTime string
	remindDays []string
	remindType string
}

// NewMedsCmd creates a new meds command
func NewMedsCmd(flags *Flags) *MedsCmd {
	return &MedsCmd{flags: flags}
}

// Register adds the meds command to the application
func (cmd *MedsCmd) Register(app *cli.Command) *cli.Command {
	medFlags := []cli.Flag{
		&cli.Int64Flag{
			Name:        "member",
			Usage:       "family member id the medication belongs to",
			Destination: &cmd.med.FamilyMemberID,
		},
		&cli.StringFlag{
			Name:        "name",
			Usage:       "medication name",
			Destination: &cmd.med.Name,
		},
		&cli.StringFlag{
			Name:        "dosage",
			Usage:       "dosage (e.g. 500mg)",
			Destination: &cmd.med.Dosage,
		},
		&cli.StringFlag{
			Name:        "frequency",
			Usage:       "how often to take it (e.g. twice daily)",
			Destination: &cmd.med.Frequency,
		},
		&cli.StringFlag{
			Name:        "start",
			Usage:       "start date (YYYY-MM-DD)",
			Destination: &cmd.med.StartDate,
		},
		&cli.StringFlag{
			Name:        "end",
			Usage:       "end date (YYYY-MM-DD)",
			Destination: &cmd.med.EndDate,
		},
		&cli.StringFlag{
			Name:        "instructions",
			Usage:       "instructions (e.g. take with food)",
			Destination: &cmd.med.Instructions,
		},
		&cli.StringFlag{
			Name:        "prescriber",
			Usage:       "prescribing doctor",
			Destination: &cmd.med.PrescribedBy,
		},
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:        "meds",
		Usage:       "Manage medications and reminders",
		UsageText:   "meditrack meds <subcommand>",
		Description: "Lists, shows, adds, edits, and removes medications, and schedules dose reminders.",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List medications",
				UsageText: "meditrack meds ls [--member <id>]",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:        "member",
						Usage:       "only show medications for this family member",
						Destination: &cmd.member,
					},
				},
				Action: cmd.runLs,
			},
			{
				Name:      "get",
				Usage:     "Show a medication",
				UsageText: "meditrack meds get <id>",
				Action:    cmd.runGet,
			},
			{
				Name:      "add",
				Usage:     "Add a medication",
				UsageText: "meditrack meds add --member <id> --name <name> [options]",
				Flags:     medFlags,
				Action:    cmd.runAdd,
			},
			{
				Name:      "edit",
				Usage:     "Edit a medication",
				UsageText: "meditrack meds edit <id> [options]",
				Flags:     medFlags,
				Action:    cmd.runEdit,
			},
			{
				Name:      "rm",
				Usage:     "Remove a medication",
				UsageText: "meditrack meds rm <id>",
				Action:    cmd.runRm,
			},
			{
				Name:      "remind",
				Usage:     "Schedule a dose reminder",
				UsageText: "meditrack meds remind <id> --time <HH:MM> [--days mon,wed,fri]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "time",
						Usage:       "time of day (HH:MM, 24-hour)",
						Required:    true,
						Destination: &cmd.remindTime,
					},
					&cli.StringSliceFlag{
						Name:        "days",
						Usage:       "days of the week (defaults to every day)",
						Destination: &cmd.remindDays,
					},
					&cli.StringFlag{
						Name:        "type",
						Usage:       "reminder type (e.g. EMAIL)",
						Destination: &cmd.remindType,
					},
				},
				Action: cmd.runRemind,
			},
		},
	})

	return app
}

func (cmd *MedsCmd) runLs(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	meds, err := cmd.flags.API.Medications.List(ctx, cmd.member)
	if err != nil {
		return fmt.Errorf("list medications: %w", err)
	}

	if len(meds) == 0 {
		p.Infof("No medications found")
		return nil
	}

	w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tMEMBER\tNAME\tDOSAGE\tFREQUENCY\tREMINDERS")
	for _, m := range meds {
		_, _ = fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%d\n",
			m.ID, m.FamilyMemberID, m.Name, m.Dosage, m.Frequency, len(m.Reminders))
	}
	return w.Flush()
}

func (cmd *MedsCmd) runGet(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	id, err := argID(c)
	if err != nil {
		return err
	}

	m, err := cmd.flags.API.Medications.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get medication: %w", err)
	}

	p.Section(m.Name)
	p.Printf("Member:     %d", m.FamilyMemberID)
	if m.Dosage != "" {
		p.Printf("Dosage:     %s", m.Dosage)
	}
	if m.Frequency != "" {
		p.Printf("Frequency:  %s", m.Frequency)
	}
	if m.StartDate != "" {
		p.Printf("Start:      %s", m.StartDate)
	}
	if m.EndDate != "" {
		p.Printf("End:        %s", m.EndDate)
	}
	if m.Instructions != "" {
		p.Printf("Take:       %s", m.Instructions)
	}
	if m.PrescribedBy != "" {
		p.Printf("Prescriber: %s", m.PrescribedBy)
	}

	if len(m.Reminders) > 0 {
		p.Printf("")
		p.Printf("%s", p.Bold("Reminders"))
		for _, r := range m.Reminders {
			p.Printf("  %s %s", r.ReminderTime, r.Status)
		}
	}
	return nil
}

func (cmd *MedsCmd) runAdd(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	if err := cmd.validateMed(); err != nil {
		return err
	}

	m, err := cmd.flags.API.Medications.Create(ctx, cmd.med)
	if err != nil {
		return fmt.Errorf("add medication: %w", err)
	}

	p.Success("Medication added", fmt.Sprintf("%s (id %d)", m.Name, m.ID))
	return nil
}

func (cmd *MedsCmd) runEdit(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	id, err := argID(c)
	if err != nil {
		return err
	}

	// Unset flags keep their current values.
	current, err := cmd.flags.API.Medications.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get medication: %w", err)
	}
	merged := mergeMed(current, cmd.med)

	m, err := cmd.flags.API.Medications.Update(ctx, id, merged)
	if err != nil {
		return fmt.Errorf("edit medication: %w", err)
	}

	p.Success("Medication updated", m.Name)
	return nil
}

func (cmd *MedsCmd) runRm(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	id, err := argID(c)
	if err != nil {
		return err
	}

	if err := cmd.flags.API.Medications.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove medication: %w", err)
	}

	p.Successf("Medication removed")
	return nil
}

func (cmd *MedsCmd) runRemind(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	id, err := argID(c)
	if err != nil {
		return err
	}

	if err := validate.TimeOfDay(cmd.remindTime); err != nil {
		return err
	}

	days, err := normalizeDays(cmd.remindDays)
	if err != nil {
		return err
	}

	r, err := cmd.flags.API.Medications.CreateReminder(ctx, id, api.CreateReminderRequest{
		ReminderTime: cmd.remindTime,
		DaysOfWeek:   days,
		ReminderType: cmd.remindType,
	})
	if err != nil {
		return fmt.Errorf("schedule reminder: %w", err)
	}

	p.Success("Reminder scheduled", r.ReminderTime)
	return nil
}

func (cmd *MedsCmd) validateMed() error {
	if cmd.med.FamilyMemberID <= 0 {
		return fmt.Errorf("--member is required")
	}
	if err := validate.Required("name", cmd.med.Name); err != nil {
		return err
	}
	if err := validate.Date(cmd.med.StartDate); err != nil {
		return err
	}
	return validate.Date(cmd.med.EndDate)
}

// dayNames maps accepted day abbreviations to the backend's day names.
var dayNames = map[string]string{
	"mon": "MONDAY", "monday": "MONDAY",
	"tue": "TUESDAY", "tuesday": "TUESDAY",
	"wed": "WEDNESDAY", "wednesday": "WEDNESDAY",
	"thu": "THURSDAY", "thursday": "THURSDAY",
	"fri": "FRIDAY", "friday": "FRIDAY",
	"sat": "SATURDAY", "saturday": "SATURDAY",
	"sun": "SUNDAY", "sunday": "SUNDAY",
}

// normalizeDays converts user day abbreviations to the backend's day names.
func normalizeDays(days []string) ([]string, error) {
	out := make([]string, 0, len(days))
	for _, d := range days {
		name, ok := dayNames[strings.ToLower(strings.TrimSpace(d))]
		if !ok {
			return nil, fmt.Errorf("invalid day %q: use mon..sun", d)
		}
		out = append(out, name)
	}
	return out, nil
}

// mergeMed overlays set fields from override onto base.
func mergeMed(base, override api.Medication) api.Medication {
	if override.FamilyMemberID > 0 {
		base.FamilyMemberID = override.FamilyMemberID
	}
	if override.Name != "" {
		base.Name = override.Name
	}
	if override.Dosage != "" {
		base.Dosage = override.Dosage
	}
	if override.Frequency != "" {
		base.Frequency = override.Frequency
	}
	if override.StartDate != "" {
		base.StartDate = override.StartDate
	}
	if override.EndDate != "" {
		base.EndDate = override.EndDate
	}
	if override.Instructions != "" {
		base.Instructions = override.Instructions
	}
	if override.PrescribedBy != "" {
		base.PrescribedBy = override.PrescribedBy
	}
	return base
}
