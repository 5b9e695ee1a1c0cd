package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/meditrack/meditrack/internal/printer"
)

type DashboardCmd struct {
	flags *Flags
}

// NewDashboardCmd creates a new dashboard command
func NewDashboardCmd(flags *Flags) *DashboardCmd {
	return &DashboardCmd{flags: flags}
}

// Register adds the dashboard command to the application
func (cmd *DashboardCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "dashboard",
		Usage:       "Show account stats and recent activity",
		UsageText:   "meditrack dashboard",
		Description: "Shows aggregate counts, upcoming reminders, and recent health records.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *DashboardCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	dash, err := cmd.flags.API.Dashboard.Get(ctx)
	if err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}

	p.Section("Overview")
	p.Printf("Members:      %d", dash.Stats.TotalMembers)
	p.Printf("Records:      %d", dash.Stats.TotalHealthRecords)
	p.Printf("Medications:  %d", dash.Stats.TotalMedications)
	p.Printf("Reminders:    %d", dash.Stats.TotalReminders)

	if len(dash.UpcomingReminders) > 0 {
		p.Printf("")
		p.Section("Upcoming Reminders")
		w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "TIME\tMEDICATION\tMEMBER")
		for _, r := range dash.UpcomingReminders {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", r.ReminderTime, r.MedicationName, r.FamilyMemberName)
		}
		_ = w.Flush()
	}

	if len(dash.RecentHealthRecords) > 0 {
		p.Printf("")
		p.Section("Recent Health Records")
		w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "DATE\tTYPE\tTITLE\tMEMBER")
		for _, r := range dash.RecentHealthRecords {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.RecordedDate, r.RecordType, r.Title, r.FamilyMemberName)
		}
		_ = w.Flush()
	}

	return nil
}
