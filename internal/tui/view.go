package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/meditrack/meditrack/internal/api"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	bannerView := bannerStyle.Render(banner)

	var content string
	switch m.view {
	case ViewLogin:
		content = m.renderLogin()
	case ViewOTP:
		content = m.renderOTP()
	case ViewDashboard:
		content = m.renderDashboard()
	}

	sections := []string{bannerView, content}
	if toasts := m.renderToasts(); toasts != "" {
		sections = append(sections, toasts)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderLogin() string {
	if m.loginForm == nil {
		return spinnerStyle.Render(m.spinner.View()) + " Signing in..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Sign In"),
		"",
		m.loginForm.View(),
		helpStyle.Render("esc quit"),
	)
}

func (m Model) renderOTP() string {
	if m.otpForm == nil {
		return spinnerStyle.Render(m.spinner.View()) + " Verifying passcode..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Two-Factor Verification"),
		"",
		m.otpForm.View(),
		helpStyle.Render("esc back to login"),
	)
}

func (m Model) renderDashboard() string {
	if m.loading && !m.loaded {
		return spinnerStyle.Render(m.spinner.View()) + " Loading dashboard..."
	}

	if m.err != nil && !m.loaded {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			errorStyle.Render(" Could not load the dashboard."),
			subtleStyle.Render(" "+m.err.Error()),
			helpStyle.Render("r retry "+iconDot+" q quit"),
		)
	}

	sections := []string{
		m.renderStats(),
		m.renderReminders(),
		m.renderRecords(),
		helpStyle.Render("r refresh " + iconDot + " q quit"),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStats() string {
	s := m.dash.Stats

	cards := []string{
		statCard("Members", s.TotalMembers),
		statCard("Records", s.TotalHealthRecords),
		statCard("Medications", s.TotalMedications),
		statCard("Reminders", s.TotalReminders),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func statCard(label string, value int64) string {
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		valueStyle.Render(strconv.FormatInt(value, 10)),
		labelStyle.Render(label),
	)
	return cardStyle.Render(body)
}

func (m Model) renderReminders() string {
	lines := []string{titleStyle.Render("Upcoming Reminders")}

	if len(m.dash.UpcomingReminders) == 0 {
		lines = append(lines, subtleStyle.Render("  No upcoming reminders."))
		return strings.Join(lines, "\n")
	}

	for _, r := range m.dash.UpcomingReminders {
		line := fmt.Sprintf("  %s  %s", r.ReminderTime, r.MedicationName)
		if r.FamilyMemberName != "" {
			line += subtleStyle.Render(" " + iconDot + " " + r.FamilyMemberName)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderRecords() string {
	lines := []string{titleStyle.Render("Recent Health Records")}

	if len(m.dash.RecentHealthRecords) == 0 {
		lines = append(lines, subtleStyle.Render("  No health records yet."))
		return strings.Join(lines, "\n")
	}

	for _, r := range m.dash.RecentHealthRecords {
		lines = append(lines, "  "+formatRecordLine(r))
	}

	return strings.Join(lines, "\n")
}

func formatRecordLine(r api.HealthRecordSummary) string {
	line := r.Title
	if r.Value != "" {
		line += " " + r.Value
		if r.Unit != "" {
			line += " " + r.Unit
		}
	}

	var meta []string
	if r.FamilyMemberName != "" {
		meta = append(meta, r.FamilyMemberName)
	}
	if r.RecordedDate != "" {
		meta = append(meta, r.RecordedDate)
	}
	if len(meta) > 0 {
		line += subtleStyle.Render(" " + iconDot + " " + strings.Join(meta, " "+iconDot+" "))
	}

	return line
}
