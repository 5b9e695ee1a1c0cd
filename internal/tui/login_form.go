package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/meditrack/meditrack/internal/core/validate"
	"github.com/meditrack/meditrack/internal/styles"
)

// LoginForm wraps a huh.Form collecting credentials.
type LoginForm struct {
	form     *huh.Form
	email    string
	password string
}

// NewLoginForm creates the credential form.
func NewLoginForm() *LoginForm {
	f := &LoginForm{}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&f.email).
				Validate(func(s string) error {
					return validate.Email(s)
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&f.password).
				Validate(func(s string) error {
					return validate.Required("password", s)
				}),
		),
	).WithTheme(styles.FormTheme())

	return f
}

// Init starts the underlying form.
func (f *LoginForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update feeds a message into the form.
func (f *LoginForm) Update(msg tea.Msg) tea.Cmd {
	model, cmd := f.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.form = form
	}
	return cmd
}

// Submitted reports whether the form completed.
func (f *LoginForm) Submitted() bool {
	return f.form.State == huh.StateCompleted
}

// Cancelled reports whether the form was aborted.
func (f *LoginForm) Cancelled() bool {
	return f.form.State == huh.StateAborted
}

// Values returns the entered credentials. Only valid once Submitted.
func (f *LoginForm) Values() (email, password string) {
	return f.email, f.password
}

// View renders the form.
func (f *LoginForm) View() string {
	return f.form.View()
}

// OTPForm wraps a huh.Form collecting a one-time passcode.
type OTPForm struct {
	form  *huh.Form
	email string
	code  string
}

// NewOTPForm creates the passcode form for the given email.
func NewOTPForm(email string) *OTPForm {
	f := &OTPForm{email: email}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("One-time passcode").
				Description("Sent to " + email).
				CharLimit(6).
				Value(&f.code).
				Validate(func(s string) error {
					return validate.OTP(s)
				}),
		),
	).WithTheme(styles.FormTheme())

	return f
}

// Init starts the underlying form.
func (f *OTPForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update feeds a message into the form.
func (f *OTPForm) Update(msg tea.Msg) tea.Cmd {
	model, cmd := f.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.form = form
	}
	return cmd
}

// Submitted reports whether the form completed.
func (f *OTPForm) Submitted() bool {
	return f.form.State == huh.StateCompleted
}

// Cancelled reports whether the form was aborted.
func (f *OTPForm) Cancelled() bool {
	return f.form.State == huh.StateAborted
}

// Code returns the entered passcode. Only valid once Submitted.
func (f *OTPForm) Code() string {
	return f.code
}

// View renders the form.
func (f *OTPForm) View() string {
	return f.form.View()
}
