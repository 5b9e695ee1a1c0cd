// Package tui implements the Bubble Tea TUI for meditrack.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meditrack/meditrack/internal/api"
	"github.com/meditrack/meditrack/internal/core/session"
	"github.com/meditrack/meditrack/internal/core/toast"
)

// ViewType represents which view is active.
type ViewType int

const (
	// ViewLogin is the unauthenticated route; every 401 lands back here.
	ViewLogin ViewType = iota
	// ViewOTP collects the one-time passcode when login requires MFA.
	ViewOTP
	// ViewDashboard shows aggregate stats and recent items.
	ViewDashboard
)

// Key constants for event handling.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyRetry = "r"
)

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	client   *api.Client
	sessions *session.Container
	toasts   *toast.Channel
	refresh  time.Duration

	view      ViewType
	loginForm *LoginForm
	otpForm   *OTPForm

	// Email carried from the login form into the OTP flow.
	pendingEmail string

	dash    api.Dashboard
	loaded  bool
	loading bool

	spinner  spinner.Model
	width    int
	height   int
	err      error
	quitting bool
}

// New creates the TUI model. The starting view follows the session state:
// authenticated sessions land on the dashboard, everyone else on login.
func New(client *api.Client, sessions *session.Container, toasts *toast.Channel, refresh time.Duration) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		client:   client,
		sessions: sessions,
		toasts:   toasts,
		refresh:  refresh,
		spinner:  sp,
		view:     ViewLogin,
	}

	if sessions.Snapshot().IsAuthenticated {
		m.view = ViewDashboard
		m.loading = true
	} else {
		m.loginForm = NewLoginForm()
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, scheduleToastTick()}

	switch m.view {
	case ViewDashboard:
		cmds = append(cmds, reloadSession(m.client, m.sessions), loadDashboard(m.client), m.scheduleRefresh())
	default:
		cmds = append(cmds, m.loginForm.Init())
	}

	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case keyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case keyQuit:
			if m.view == ViewDashboard {
				m.quitting = true
				return m, tea.Quit
			}
		case keyRetry:
			if m.view == ViewDashboard {
				m.loading = true
				return m, loadDashboard(m.client)
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case toastTickMsg:
		m.toasts.Prune(time.Now())
		return m, scheduleToastTick()

	case refreshTickMsg:
		if m.view != ViewDashboard {
			return m, m.scheduleRefresh()
		}
		return m, tea.Batch(loadDashboard(m.client), m.scheduleRefresh())

	case sessionReloadedMsg:
		if msg.err != nil {
			return m.gotoLogin()
		}
		return m, nil

	case dashLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			// A 401 already tore the session down; route back to login.
			if api.IsAuthError(msg.err) || !m.sessions.Snapshot().IsAuthenticated {
				return m.gotoLogin()
			}
			return m, nil
		}
		m.err = nil
		m.dash = msg.dash
		m.loaded = true
		return m, nil

	case loginResultMsg:
		if msg.err != nil {
			// The client already emitted the toast; stay on the form.
			return m.gotoLogin()
		}
		if msg.result.MFARequired {
			m.pendingEmail = msg.result.Email
			return m, requestOTP(m.client, m.pendingEmail)
		}
		return m.completeLogin(msg.result)

	case otpRequestedMsg:
		if msg.err != nil {
			return m.gotoLogin()
		}
		m.view = ViewOTP
		m.otpForm = NewOTPForm(m.pendingEmail)
		return m, m.otpForm.Init()

	case otpResultMsg:
		if msg.err != nil {
			m.view = ViewOTP
			m.otpForm = NewOTPForm(m.pendingEmail)
			return m, m.otpForm.Init()
		}
		return m.completeLogin(msg.result)
	}

	return m.updateForms(msg)
}

// updateForms routes messages into whichever form is active.
func (m Model) updateForms(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewLogin:
		if m.loginForm == nil {
			return m, nil
		}
		cmd := m.loginForm.Update(msg)
		if m.loginForm.Cancelled() {
			m.quitting = true
			return m, tea.Quit
		}
		if m.loginForm.Submitted() {
			email, password := m.loginForm.Values()
			m.loginForm = nil
			return m, doLogin(m.client, email, password)
		}
		return m, cmd

	case ViewOTP:
		if m.otpForm == nil {
			return m, nil
		}
		cmd := m.otpForm.Update(msg)
		if m.otpForm.Cancelled() {
			return m.gotoLogin()
		}
		if m.otpForm.Submitted() {
			code := m.otpForm.Code()
			m.otpForm = nil
			return m, verifyOTP(m.client, m.pendingEmail, code)
		}
		return m, cmd
	}

	return m, nil
}

// gotoLogin switches back to the login view with a fresh form.
func (m Model) gotoLogin() (tea.Model, tea.Cmd) {
	m.view = ViewLogin
	m.loaded = false
	m.loginForm = NewLoginForm()
	return m, m.loginForm.Init()
}

// completeLogin establishes the session from an auth result and moves to
// the dashboard.
func (m Model) completeLogin(res api.AuthResult) (tea.Model, tea.Cmd) {
	m.sessions.Login(res.Token, session.User{
		"id":        float64(res.UserID),
		"email":     res.Email,
		"firstName": res.FirstName,
		"lastName":  res.LastName,
	})

	m.view = ViewDashboard
	m.loading = true
	return m, tea.Batch(loadDashboard(m.client), m.scheduleRefresh())
}
