package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meditrack/meditrack/internal/api"
	"github.com/meditrack/meditrack/internal/core/session"
)

const (
	toastTickInterval      = 250 * time.Millisecond
	defaultRefreshInterval = 30 * time.Second
	requestTimeout         = 10 * time.Second
)

// sessionReloadedMsg is sent after the stored token has been verified
// against the backend.
type sessionReloadedMsg struct {
	err error
}

// dashLoadedMsg is sent when the dashboard has been fetched.
type dashLoadedMsg struct {
	dash api.Dashboard
	err  error
}

// refreshTickMsg is sent to trigger the next dashboard refresh.
type refreshTickMsg struct{}

// toastTickMsg is sent to expire visible toasts.
type toastTickMsg struct{}

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	result api.AuthResult
	err    error
}

// otpRequestedMsg is sent after asking the backend to send a passcode.
type otpRequestedMsg struct {
	err error
}

// otpResultMsg carries the outcome of a passcode verification.
type otpResultMsg struct {
	result api.AuthResult
	err    error
}

// reloadSession returns a command that verifies the stored token by
// fetching the current user. A stale token tears the session down.
func reloadSession(client *api.Client, sessions *session.Container) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := sessions.Reload(ctx, func(ctx context.Context) (session.User, error) {
			return client.Users.Me(ctx)
		})
		return sessionReloadedMsg{err: err}
	}
}

// loadDashboard returns a command that fetches the dashboard.
func loadDashboard(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		dash, err := client.Dashboard.Get(ctx)
		return dashLoadedMsg{dash: dash, err: err}
	}
}

// doLogin returns a command that attempts a password login.
func doLogin(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		res, err := client.Auth.Login(ctx, api.LoginRequest{Email: email, Password: password})
		if err == nil && res.Email == "" {
			res.Email = email
		}
		return loginResultMsg{result: res, err: err}
	}
}

// requestOTP returns a command that asks the backend for a passcode.
func requestOTP(client *api.Client, email string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		return otpRequestedMsg{err: client.Auth.RequestOTP(ctx, email)}
	}
}

// verifyOTP returns a command that exchanges a passcode for a token.
func verifyOTP(client *api.Client, email, code string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		res, err := client.Auth.VerifyOTP(ctx, email, code)
		return otpResultMsg{result: res, err: err}
	}
}

// scheduleToastTick returns a command that schedules the next toast expiry check.
func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

// scheduleRefresh returns a command that schedules the next dashboard refresh.
func (m Model) scheduleRefresh() tea.Cmd {
	interval := m.refresh
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}
