package doctor

import (
	"context"

	"github.com/meditrack/meditrack/internal/core/session"
)

// AuthCheck reports on the stored credentials.
type AuthCheck struct {
	sessions *session.Container
}

// NewAuthCheck creates a new auth state check.
func NewAuthCheck(sessions *session.Container) *AuthCheck {
	return &AuthCheck{sessions: sessions}
}

func (c *AuthCheck) Name() string {
	return "Authentication"
}

func (c *AuthCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	state := c.sessions.Snapshot()

	if state.Token == "" {
		result.Items = append(result.Items, CheckItem{
			Label:  "Signed in",
			Status: StatusWarn,
			Detail: "no stored token; run 'meditrack login'",
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "Token stored",
		Status: StatusPass,
	})

	if state.User == nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "User cached",
			Status: StatusWarn,
			Detail: "token present but no cached user; it is refreshed on next use",
		})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "User cached",
			Status: StatusPass,
			Detail: state.User.Email(),
		})
	}

	return result
}
