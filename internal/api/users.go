package api

import (
	"context"
	"net/url"

	"github.com/meditrack/meditrack/internal/core/session"
)

// UsersService wraps the /users endpoints. User payloads stay opaque maps
// so unknown backend fields survive the round trip into the session store.
type UsersService struct {
	c *Client
}

// Me returns the current user.
func (s *UsersService) Me(ctx context.Context) (session.User, error) {
	var out session.User
	err := s.c.get(ctx, "/users/me", nil, &out)
	return out, err
}

// UpdateProfile updates name and phone. The backend takes these as query
// parameters, not a body; phone is omitted entirely when empty.
func (s *UsersService) UpdateProfile(ctx context.Context, firstName, lastName, phoneNumber string) (session.User, error) {
	query := url.Values{}
	query.Set("firstName", firstName)
	query.Set("lastName", lastName)
	if phoneNumber != "" {
		query.Set("phoneNumber", phoneNumber)
	}

	var out session.User
	err := s.c.put(ctx, "/users/me", query, nil, &out)
	return out, err
}

// ToggleMFA flips multi-factor auth for the account and returns the
// updated user fields.
func (s *UsersService) ToggleMFA(ctx context.Context) (session.User, error) {
	var out session.User
	err := s.c.post(ctx, "/users/me/toggle-mfa", nil, &out)
	return out, err
}
