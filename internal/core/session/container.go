package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// FetchUserFunc loads the current user from the backend.
type FetchUserFunc func(ctx context.Context) (User, error)

// Container is the sole writer of session state. Every transition mutates
// the in-memory state and mirrors the change into the Store under one lock,
// so a transition and its persistence side effect are never interleaved
// with another transition.
type Container struct {
	mu    sync.RWMutex
	state Session
	store Store
	log   zerolog.Logger
}

// NewContainer builds a container seeded from the store's snapshot.
// Loading starts true when a token was found, signalling that the token
// still needs server-side verification via Reload.
func NewContainer(store Store, log zerolog.Logger) *Container {
	token, user := store.Snapshot()
	return &Container{
		state: Session{
			User:            user,
			Token:           token,
			Loading:         token != "",
			IsAuthenticated: token != "" && user != nil,
		},
		store: store,
		log:   log,
	}
}

// Snapshot returns a copy of the current session state.
func (c *Container) Snapshot() Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Token returns the current in-memory token. Implements the api client's
// credentials source.
func (c *Container) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Token
}

// Login establishes an authenticated session and persists both credentials.
func (c *Container) Login(token string, user User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Token = token
	c.state.User = user
	c.state.IsAuthenticated = true
	c.state.Error = ""

	c.store.SaveToken(token)
	c.store.SaveUser(user)
	c.log.Debug().Str("email", user.Email()).Msg("session established")
}

// Logout clears the session and the persisted auth. Safe to call repeatedly.
func (c *Container) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.User = nil
	c.state.Token = ""
	c.state.IsAuthenticated = false
	c.state.Error = ""

	c.store.ClearAuth()
}

// OnAuthExpired is the transition the api client triggers on a 401. It is
// the only externally driven mutation path.
func (c *Container) OnAuthExpired() {
	c.log.Debug().Msg("auth expired, clearing session")
	c.Logout()
}

// SetUser replaces the user and recomputes IsAuthenticated from its presence.
func (c *Container) SetUser(user User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.User = user
	c.state.IsAuthenticated = user != nil
	c.store.SaveUser(user)
}

// SetToken replaces the token. The session is authenticated only if a user
// is already present as well.
func (c *Container) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Token = token
	c.state.IsAuthenticated = token != "" && c.state.User != nil
	c.store.SaveToken(token)
}

// UpdateUser shallow-merges partial fields into the current user and
// persists the merged record. With no current user the merge target is an
// empty record.
func (c *Container) UpdateUser(partial map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.User = c.state.User.Merge(partial)
	c.store.SaveUser(c.state.User)
}

// ClearError clears the error field only.
func (c *Container) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Error = ""
}

// Reload verifies the session against the backend by fetching the current
// user. On success the returned user becomes authoritative and is
// persisted. On failure the session and persisted auth are torn down and
// the error message is recorded. This is how a stale token found in the
// store at startup gets reconciled.
func (c *Container) Reload(ctx context.Context, fetch FetchUserFunc) error {
	c.mu.Lock()
	c.state.Loading = true
	c.state.Error = ""
	c.mu.Unlock()

	user, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Loading = false

	if err != nil {
		c.state.User = nil
		c.state.Token = ""
		c.state.IsAuthenticated = false
		c.state.Error = err.Error()
		c.store.ClearAuth()
		return err
	}

	c.state.User = user
	c.state.IsAuthenticated = true
	c.state.Error = ""
	c.store.SaveUser(user)
	return nil
}
