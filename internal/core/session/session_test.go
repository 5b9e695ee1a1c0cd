package session

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStore implements Store for testing.
type mockStore struct {
	token string
	user  User
}

func (m *mockStore) Token() string           { return m.token }
func (m *mockStore) SaveToken(token string)  { m.token = token }
func (m *mockStore) User() User              { return m.user }
func (m *mockStore) SaveUser(u User)         { m.user = u }
func (m *mockStore) ClearAuth()              { m.token = ""; m.user = nil }
func (m *mockStore) Snapshot() (string, User) { return m.token, m.user }

func newTestContainer(store *mockStore) *Container {
	return NewContainer(store, zerolog.Nop())
}

func TestNewContainer_EmptyStore(t *testing.T) {
	c := newTestContainer(&mockStore{})
	s := c.Snapshot()

	assert.False(t, s.IsAuthenticated)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Token)
	assert.Nil(t, s.User)
}

func TestNewContainer_TokenOnly(t *testing.T) {
	c := newTestContainer(&mockStore{token: "abc123"})
	s := c.Snapshot()

	// Token without a user means verification is pending, not authenticated.
	assert.True(t, s.Loading)
	assert.False(t, s.IsAuthenticated)
	assert.Equal(t, "abc123", s.Token)
}

func TestNewContainer_TokenAndUser(t *testing.T) {
	store := &mockStore{token: "abc123", user: User{"id": float64(1), "email": "a@b.com"}}
	c := newTestContainer(store)
	s := c.Snapshot()

	assert.True(t, s.IsAuthenticated)
	assert.True(t, s.Loading)
}

func TestLogin(t *testing.T) {
	store := &mockStore{}
	c := newTestContainer(store)

	user := User{"id": float64(1), "email": "a@b.com"}
	c.Login("abc123", user)

	s := c.Snapshot()
	assert.Equal(t, "abc123", s.Token)
	assert.Equal(t, user, s.User)
	assert.True(t, s.IsAuthenticated)
	assert.Empty(t, s.Error)

	// Round-trip through the store
	tok, u := store.Snapshot()
	assert.Equal(t, "abc123", tok)
	assert.Equal(t, user, u)
}

func TestLogout_Idempotent(t *testing.T) {
	store := &mockStore{}
	c := newTestContainer(store)
	c.Login("abc123", User{"id": float64(1)})

	c.Logout()
	first := c.Snapshot()
	c.Logout()
	second := c.Snapshot()

	assert.Equal(t, first, second)
	assert.False(t, second.IsAuthenticated)
	assert.Empty(t, store.token)
	assert.Nil(t, store.user)
}

func TestSetUser_RecomputesAuth(t *testing.T) {
	store := &mockStore{}
	c := newTestContainer(store)
	c.SetToken("abc123")

	assert.False(t, c.Snapshot().IsAuthenticated, "token alone is not authenticated")

	c.SetUser(User{"id": float64(1)})
	assert.True(t, c.Snapshot().IsAuthenticated)

	c.SetUser(nil)
	assert.False(t, c.Snapshot().IsAuthenticated)
}

func TestSetToken_RequiresExistingUser(t *testing.T) {
	c := newTestContainer(&mockStore{})

	c.SetToken("abc123")
	assert.False(t, c.Snapshot().IsAuthenticated)

	c.SetUser(User{"id": float64(1)})
	c.SetToken("def456")
	assert.True(t, c.Snapshot().IsAuthenticated)

	c.SetToken("")
	assert.False(t, c.Snapshot().IsAuthenticated)
}

func TestUpdateUser_ShallowMerge(t *testing.T) {
	store := &mockStore{}
	c := newTestContainer(store)
	c.Login("abc123", User{"id": float64(1), "firstName": "A"})

	c.UpdateUser(map[string]any{"phoneNumber": "555"})

	got := c.Snapshot().User
	assert.Equal(t, float64(1), got["id"])
	assert.Equal(t, "A", got["firstName"])
	assert.Equal(t, "555", got["phoneNumber"])
	assert.Equal(t, got, store.user, "merged user must be persisted")
}

func TestUpdateUser_NoUser(t *testing.T) {
	c := newTestContainer(&mockStore{})

	c.UpdateUser(map[string]any{"phoneNumber": "555"})

	got := c.Snapshot().User
	require.NotNil(t, got)
	assert.Equal(t, "555", got["phoneNumber"])
}

func TestReload_Success(t *testing.T) {
	store := &mockStore{token: "abc123"}
	c := newTestContainer(store)

	fresh := User{"id": float64(2), "email": "b@c.com"}
	err := c.Reload(context.Background(), func(ctx context.Context) (User, error) {
		return fresh, nil
	})
	require.NoError(t, err)

	s := c.Snapshot()
	assert.False(t, s.Loading)
	assert.True(t, s.IsAuthenticated)
	assert.Equal(t, fresh, s.User)
	assert.Empty(t, s.Error)
	assert.Equal(t, fresh, store.user)
}

func TestReload_Failure(t *testing.T) {
	store := &mockStore{token: "stale", user: User{"id": float64(1)}}
	c := newTestContainer(store)

	err := c.Reload(context.Background(), func(ctx context.Context) (User, error) {
		return nil, errors.New("invalid token")
	})
	require.Error(t, err)

	s := c.Snapshot()
	assert.False(t, s.Loading)
	assert.False(t, s.IsAuthenticated)
	assert.Nil(t, s.User)
	assert.Empty(t, s.Token)
	assert.Equal(t, "invalid token", s.Error)

	tok, u := store.Snapshot()
	assert.Empty(t, tok)
	assert.Nil(t, u)
}

func TestClearError(t *testing.T) {
	c := newTestContainer(&mockStore{})
	_ = c.Reload(context.Background(), func(ctx context.Context) (User, error) {
		return nil, errors.New("boom")
	})

	require.NotEmpty(t, c.Snapshot().Error)
	c.ClearError()
	assert.Empty(t, c.Snapshot().Error)
}

func TestUser_Accessors(t *testing.T) {
	u := User{
		"id":         float64(7),
		"email":      "a@b.com",
		"firstName":  "Ada",
		"lastName":   "Lovelace",
		"mfaEnabled": true,
	}

	assert.Equal(t, int64(7), u.ID())
	assert.Equal(t, "a@b.com", u.Email())
	assert.Equal(t, "Ada Lovelace", u.Name())
	assert.True(t, u.MFAEnabled())

	assert.Equal(t, int64(0), User(nil).ID())
	assert.Empty(t, User(nil).Name())
}
