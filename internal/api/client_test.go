package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNotifier captures emitted toasts.
type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func (n *recordingNotifier) total() int { return len(n.successes) + len(n.errors) }

// staticCreds is a fixed token source.
type staticCreds string

func (s staticCreds) Token() string { return string(s) }

type testClient struct {
	*Client
	notifier *recordingNotifier
	events   *[]string
}

func newTestClient(t *testing.T, handler http.Handler, token string) *testClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	notifier := &recordingNotifier{}
	events := &[]string{}

	var creds []Credentials
	if token != "" {
		creds = []Credentials{staticCreds(token)}
	}

	c := New(Config{
		BaseURL:     srv.URL,
		Credentials: creds,
		Notifier:    notifier,
		ClearAuth:   func() { *events = append(*events, "clear") },
		Logout:      func() { *events = append(*events, "logout") },
		Navigate:    func() { *events = append(*events, "navigate") },
		Logger:      zerolog.Nop(),
	})

	return &testClient{Client: c, notifier: notifier, events: events}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[]}`))
	})

	c := newTestClient(t, handler, "abc123")
	_, err := c.Family.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestClient_NoTokenProceedsUnauthenticated(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[]}`))
	})

	c := newTestClient(t, handler, "")
	_, err := c.Family.List(context.Background())
	require.NoError(t, err)

	assert.Empty(t, gotAuth)
}

func TestClient_CredentialFallbackOrder(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[]}`))
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New(Config{
		BaseURL: srv.URL,
		// Container has no token yet; the persistent store does.
		Credentials: []Credentials{staticCreds(""), staticCreds("from-store")},
		Logger:      zerolog.Nop(),
	})

	_, err := c.Family.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer from-store", gotAuth)
}

func TestClient_UnwrapsEnvelopeOnGet(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[{"id":1,"firstName":"A","lastName":"B"}]}`))
	})

	c := newTestClient(t, handler, "tok")
	members, err := c.Family.List(context.Background())
	require.NoError(t, err)

	require.Len(t, members, 1)
	assert.Equal(t, int64(1), members[0].ID)
	assert.Equal(t, "A", members[0].FirstName)
	assert.Zero(t, c.notifier.total(), "GET must not emit notices")
}

func TestClient_GetNeverEmitsSuccessNotice(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[],"message":"Records retrieved"}`))
	})

	c := newTestClient(t, handler, "tok")
	_, err := c.Records.List(context.Background(), 0)
	require.NoError(t, err)

	assert.Zero(t, c.notifier.total())
}

func TestClient_PutEmitsSuccessNotice(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":5,"firstName":"A","lastName":"B"},"message":"Updated"}`))
	})

	c := newTestClient(t, handler, "tok")
	member, err := c.Family.Update(context.Background(), 5, FamilyMember{FirstName: "A", LastName: "B"})
	require.NoError(t, err)

	assert.Equal(t, int64(5), member.ID)
	require.Len(t, c.notifier.successes, 1)
	assert.Equal(t, "Updated", c.notifier.successes[0])
	assert.Equal(t, 1, c.notifier.total(), "exactly one notice per call")
}

func TestClient_SuccessWithoutMessageEmitsNothing(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"id":1,"firstName":"A","lastName":"B"}}`))
	})

	c := newTestClient(t, handler, "tok")
	_, err := c.Family.Create(context.Background(), FamilyMember{FirstName: "A"})
	require.NoError(t, err)

	assert.Zero(t, c.notifier.total())
}

func TestClient_NonEnvelopePassesThrough(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"UP"}`))
	})

	c := newTestClient(t, handler, "tok")
	raw, err := c.do(context.Background(), http.MethodPost, "/ping", nil, nil)
	require.NoError(t, err)

	assert.JSONEq(t, `{"status":"UP"}`, string(raw))
	assert.Zero(t, c.notifier.total(), "non-enveloped responses never auto-toast")
}

func TestClient_SoftFailureIsAnError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Transport says OK, envelope says otherwise.
		w.Write([]byte(`{"success":false,"message":"Member not found","status":404}`))
	})

	c := newTestClient(t, handler, "tok")
	_, err := c.Family.Get(context.Background(), 99)
	require.Error(t, err)

	apiErr := &Error{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Member not found", apiErr.Message)
	assert.Equal(t, 404, apiErr.Status, "envelope status wins over transport status")

	require.Len(t, c.notifier.errors, 1)
	assert.Equal(t, "Member not found", c.notifier.errors[0])
}

func TestClient_SoftFailureWithoutStatusUsesTransport(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"nope"}`))
	})

	c := newTestClient(t, handler, "tok")
	_, err := c.Family.Get(context.Background(), 1)

	apiErr := &Error{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusOK, apiErr.Status)
}

func TestClient_ErrorMessagePrecedence(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"envelope message", `{"success":false,"message":"from envelope"}`, "from envelope"},
		{"plain message field", `{"message":"from body"}`, "from body"},
		{"plain string body", `"just text"`, "just text"},
		{"empty body", ``, "request failed with status 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(tt.body))
			})

			c := newTestClient(t, handler, "tok")
			_, err := c.Dashboard.Get(context.Background())

			apiErr := &Error{}
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Message)
			assert.Equal(t, http.StatusInternalServerError, apiErr.Status)

			require.Len(t, c.notifier.errors, 1)
			assert.Equal(t, tt.want, c.notifier.errors[0])
		})
	}
}

func TestClient_ValidationErrorsSurfaceAsFields(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"Validation failed","errors":{"email":"must be valid","firstName":"is required"}}`))
	})

	c := newTestClient(t, handler, "tok")
	_, err := c.Auth.Register(context.Background(), RegisterRequest{})

	apiErr := &Error{}
	require.ErrorAs(t, err, &apiErr)
	require.Len(t, apiErr.Errors, 2)
	assert.Equal(t, "email", apiErr.Errors[0].Field)
	assert.Equal(t, "must be valid", apiErr.Errors[0].Err.Error())
	assert.Equal(t, "firstName", apiErr.Errors[1].Field)
}

func TestClient_SuppressToast(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{},"message":"Created"}`))
		})

		c := newTestClient(t, handler, "tok")
		_, err := c.do(context.Background(), http.MethodPost, "/things", nil, nil, SuppressToast())
		require.NoError(t, err)
		assert.Zero(t, c.notifier.total())
	})

	t.Run("error", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"message":"boom"}`))
		})

		c := newTestClient(t, handler, "tok")
		_, err := c.do(context.Background(), http.MethodGet, "/things", nil, nil, SuppressToast())
		require.Error(t, err)
		assert.Zero(t, c.notifier.total())
	})
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	notifier := &recordingNotifier{}
	c := New(Config{BaseURL: srv.URL, Notifier: notifier, Logger: zerolog.Nop()})

	_, err := c.Dashboard.Get(context.Background())
	require.Error(t, err)

	apiErr := &Error{}
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
	assert.Len(t, notifier.errors, 1)
}

func TestClient_Unauthorized(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Invalid token"}`))
	})

	c := newTestClient(t, handler, "stale")
	_, err := c.Dashboard.Get(context.Background())
	require.Error(t, err)

	assert.True(t, IsAuthError(err))

	// Teardown before navigation, and all of it exactly once.
	assert.Equal(t, []string{"clear", "logout", "navigate"}, *c.events)

	// One notice total, with the fixed text.
	require.Len(t, c.notifier.errors, 1)
	assert.Equal(t, SessionExpiredMessage, c.notifier.errors[0])
	assert.Equal(t, 1, c.notifier.total())
}

func TestClient_UnauthorizedSuppressedStillTearsDown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c := newTestClient(t, handler, "stale")
	_, err := c.do(context.Background(), http.MethodGet, "/users/me", nil, nil, SuppressToast())
	require.Error(t, err)

	assert.Equal(t, []string{"clear", "logout", "navigate"}, *c.events)
	assert.Zero(t, c.notifier.total(), "only the notice is suppressible")
}

func TestParseEnvelope(t *testing.T) {
	env, isEnv, hasData := parseEnvelope([]byte(`{"success":true,"data":{"id":1}}`))
	assert.True(t, isEnv)
	assert.True(t, hasData)
	assert.True(t, env.Success)

	_, isEnv, _ = parseEnvelope([]byte(`{"id":1}`))
	assert.False(t, isEnv)

	_, isEnv, _ = parseEnvelope([]byte(`[1,2,3]`))
	assert.False(t, isEnv)

	env, isEnv, hasData = parseEnvelope([]byte(`{"success":true,"message":"Deleted"}`))
	assert.True(t, isEnv)
	assert.False(t, hasData)
	assert.Equal(t, "Deleted", env.Message)
}

func TestClient_SuccessWithoutDataPassesThrough(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"message":"Deleted"}`))
	})

	c := newTestClient(t, handler, "tok")
	raw, err := c.do(context.Background(), http.MethodDelete, "/family-members/1", nil, nil)
	require.NoError(t, err)

	// No data key: the body is not unwrapped and no notice fires.
	assert.JSONEq(t, `{"success":true,"message":"Deleted"}`, string(raw))
	assert.Zero(t, c.notifier.total())
}
