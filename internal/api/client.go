// Package api is the HTTP client for the MediTrack backend. It owns every
// cross-cutting request behavior: bearer token attachment, unwrapping of
// the backend's response envelope, toast emission, and session teardown on
// authentication failure.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/meditrack/meditrack/pkg/randid"
)

// SessionExpiredMessage is the fixed notice shown when a 401 tears down
// the session.
const SessionExpiredMessage = "Session expired. Please login again."

// Credentials supplies the bearer token for outbound requests.
type Credentials interface {
	Token() string
}

// Notifier receives toast notifications emitted by the client.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Config wires the client to its collaborators. All hooks are optional;
// a nil hook is skipped.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Credentials sources checked in order; the first non-empty token wins.
	// Typically the session container first, the persistent store second.
	Credentials []Credentials

	Notifier Notifier

	// ClearAuth removes persisted auth. Runs first on a 401.
	ClearAuth func()
	// Logout triggers the session container's logout transition.
	Logout func()
	// Navigate forces the view back to the login screen. Runs last on a 401.
	Navigate func()

	Logger     zerolog.Logger
	HTTPClient *http.Client // overrides Timeout when set, used by tests
}

// Client issues requests against the MediTrack REST API.
type Client struct {
	base     string
	http     *http.Client
	creds    []Credentials
	notifier Notifier

	clearAuth func()
	logout    func()
	navigate  func()

	log zerolog.Logger

	Auth        *AuthService
	Users       *UsersService
	Family      *FamilyService
	Records     *RecordsService
	Medications *MedicationsService
	Dashboard   *DashboardService
	Suggestions *SuggestionsService
}

// New creates a Client from cfg.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	c := &Client{
		base:      strings.TrimRight(cfg.BaseURL, "/"),
		http:      httpClient,
		creds:     cfg.Credentials,
		notifier:  cfg.Notifier,
		clearAuth: cfg.ClearAuth,
		logout:    cfg.Logout,
		navigate:  cfg.Navigate,
		log:       cfg.Logger,
	}

	c.Auth = &AuthService{c}
	c.Users = &UsersService{c}
	c.Family = &FamilyService{c}
	c.Records = &RecordsService{c}
	c.Medications = &MedicationsService{c}
	c.Dashboard = &DashboardService{c}
	c.Suggestions = &SuggestionsService{c}

	return c
}

// CallOption adjusts a single call.
type CallOption func(*callOptions)

type callOptions struct {
	suppressToast bool
}

// SuppressToast disables toast emission for this call. Teardown side
// effects of a 401 still run.
func SuppressToast() CallOption {
	return func(o *callOptions) { o.suppressToast = true }
}

// envelope is the backend's standardized response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Status  int             `json:"status"`
	Errors  json.RawMessage `json:"errors"`
}

// parseEnvelope detects the standardized envelope: a JSON object with a
// "success" key. hasData reports whether the "data" key was present at all.
func parseEnvelope(body []byte) (env envelope, isEnvelope, hasData bool) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return envelope{}, false, false
	}
	if _, ok := probe["success"]; !ok {
		return envelope{}, false, false
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope{}, false, false
	}
	_, hasData = probe["data"]
	return env, true, hasData
}

// do issues a request and returns the effective response body: the
// envelope's data when the response is enveloped, the raw body otherwise.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, opts ...CallOption) (json.RawMessage, error) {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("encode request: %v", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	reqID := randid.Generate(8)
	c.log.Debug().Str("req_id", reqID).Str("method", method).Str("path", path).Msg("request")

	resp, err := c.http.Do(req)
	if err != nil {
		// Transport failure: network unreachable, timeout. The transport
		// error's message is the best we have.
		c.log.Debug().Str("req_id", reqID).Err(err).Msg("transport error")
		apiErr := &Error{Message: err.Error()}
		c.notifyError(apiErr.Message, o)
		return nil, apiErr
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr := &Error{Message: err.Error(), Status: resp.StatusCode}
		c.notifyError(apiErr.Message, o)
		return nil, apiErr
	}

	c.log.Debug().Str("req_id", reqID).Int("status", resp.StatusCode).Msg("response")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return c.handleOK(method, resp.StatusCode, raw, o)
	}
	return nil, c.handleHTTPError(resp.StatusCode, raw, o)
}

// handleOK processes a 2xx response: unwrap the envelope when present and
// decide on a single optional notice.
func (c *Client) handleOK(method string, status int, raw []byte, o callOptions) (json.RawMessage, error) {
	env, isEnvelope, hasData := parseEnvelope(raw)
	if !isEnvelope {
		// Ad hoc response: pass through untouched, callers own their own
		// success messaging.
		return raw, nil
	}

	if env.Success {
		if !hasData {
			return raw, nil
		}
		// GET never auto-emits success notices, so list and detail calls
		// stay quiet even when the backend attaches a message.
		if env.Message != "" && method != http.MethodGet {
			c.notifySuccess(env.Message, o)
		}
		return env.Data, nil
	}

	// Soft failure: transport said OK, envelope says otherwise.
	effectiveStatus := env.Status
	if effectiveStatus == 0 {
		effectiveStatus = status
	}
	apiErr := &Error{
		Message: env.Message,
		Errors:  fieldErrors(env.Errors),
		Status:  effectiveStatus,
	}
	if apiErr.Message == "" {
		apiErr.Message = fallbackMessage
	}
	c.notifyError(apiErr.Message, o)
	return nil, apiErr
}

// handleHTTPError normalizes a non-2xx response and runs the 401 teardown.
func (c *Client) handleHTTPError(status int, raw []byte, o callOptions) error {
	apiErr := &Error{Message: fallbackMessage, Status: status}

	if env, isEnvelope, _ := parseEnvelope(raw); isEnvelope && !env.Success {
		if env.Message != "" {
			apiErr.Message = env.Message
		}
		apiErr.Errors = fieldErrors(env.Errors)
	} else if msg := looseMessage(raw); msg != "" {
		apiErr.Message = msg
	} else {
		apiErr.Message = fmt.Sprintf("request failed with status %d", status)
	}

	if status == http.StatusUnauthorized {
		// Teardown order matters: persisted auth first, then the session
		// container, then the single fixed notice, then navigation. Only
		// the notice is suppressible.
		if c.clearAuth != nil {
			c.clearAuth()
		}
		if c.logout != nil {
			c.logout()
		}
		c.notifyError(SessionExpiredMessage, o)
		if c.navigate != nil {
			c.navigate()
		}
		return apiErr
	}

	c.notifyError(apiErr.Message, o)
	return apiErr
}

// looseMessage extracts a message from a non-enveloped error body: an
// object with a "message" field, or a plain string.
func looseMessage(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return ""
}

// token resolves the bearer token from the credential sources in order.
func (c *Client) token() string {
	for _, source := range c.creds {
		if source == nil {
			continue
		}
		if t := source.Token(); t != "" {
			return t
		}
	}
	return ""
}

func (c *Client) notifySuccess(msg string, o callOptions) {
	if c.notifier != nil && !o.suppressToast {
		c.notifier.Success(msg)
	}
}

func (c *Client) notifyError(msg string, o callOptions) {
	if c.notifier != nil && !o.suppressToast {
		c.notifier.Error(msg)
	}
}

// get issues a GET and decodes the effective body into out when non-nil.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any, opts ...CallOption) error {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil, opts...)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	raw, err := c.do(ctx, http.MethodPost, path, nil, body, opts...)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

func (c *Client) put(ctx context.Context, path string, query url.Values, body, out any, opts ...CallOption) error {
	raw, err := c.do(ctx, http.MethodPut, path, query, body, opts...)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

func (c *Client) delete(ctx context.Context, path string, opts ...CallOption) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, opts...)
	return err
}

func decode(raw json.RawMessage, out any) error {
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}
