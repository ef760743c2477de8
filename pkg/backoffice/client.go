package backoffice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// APIError is a non-2xx response from the back office, carrying the HTTP
// status and the envelope message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsUnauthenticated reports whether err is a 401 from the API. By the time a
// caller sees it, the local session has already been cleared.
func IsUnauthenticated(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// apiEnvelope is the wrapper every endpoint responds with.
type apiEnvelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Code    int             `json:"code"`
	Error   bool            `json:"error"`
}

// loginResult is the data block of a successful login.
type loginResult struct {
	User  Identity `json:"user"`
	Token string   `json:"token"`
}

// ClientOptions configures a Client.
type ClientOptions struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string
	// HTTPClient defaults to http.DefaultClient. No timeouts are configured
	// beyond what the supplied client carries.
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client is the single egress point for back-office calls. It attaches the
// session's bearer credential to every request, and clears the session before
// surfacing any 401 — callers observing the error always see logged-out state.
// Reads are retried once on transport errors and 5xx responses; writes never
// retry.
type Client struct {
	baseURL string
	http    *http.Client
	session *SessionStore
	log     zerolog.Logger
}

// NewClient creates a Client bound to the given session store.
func NewClient(opts ClientOptions, session *SessionStore) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: opts.BaseURL,
		http:    httpClient,
		session: session,
		log:     opts.Logger,
	}
}

// Login authenticates against POST /auth/login and persists the returned
// user and token in the session store.
func (c *Client) Login(ctx context.Context, email, password string) (Identity, error) {
	body := map[string]string{"email": email, "password": password}

	data, err := c.do(ctx, http.MethodPost, "/auth/login", body)
	if err != nil {
		return Identity{}, err
	}

	var result loginResult
	if err := json.Unmarshal(data, &result); err != nil {
		return Identity{}, fmt.Errorf("decode login response: %w", err)
	}
	if err := c.session.Login(result.User, result.Token); err != nil {
		return Identity{}, err
	}
	return result.User, nil
}

// Logout revokes the server session and clears the local one. The local
// session is cleared even when the server call fails — a dead session on this
// side must never outlive a logout request.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil)
	c.session.Logout()
	if err != nil && !IsUnauthenticated(err) {
		return err
	}
	return nil
}

// GetUser fetches a user resource by id.
func (c *Client) GetUser(ctx context.Context, id int64) (Identity, error) {
	data, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil)
	if err != nil {
		return Identity{}, err
	}

	var user Identity
	if err := json.Unmarshal(data, &user); err != nil {
		return Identity{}, fmt.Errorf("decode user: %w", err)
	}
	return user, nil
}

// RefreshCurrentUser refetches the session user's profile and overwrites the
// cached identity on success.
func (c *Client) RefreshCurrentUser(ctx context.Context) (Identity, error) {
	current := c.session.User()
	if current == nil {
		return Identity{}, &APIError{Status: http.StatusUnauthorized, Message: "no active session"}
	}

	user, err := c.GetUser(ctx, current.ID)
	if err != nil {
		return Identity{}, err
	}
	if err := c.session.SetUser(user); err != nil {
		return Identity{}, err
	}
	return user, nil
}

// Dashboard fetches /dashboard and classifies the role-shaped payload.
func (c *Client) Dashboard(ctx context.Context) (Dashboard, error) {
	data, err := c.do(ctx, http.MethodGet, "/dashboard", nil)
	if err != nil {
		return Dashboard{}, err
	}
	return ClassifyDashboard(data)
}

// do performs one API call and returns the envelope's data block. GET
// requests get at most one silent retry; every 401 clears the session before
// the error is returned.
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
	}

	attempts := 1
	if method == http.MethodGet {
		attempts = 2
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		data, retryable, err := c.doOnce(ctx, method, path, payload)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
		c.log.Debug().Err(err).Str("path", path).Msg("retrying read request")
	}
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, method, path string, payload []byte) (json.RawMessage, bool, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("read response: %w", err)
	}

	var env apiEnvelope
	message := http.StatusText(resp.StatusCode)
	if len(raw) > 0 && json.Unmarshal(raw, &env) == nil && env.Message != "" {
		message = env.Message
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// Clear state first so error handlers observe a logged-out session.
		c.session.Logout()
		return nil, false, &APIError{Status: resp.StatusCode, Message: message}
	case resp.StatusCode >= 500:
		return nil, true, &APIError{Status: resp.StatusCode, Message: message}
	case resp.StatusCode >= 400:
		return nil, false, &APIError{Status: resp.StatusCode, Message: message}
	}

	return env.Data, false, nil
}
