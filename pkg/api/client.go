// Package api is a typed client for the resto REST backend. Each call is an
// independent request/response pair: no retries, no deduplication, no
// caching. Failures are normalized into *Error so callers can distinguish
// authentication failures from everything else.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrConnection wraps transport and response-parsing failures. The original
// cause is preserved for diagnostics; user-facing code shows a generic
// "connection failed" message.
var ErrConnection = errors.New("connection failed")

// Error is a normalized backend failure: the HTTP status plus the message
// the backend provided, falling back to a status-derived message. Backends
// report failures as either an "error" or a "message" field; "error" wins.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// IsAuthError reports whether err is a 401 or 403 backend response, meaning
// the caller should prompt for re-authentication rather than show a generic
// failure.
func IsAuthError(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// TokenProvider supplies the current bearer token, if any. The session store
// implements it.
type TokenProvider interface {
	Token() (string, bool)
}

// Client talks to the resto backend.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	tokens        TokenProvider
	authErrorHook func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenProvider sets the source of bearer tokens for authenticated calls.
func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) { c.tokens = tp }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a client for the backend at baseURL (e.g.
// "http://localhost:5000/api"). Requests time out after 15 seconds unless
// overridden.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnAuthError registers a hook invoked whenever any call fails with 401 or
// 403. The session layer uses it to drop a stale session.
func (c *Client) OnAuthError(fn func()) {
	c.authErrorHook = fn
}

// do issues one request. A non-2xx response becomes a *Error; transport and
// decode failures become ErrConnection wraps.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(payload, resp.StatusCode),
		}
		if IsAuthError(apiErr) && c.authErrorHook != nil {
			c.authErrorHook()
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("%w: %v", ErrConnection, err)
		}
	}
	return nil
}

// errorMessage extracts the backend's message from an error body. Endpoints
// historically used "error" and "message" interchangeably; "error" wins,
// then "message", then the HTTP status text.
func errorMessage(payload []byte, statusCode int) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return http.StatusText(statusCode)
}
