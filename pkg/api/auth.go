package api

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a bearer token and the account record.
// Invalid credentials come back as a *Error with status 401; they are an
// expected outcome, not an exceptional one.
func (c *Client) Login(ctx context.Context, username, password string) (*Credentials, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var creds Credentials
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Signup registers a new account. It does not establish a session; callers
// chain Login afterwards, mirroring the backend contract.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", req, nil)
}
