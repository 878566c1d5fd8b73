package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/accommotrack/client-go/internal/models"
)

// LoginResponse carries the bearer token and the denormalized user copy
// the session store persists.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/logout", nil, nil, nil)
}

// EmailAvailability is the backend's answer to a uniqueness probe.
type EmailAvailability struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}

// CheckEmail asks whether email is free to register. Transport failures
// surface as *NetworkError so the caller can fail open.
func (c *Client) CheckEmail(ctx context.Context, email string) (*EmailAvailability, error) {
	q := url.Values{"email": {email}}
	var out EmailAvailability
	if err := c.doJSON(ctx, http.MethodGet, "/check-email", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
