package backend

import (
	"context"
	"net/http"

	"stytchup/models"
)

// LoginResult is the backend's answer to a successful credential or Google
// sign-in: the user record plus the bearer token all later calls carry.
type LoginResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var out LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GoogleSync tells the backend about a Google-authenticated user and gets a
// local account + token back, creating the account on first sign-in.
func (c *Client) GoogleSync(ctx context.Context, email, name string) (*LoginResult, error) {
	var out LoginResult
	body := map[string]string{"email": email, "name": name}
	if err := c.do(ctx, http.MethodPost, "/auth/google-sync", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/register", "", body, nil)
}

func (c *Client) ChangeRole(ctx context.Context, token, role string) error {
	body := map[string]string{"role": role}
	return c.do(ctx, http.MethodPost, "/auth/change-role", token, body, nil)
}
