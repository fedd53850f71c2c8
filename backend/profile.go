package backend

import (
	"context"
	"net/http"

	"stytchup/models"
)

// ProfileUpdate is the flat settings form, serialized whole on save.
type ProfileUpdate struct {
	Name      string   `json:"name"`
	Bio       string   `json:"bio"`
	Location  string   `json:"location"`
	Website   string   `json:"website"`
	AvatarURL string   `json:"avatarUrl"`
	Skills    []string `json:"skills"`
	Instagram string   `json:"instagram"`
	Behance   string   `json:"behance"`
}

func (c *Client) Settings(ctx context.Context, token string) (*models.Settings, error) {
	var out models.Settings
	if err := c.do(ctx, http.MethodGet, "/profile/settings", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, in ProfileUpdate) error {
	return c.do(ctx, http.MethodPut, "/profile/update", token, in, nil)
}
