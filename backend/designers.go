package backend

import (
	"context"
	"net/http"

	"stytchup/models"
)

func (c *Client) Designers(ctx context.Context) ([]models.Designer, error) {
	var out []models.Designer
	if err := c.do(ctx, http.MethodGet, "/designers/", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Designer(ctx context.Context, id string) (*models.Designer, error) {
	var out models.Designer
	if err := c.do(ctx, http.MethodGet, "/designers/"+id, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
