package backend

import (
	"context"
	"net/http"

	"stytchup/models"
)

// AddDesignInput mirrors POST /designs/add; Price is already minor units.
type AddDesignInput struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       int64             `json:"price"`
	ImageURL    string            `json:"imageUrl"`
	Type        models.DesignType `json:"type"`
	Material    string            `json:"material"`
	SizeGuide   string            `json:"sizeGuide"`
}

func (c *Client) Designs(ctx context.Context) ([]models.Design, error) {
	var out []models.Design
	if err := c.do(ctx, http.MethodGet, "/designs", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Design(ctx context.Context, id string) (*models.Design, error) {
	var out models.Design
	if err := c.do(ctx, http.MethodGet, "/designs/"+id, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddDesign(ctx context.Context, token string, in AddDesignInput) error {
	return c.do(ctx, http.MethodPost, "/designs/add", token, in, nil)
}
