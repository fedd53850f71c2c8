package backend

import (
	"context"
	"net/http"

	"stytchup/models"
)

func (c *Client) MyOrders(ctx context.Context, token string) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/my-orders", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DesignerOrders(ctx context.Context, token string) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/designer-orders", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SubmitMeasurements(ctx context.Context, token, orderID string, m models.Measurements) error {
	body := map[string]interface{}{"orderId": orderID, "measurements": m}
	return c.do(ctx, http.MethodPost, "/orders/submit-measurements", token, body, nil)
}

func (c *Client) ShipOrder(ctx context.Context, token, orderID, trackingNumber, carrier string) error {
	body := map[string]string{
		"orderId":        orderID,
		"trackingNumber": trackingNumber,
		"carrier":        carrier,
	}
	return c.do(ctx, http.MethodPost, "/orders/ship", token, body, nil)
}

func (c *Client) CompleteOrder(ctx context.Context, token, orderID string) error {
	body := map[string]string{"orderId": orderID}
	return c.do(ctx, http.MethodPost, "/orders/complete", token, body, nil)
}
