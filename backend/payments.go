package backend

import (
	"context"
	"net/http"

	"stytchup/models"
)

func (c *Client) CreatePaymentOrder(ctx context.Context, token string, amount int64, sourceID string, typ models.PaymentType) (*models.GatewayOrder, error) {
	var out models.GatewayOrder
	body := map[string]interface{}{
		"amount":   amount,
		"sourceId": sourceID,
		"type":     typ,
	}
	if err := c.do(ctx, http.MethodPost, "/payments/create-order", token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyPayment forwards the overlay's three signature fields plus our order
// id exactly as received. The backend decides; we only relay its verdict.
func (c *Client) VerifyPayment(ctx context.Context, token string, v models.PaymentVerification) (bool, error) {
	var out struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodPost, "/payments/verify", token, v, &out); err != nil {
		return false, err
	}
	return out.Success, nil
}
