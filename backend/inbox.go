package backend

import (
	"context"
	"net/http"

	"stytchup/models"
)

func (c *Client) CreateConversation(ctx context.Context, token, targetUserID string) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	body := map[string]string{"targetUserId": targetUserID}
	if err := c.do(ctx, http.MethodPost, "/inbox/create", token, body, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) Conversations(ctx context.Context, token string) ([]models.Conversation, error) {
	var out []models.Conversation
	if err := c.do(ctx, http.MethodGet, "/inbox/list", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Messages(ctx context.Context, token, conversationID string) ([]models.Message, error) {
	var out []models.Message
	if err := c.do(ctx, http.MethodGet, "/inbox/"+conversationID+"/messages", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage posts a plain text message. The backend echoes it back through
// the push channel; nothing is appended locally on success.
func (c *Client) SendMessage(ctx context.Context, token, conversationID, text string) error {
	body := map[string]interface{}{"conversationId": conversationID, "text": text}
	return c.do(ctx, http.MethodPost, "/inbox/message", token, body, nil)
}

// SendOffer posts an offer message; price is minor units.
func (c *Client) SendOffer(ctx context.Context, token, conversationID, title string, price int64) error {
	body := map[string]interface{}{
		"conversationId": conversationID,
		"isOffer":        true,
		"offerTitle":     title,
		"offerPrice":     price,
	}
	return c.do(ctx, http.MethodPost, "/inbox/message", token, body, nil)
}
