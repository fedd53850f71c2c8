package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stytchup/models"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])
		assert.Equal(t, "secret", body["password"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"user":  map[string]string{"id": "u1", "email": "a@b.com", "name": "A", "role": "CUSTOMER"},
			"token": "tok123",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	res, err := c.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", res.User.ID)
	assert.Equal(t, "CUSTOMER", res.User.Role)
	assert.Equal(t, "tok123", res.Token)
}

func TestLoginErrorSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

func TestMyOrdersSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/my-orders", r.URL.Path)
		require.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]models.Order{
			{ID: "o1", Status: models.OrderShipped, TotalAmount: 4999, TrackingNumber: "TRK1", ShippingCarrier: "BlueDart"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	orders, err := c.MyOrders(context.Background(), "tok123")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderShipped, orders[0].Status)
	assert.Equal(t, "BlueDart", orders[0].ShippingCarrier)
}

func TestSendOfferBody(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/inbox/message", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.SendOffer(context.Background(), "tok", "c1", "Custom suit", 4999))

	assert.Equal(t, "c1", got["conversationId"])
	assert.Equal(t, true, got["isOffer"])
	assert.Equal(t, "Custom suit", got["offerTitle"])
	assert.Equal(t, float64(4999), got["offerPrice"])
}

func TestContextCancellationAborts(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	c := New(srv.URL)
	_, err := c.Designs(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
