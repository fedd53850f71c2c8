package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stytchup/backend"
	"stytchup/globals"
	"stytchup/session"
)

func authedJSON(target, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	sess := &session.Session{ID: "s1", UserID: "u1", Token: "tok"}
	return r.WithContext(context.WithValue(r.Context(), globals.SessionKey, sess))
}

func TestVerifyForwardsOverlayFieldsVerbatim(t *testing.T) {
	var forwarded map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&forwarded))
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	h := &Handlers{Backend: backend.New(srv.URL)}

	body := `{"razorpay_order_id":"order_1","razorpay_payment_id":"pay_1","razorpay_signature":"sig==abc","dbOrderId":"db1"}`
	w := httptest.NewRecorder()
	h.Verify(w, authedJSON("/api/payments/verify", body), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  "sig==abc",
		"dbOrderId":           "db1",
	}, forwarded)

	var out map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.True(t, out["success"])
}

func TestVerifyRejectsMissingFields(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	h := &Handlers{Backend: backend.New(srv.URL)}

	w := httptest.NewRecorder()
	h.Verify(w, authedJSON("/api/payments/verify", `{"razorpay_order_id":"order_1"}`), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, calls)
}

func TestCreateOrderValidatesType(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"id":"order_1","amount":4999,"currency":"INR","dbOrderId":"db1"}`))
	}))
	defer srv.Close()

	h := &Handlers{Backend: backend.New(srv.URL)}

	w := httptest.NewRecorder()
	h.CreateOrder(w, authedJSON("/api/payments/create-order", `{"amount":4999,"sourceId":"d1","type":"GIFT_CARD"}`), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, calls)

	w = httptest.NewRecorder()
	h.CreateOrder(w, authedJSON("/api/payments/create-order", `{"amount":4999,"sourceId":"d1","type":"CATALOG"}`), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, calls)
}
