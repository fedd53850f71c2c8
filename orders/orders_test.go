package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stytchup/backend"
	"stytchup/globals"
	"stytchup/session"
)

func requestAs(sess *session.Session, method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	return r.WithContext(context.WithValue(r.Context(), globals.SessionKey, sess))
}

func designer() *session.Session {
	return &session.Session{ID: "s1", UserID: "d1", Role: "DESIGNER", Token: "tok"}
}

func customer() *session.Session {
	return &session.Session{ID: "s2", UserID: "u1", Role: "CUSTOMER", Token: "tok"}
}

func TestShipRequiresDesignerRole(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	h := &Handlers{Backend: backend.New(srv.URL)}

	w := httptest.NewRecorder()
	body := `{"trackingNumber":"TRK123","carrier":"Delhivery"}`
	h.Ship(w, requestAs(customer(), http.MethodPost, "/api/orders/o1/ship", body), httprouter.Params{{Key: "id", Value: "o1"}})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Zero(t, calls)
}

func TestShipForwardsTrackingDetails(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	h := &Handlers{Backend: backend.New(srv.URL)}

	w := httptest.NewRecorder()
	body := `{"trackingNumber":" TRK123 ","carrier":"Delhivery"}`
	h.Ship(w, requestAs(designer(), http.MethodPost, "/api/orders/o1/ship", body), httprouter.Params{{Key: "id", Value: "o1"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "o1", got["orderId"])
	assert.Equal(t, "TRK123", got["trackingNumber"])
	assert.Equal(t, "Delhivery", got["carrier"])
}

func TestShipRejectsMissingFields(t *testing.T) {
	h := &Handlers{Backend: backend.New("http://127.0.0.1:0")}

	w := httptest.NewRecorder()
	h.Ship(w, requestAs(designer(), http.MethodPost, "/api/orders/o1/ship", `{"trackingNumber":"","carrier":"Delhivery"}`), httprouter.Params{{Key: "id", Value: "o1"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompleteSurfacesBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"order is not shipped"}`, http.StatusConflict)
	}))
	defer srv.Close()

	h := &Handlers{Backend: backend.New(srv.URL)}

	w := httptest.NewRecorder()
	h.Complete(w, requestAs(customer(), http.MethodPost, "/orders/o1/complete", ""), httprouter.Params{{Key: "id", Value: "o1"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/orders", loc.Path)
	assert.NotEmpty(t, loc.Query().Get("error"))
	assert.Empty(t, loc.Query().Get("message"))
}

func TestCompleteConfirmsOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	h := &Handlers{Backend: backend.New(srv.URL)}

	w := httptest.NewRecorder()
	h.Complete(w, requestAs(customer(), http.MethodPost, "/orders/o1/complete", ""), httprouter.Params{{Key: "id", Value: "o1"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.NotEmpty(t, loc.Query().Get("message"))
	assert.Empty(t, loc.Query().Get("error"))
}

func TestSubmitMeasurementsDropsBlanksAndForwardsRest(t *testing.T) {
	var got struct {
		OrderID      string            `json:"orderId"`
		Measurements map[string]string `json:"measurements"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	h := &Handlers{Backend: backend.New(srv.URL)}

	r := requestAs(customer(), http.MethodPost, "/orders/o1/measurements", "")
	r.Form = url.Values{
		"chest": {"38"},
		"waist": {"  "},
		"notes": {"long sleeves please"},
	}
	w := httptest.NewRecorder()
	h.SubmitMeasurements(w, r, httprouter.Params{{Key: "id", Value: "o1"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "o1", got.OrderID)
	assert.Equal(t, map[string]string{"chest": "38", "notes": "long sleeves please"}, got.Measurements)
}
