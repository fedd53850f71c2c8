// Package payments exposes the two JSON endpoints the checkout script
// drives: creating a gateway order and relaying the overlay's signature
// for verification.
package payments

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"stytchup/backend"
	"stytchup/middleware"
	"stytchup/models"
	"stytchup/utils"
)

type Handlers struct {
	Backend *backend.Client
}

type createOrderRequest struct {
	Amount   int64              `json:"amount"`
	SourceID string             `json:"sourceId"`
	Type     models.PaymentType `json:"type"`
}

// CreateOrder asks the backend for a gateway order the overlay can open.
// Amount is already in minor units by the time it reaches this endpoint.
func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.FromRequest(r)

	var in createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if in.Amount <= 0 || in.SourceID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "amount and sourceId are required")
		return
	}
	if in.Type != models.PayCatalog && in.Type != models.PayChatOffer {
		utils.RespondWithError(w, http.StatusBadRequest, "unknown payment type")
		return
	}

	order, err := h.Backend.CreatePaymentOrder(r.Context(), sess.Token, in.Amount, in.SourceID, in.Type)
	if err != nil {
		log.Println("create payment order:", err)
		utils.RespondWithError(w, http.StatusBadGateway, "could not create order")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

// Verify relays the overlay's fields untouched and reports the backend's
// verdict. No signature math happens on this side.
func (h *Handlers) Verify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.FromRequest(r)

	var v models.PaymentVerification
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if v.RazorpayOrderID == "" || v.RazorpayPaymentID == "" || v.RazorpaySignature == "" || v.DBOrderID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "missing verification fields")
		return
	}

	ok, err := h.Backend.VerifyPayment(r.Context(), sess.Token, v)
	if err != nil {
		log.Println("verify payment:", err)
		utils.RespondWithError(w, http.StatusBadGateway, "verification failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": ok})
}
