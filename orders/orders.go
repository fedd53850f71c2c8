// Package orders covers both sides of the order lifecycle: the customer's
// order list with its measurements and confirm-delivery steps, and the
// designer dashboard with shipping.
package orders

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/julienschmidt/httprouter"

	"stytchup/backend"
	"stytchup/middleware"
	"stytchup/models"
	"stytchup/utils"
	"stytchup/web"
)

// measurementFields is the fixed set of inputs on the measurements form,
// in display order.
var measurementFields = []string{"chest", "waist", "hips", "shoulders", "sleeveLength", "inseam", "height", "notes"}

type Handlers struct {
	Backend *backend.Client
	Views   *web.Templates
}

// My renders the customer's order history. Orders in
// AWAITING_REQUIREMENTS surface a link to the measurements form; SHIPPED
// orders surface the confirm-delivery button.
func (h *Handlers) My(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.FromRequest(r)
	orders, err := h.Backend.MyOrders(r.Context(), sess.Token)
	if err != nil {
		log.Println("my orders:", err)
		orders = nil
	}
	h.Views.Render(w, http.StatusOK, "orders.html", web.Page{
		Title:   "My Orders",
		Session: sess,
		Message: r.URL.Query().Get("message"),
		Error:   r.URL.Query().Get("error"),
		Data:    orders,
	})
}

type measurementsView struct {
	OrderID string
	Fields  []string
}

func (h *Handlers) MeasurementsPage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	h.Views.Render(w, http.StatusOK, "measurements.html", web.Page{
		Title:   "Your Measurements",
		Session: middleware.FromRequest(r),
		Data: measurementsView{
			OrderID: ps.ByName("id"),
			Fields:  measurementFields,
		},
	})
}

// SubmitMeasurements posts the form and moves the order into production.
// Only the known fields are forwarded; blanks are dropped.
func (h *Handlers) SubmitMeasurements(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := middleware.FromRequest(r)
	orderID := ps.ByName("id")

	m := models.Measurements{}
	for _, f := range measurementFields {
		if v := strings.TrimSpace(r.FormValue(f)); v != "" {
			m[f] = v
		}
	}
	if len(m) == 0 {
		h.Views.Render(w, http.StatusBadRequest, "measurements.html", web.Page{
			Title:   "Your Measurements",
			Session: sess,
			Error:   "Please fill in at least one measurement",
			Data:    measurementsView{OrderID: orderID, Fields: measurementFields},
		})
		return
	}

	if err := h.Backend.SubmitMeasurements(r.Context(), sess.Token, orderID, m); err != nil {
		log.Println("submit measurements:", err)
		h.Views.Render(w, http.StatusBadGateway, "measurements.html", web.Page{
			Title:   "Your Measurements",
			Session: sess,
			Error:   "Could not submit measurements, please try again",
			Data:    measurementsView{OrderID: orderID, Fields: measurementFields},
		})
		return
	}
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

// Complete is the customer confirming delivery of a shipped order. Either
// way the customer lands back on the list, with a flash saying what
// happened.
func (h *Handlers) Complete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := middleware.FromRequest(r)
	if err := h.Backend.CompleteOrder(r.Context(), sess.Token, ps.ByName("id")); err != nil {
		log.Println("complete order:", err)
		http.Redirect(w, r, "/orders?error="+url.QueryEscape("Could not confirm delivery, please try again"), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/orders?message="+url.QueryEscape("Delivery confirmed"), http.StatusSeeOther)
}

// Dashboard is the designer's incoming-orders view.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.FromRequest(r)
	if !sess.IsDesigner() {
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}
	orders, err := h.Backend.DesignerOrders(r.Context(), sess.Token)
	if err != nil {
		log.Println("designer orders:", err)
		orders = nil
	}
	h.Views.Render(w, http.StatusOK, "dashboard.html", web.Page{
		Title:   "Dashboard",
		Session: sess,
		Data:    orders,
	})
}

// Ship records tracking details for an in-production order. Called from
// the dashboard's ship modal as JSON.
func (h *Handlers) Ship(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sess := middleware.FromRequest(r)
	if !sess.IsDesigner() {
		utils.RespondWithError(w, http.StatusForbidden, "designers only")
		return
	}

	var in struct {
		TrackingNumber string `json:"trackingNumber"`
		Carrier        string `json:"carrier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid body")
		return
	}
	in.TrackingNumber = strings.TrimSpace(in.TrackingNumber)
	in.Carrier = strings.TrimSpace(in.Carrier)
	if in.TrackingNumber == "" || in.Carrier == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "tracking number and carrier are required")
		return
	}

	if err := h.Backend.ShipOrder(r.Context(), sess.Token, ps.ByName("id"), in.TrackingNumber, in.Carrier); err != nil {
		log.Println("ship order:", err)
		utils.RespondWithError(w, http.StatusBadGateway, "could not mark as shipped")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
