// Package designs serves the catalog: the browse grid, the detail page
// with its buy-or-contact split, and the designer-facing add form.
package designs

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"stytchup/backend"
	"stytchup/middleware"
	"stytchup/models"
	"stytchup/utils"
	"stytchup/web"
)

type Handlers struct {
	Backend       *backend.Client
	Views         *web.Templates
	RazorpayKeyID string
}

func (h *Handlers) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	designs, err := h.Backend.Designs(r.Context())
	if err != nil {
		log.Println("designs list:", err)
		designs = nil
	}
	h.Views.Render(w, http.StatusOK, "designs.html", web.Page{
		Title:   "Browse Designs",
		Session: middleware.FromRequest(r),
		Data:    designs,
	})
}

type detailView struct {
	Design        *models.Design
	RazorpayKeyID string
}

// Detail shows a single design. CATALOG pieces carry a buy button wired to
// the checkout script; CUSTOM pieces get a contact-the-designer button
// instead, since their price is settled in chat.
func (h *Handlers) Detail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	design, err := h.Backend.Design(r.Context(), ps.ByName("id"))
	if err != nil {
		log.Println("design detail:", err)
		http.NotFound(w, r)
		return
	}
	h.Views.Render(w, http.StatusOK, "design_detail.html", web.Page{
		Title:   design.Title,
		Session: middleware.FromRequest(r),
		Data: detailView{
			Design:        design,
			RazorpayKeyID: h.RazorpayKeyID,
		},
	})
}

func (h *Handlers) AddPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.FromRequest(r)
	if !sess.IsDesigner() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.Views.Render(w, http.StatusOK, "add_design.html", web.Page{
		Title:   "Add Design",
		Session: sess,
	})
}

// Add accepts the new-design form. The image was already uploaded by the
// page script, so only its URL arrives here; the price comes in rupees and
// is converted once, at this boundary.
func (h *Handlers) Add(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.FromRequest(r)
	if !sess.IsDesigner() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	in, errMsg := parseAddForm(r)
	if errMsg != "" {
		h.Views.Render(w, http.StatusBadRequest, "add_design.html", web.Page{
			Title:   "Add Design",
			Session: sess,
			Error:   errMsg,
		})
		return
	}

	if err := h.Backend.AddDesign(r.Context(), sess.Token, in); err != nil {
		log.Println("add design:", err)
		msg := "Could not save the design"
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			msg = apiErr.Message
		}
		h.Views.Render(w, http.StatusBadGateway, "add_design.html", web.Page{
			Title:   "Add Design",
			Session: sess,
			Error:   msg,
		})
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func parseAddForm(r *http.Request) (backend.AddDesignInput, string) {
	var in backend.AddDesignInput

	in.Title = strings.TrimSpace(r.FormValue("title"))
	in.Description = strings.TrimSpace(r.FormValue("description"))
	in.ImageURL = strings.TrimSpace(r.FormValue("imageUrl"))
	in.Material = strings.TrimSpace(r.FormValue("material"))
	in.SizeGuide = strings.TrimSpace(r.FormValue("sizeGuide"))
	in.Type = models.DesignType(r.FormValue("type"))

	if in.Title == "" {
		return in, "Title is required"
	}
	if in.ImageURL == "" {
		return in, "Please upload an image first"
	}
	if in.Type != models.DesignCatalog && in.Type != models.DesignCustom {
		return in, "Pick a design type"
	}

	price, err := utils.ParsePriceToMinor(r.FormValue("price"))
	if err != nil {
		return in, "Enter a valid price"
	}
	in.Price = price
	return in, ""
}
