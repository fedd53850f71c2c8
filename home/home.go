// Package home serves the landing page: a slice of recent designs and a
// few featured designers. Backend failures degrade to empty sections so
// the page always renders.
package home

import (
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"stytchup/backend"
	"stytchup/middleware"
	"stytchup/models"
	"stytchup/web"
)

const (
	featuredDesigns   = 4
	featuredDesigners = 3
)

type Handlers struct {
	Backend *backend.Client
	Views   *web.Templates
}

type homeView struct {
	Designs   []models.Design
	Designers []models.Designer
}

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var view homeView

	if designs, err := h.Backend.Designs(r.Context()); err == nil {
		if len(designs) > featuredDesigns {
			designs = designs[:featuredDesigns]
		}
		view.Designs = designs
	} else {
		log.Println("home designs:", err)
	}

	if designers, err := h.Backend.Designers(r.Context()); err == nil {
		if len(designers) > featuredDesigners {
			designers = designers[:featuredDesigners]
		}
		view.Designers = designers
	} else {
		log.Println("home designers:", err)
	}

	h.Views.Render(w, http.StatusOK, "home.html", web.Page{
		Title:   "StytchUp",
		Session: middleware.FromRequest(r),
		Data:    view,
	})
}
