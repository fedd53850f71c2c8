// Package designers serves the public designer directory and the single
// designer page with their portfolio.
package designers

import (
	"log"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"stytchup/backend"
	"stytchup/middleware"
	"stytchup/web"
)

type Handlers struct {
	Backend *backend.Client
	Views   *web.Templates
}

func (h *Handlers) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	designers, err := h.Backend.Designers(r.Context())
	if err != nil {
		log.Println("designers list:", err)
		designers = nil
	}
	h.Views.Render(w, http.StatusOK, "designers.html", web.Page{
		Title:   "Find a Designer",
		Session: middleware.FromRequest(r),
		Data:    designers,
	})
}

func (h *Handlers) Detail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	designer, err := h.Backend.Designer(r.Context(), ps.ByName("id"))
	if err != nil {
		log.Println("designer detail:", err)
		http.NotFound(w, r)
		return
	}
	h.Views.Render(w, http.StatusOK, "designer_detail.html", web.Page{
		Title:   designer.Name,
		Session: middleware.FromRequest(r),
		Data:    designer,
	})
}
