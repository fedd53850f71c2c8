// Package profile renders the settings form and saves it back whole.
package profile

import (
	"log"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"stytchup/backend"
	"stytchup/middleware"
	"stytchup/web"
)

type Handlers struct {
	Backend *backend.Client
	Views   *web.Templates
}

func (h *Handlers) SettingsPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.FromRequest(r)
	settings, err := h.Backend.Settings(r.Context(), sess.Token)
	if err != nil {
		log.Println("settings:", err)
		h.Views.Render(w, http.StatusBadGateway, "settings.html", web.Page{
			Title:   "Settings",
			Session: sess,
			Error:   "Could not load your profile",
		})
		return
	}
	h.Views.Render(w, http.StatusOK, "settings.html", web.Page{
		Title:   "Settings",
		Session: sess,
		Data:    settings,
	})
}

// Update saves the flat form. Skills arrive comma-separated and are split
// here; the name change is mirrored onto the session so the navbar is
// right on the very next page.
func (h *Handlers) Update(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.FromRequest(r)

	in := backend.ProfileUpdate{
		Name:      strings.TrimSpace(r.FormValue("name")),
		Bio:       strings.TrimSpace(r.FormValue("bio")),
		Location:  strings.TrimSpace(r.FormValue("location")),
		Website:   strings.TrimSpace(r.FormValue("website")),
		AvatarURL: strings.TrimSpace(r.FormValue("avatarUrl")),
		Skills:    splitSkills(r.FormValue("skills")),
		Instagram: strings.TrimSpace(r.FormValue("instagram")),
		Behance:   strings.TrimSpace(r.FormValue("behance")),
	}
	if in.Name == "" {
		h.Views.Render(w, http.StatusBadRequest, "settings.html", web.Page{
			Title:   "Settings",
			Session: sess,
			Error:   "Name cannot be empty",
		})
		return
	}

	if err := h.Backend.UpdateProfile(r.Context(), sess.Token, in); err != nil {
		log.Println("update profile:", err)
		h.Views.Render(w, http.StatusBadGateway, "settings.html", web.Page{
			Title:   "Settings",
			Session: sess,
			Error:   "Could not save your changes",
		})
		return
	}
	http.Redirect(w, r, "/settings?message=Saved", http.StatusSeeOther)
}

func splitSkills(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
