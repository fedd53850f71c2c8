package auth

import (
	"log"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"stytchup/backend"
	"stytchup/middleware"
	"stytchup/session"
	"stytchup/web"
)

type Handlers struct {
	Backend  *backend.Client
	Sessions *session.Manager
	Views    *web.Templates
	Google   GoogleConfig
}

func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Views.Render(w, http.StatusOK, "login.html", web.Page{
		Title:   "Login",
		Message: r.URL.Query().Get("message"),
		Data:    map[string]string{"Next": r.URL.Query().Get("next")},
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	res, err := h.Backend.Login(r.Context(), email, password)
	if err != nil {
		h.Views.Render(w, http.StatusUnauthorized, "login.html", web.Page{
			Title: "Login",
			Error: "Invalid email or password",
			Data:  map[string]string{"Next": r.FormValue("next")},
		})
		return
	}

	if _, err := h.Sessions.Create(r.Context(), w, res.User, res.Token); err != nil {
		log.Println("session create:", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	next := r.FormValue("next")
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/"
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (h *Handlers) RegisterPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Views.Render(w, http.StatusOK, "register.html", web.Page{Title: "Create Account"})
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if name == "" || email == "" || password == "" {
		h.Views.Render(w, http.StatusBadRequest, "register.html", web.Page{
			Title: "Create Account",
			Error: "All fields are required",
		})
		return
	}

	if err := h.Backend.Register(r.Context(), name, email, password); err != nil {
		msg := "Registration failed"
		if apiErr, ok := err.(*backend.APIError); ok {
			msg = apiErr.Message
		}
		h.Views.Render(w, http.StatusBadRequest, "register.html", web.Page{
			Title: "Create Account",
			Error: msg,
		})
		return
	}

	http.Redirect(w, r, "/login?message=Registered successfully! Please login.", http.StatusSeeOther)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.Sessions.Destroy(r.Context(), w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ChangeRole flips the account between CUSTOMER and DESIGNER. The backend
// is told first; only then is the stored session rewritten, so a backend
// refusal leaves the session untouched.
func (h *Handlers) ChangeRole(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sess := middleware.FromRequest(r)
	role := r.FormValue("role")
	if role != "CUSTOMER" && role != "DESIGNER" {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}

	if err := h.Backend.ChangeRole(r.Context(), sess.Token, role); err != nil {
		log.Println("change role:", err)
		http.Error(w, "Role switch failed", http.StatusBadGateway)
		return
	}
	if err := h.Sessions.UpdateRole(r.Context(), sess, role); err != nil {
		log.Println("session role update:", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}

	if role == "DESIGNER" {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
