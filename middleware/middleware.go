package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"stytchup/globals"
	"stytchup/session"
)

// Auth resolves the session cookie into an explicit session object on the
// request context. Handlers never look at cookies themselves.
type Auth struct {
	Sessions *session.Manager
}

func NewAuth(sessions *session.Manager) *Auth {
	return &Auth{Sessions: sessions}
}

// Require redirects browsers to /login when no session exists; API and
// websocket callers get a plain 401 instead.
func (a *Auth) Require(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		sess, err := a.Sessions.Get(r.Context(), r)
		if err != nil {
			if websocket.IsWebSocketUpgrade(r) || wantsJSON(r) {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}
		ctx := context.WithValue(r.Context(), globals.SessionKey, sess)
		next(w, r.WithContext(ctx), ps)
	}
}

// Optional attaches the session when present and proceeds regardless.
func (a *Auth) Optional(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if sess, err := a.Sessions.Get(r.Context(), r); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), globals.SessionKey, sess))
		}
		next(w, r, ps)
	}
}

// FromRequest returns the session placed by Require/Optional, or nil.
func FromRequest(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(globals.SessionKey).(*session.Session)
	return sess
}

func wantsJSON(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "fetch" ||
		r.Header.Get("Accept") == "application/json" ||
		r.Header.Get("Content-Type") == "application/json"
}
