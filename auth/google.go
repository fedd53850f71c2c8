package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	stateCookie = "stytchup_oauth_state"
)

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

var oauthHTTP = &http.Client{Timeout: 10 * time.Second}

// GoogleStart sends the browser to Google's consent screen with a
// single-use state nonce pinned in a short-lived cookie.
func (h *Handlers) GoogleStart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if h.Google.ClientID == "" {
		http.Error(w, "Google sign-in is not configured", http.StatusServiceUnavailable)
		return
	}

	state := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/auth/google",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	q := url.Values{}
	q.Set("client_id", h.Google.ClientID)
	q.Set("redirect_uri", h.Google.RedirectURL)
	q.Set("response_type", "code")
	q.Set("scope", "openid email profile")
	q.Set("state", state)

	http.Redirect(w, r, googleAuthURL+"?"+q.Encode(), http.StatusSeeOther)
}

// GoogleCallback exchanges the code, reads the Google profile, syncs it
// with the backend and mints a local session.
func (h *Handlers) GoogleCallback(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	stateC, err := r.Cookie(stateCookie)
	if err != nil || stateC.Value == "" || stateC.Value != r.URL.Query().Get("state") {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Redirect(w, r, "/login?message=Google sign-in was cancelled", http.StatusSeeOther)
		return
	}

	email, name, err := h.googleIdentity(r.Context(), code)
	if err != nil {
		log.Println("google oauth:", err)
		http.Redirect(w, r, "/login?message=Google sign-in failed", http.StatusSeeOther)
		return
	}

	res, err := h.Backend.GoogleSync(r.Context(), email, name)
	if err != nil {
		log.Println("google sync:", err)
		http.Redirect(w, r, "/login?message=Google sign-in failed", http.StatusSeeOther)
		return
	}

	if _, err := h.Sessions.Create(r.Context(), w, res.User, res.Token); err != nil {
		log.Println("session create:", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handlers) googleIdentity(ctx context.Context, code string) (email, name string, err error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", h.Google.ClientID)
	form.Set("client_secret", h.Google.ClientSecret)
	form.Set("redirect_uri", h.Google.RedirectURL)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := oauthHTTP.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("token exchange: %w", err)
	}
	defer res.Body.Close()

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&tok); err != nil || tok.AccessToken == "" {
		return "", "", fmt.Errorf("token exchange: bad response (status %d)", res.StatusCode)
	}

	infoReq, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserinfoURL, nil)
	if err != nil {
		return "", "", err
	}
	infoReq.Header.Set("Authorization", "Bearer "+tok.AccessToken)

	infoRes, err := oauthHTTP.Do(infoReq)
	if err != nil {
		return "", "", fmt.Errorf("userinfo: %w", err)
	}
	defer infoRes.Body.Close()

	var info struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(infoRes.Body).Decode(&info); err != nil || info.Email == "" {
		return "", "", fmt.Errorf("userinfo: bad response (status %d)", infoRes.StatusCode)
	}
	return info.Email, info.Name, nil
}
