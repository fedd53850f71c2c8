// Package session is the identity adapter: it bridges the backend-issued
// bearer token into a browser session. The cookie only carries a signed
// session id; the record itself (user, role, token) lives in Redis.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"stytchup/models"
)

const (
	CookieName = "stytchup_session"
	TTL        = 7 * 24 * time.Hour
)

var ErrNoSession = errors.New("no session")

// Session is the explicit identity object threaded through handlers.
type Session struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

func (s *Session) IsDesigner() bool { return s.Role == "DESIGNER" }

type Manager struct {
	secret []byte
	rdb    *redis.Client
	secure bool
}

func NewManager(secret []byte, rdb *redis.Client, secure bool) *Manager {
	return &Manager{secret: secret, rdb: rdb, secure: secure}
}

type cookieClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

func key(sid string) string { return "session:" + sid }

// Create stores a fresh session record and sets the signed cookie.
func (m *Manager) Create(ctx context.Context, w http.ResponseWriter, user models.User, token string) (*Session, error) {
	sess := &Session{
		ID:     uuid.New().String(),
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		Token:  token,
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	if err := m.rdb.Set(ctx, key(sess.ID), raw, TTL).Err(); err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	now := time.Now()
	claims := cookieClaims{
		SID: sess.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sess, nil
}

// Get resolves the request's cookie to a live session, or ErrNoSession.
func (m *Manager) Get(ctx context.Context, r *http.Request) (*Session, error) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return nil, ErrNoSession
	}

	claims := &cookieClaims{}
	tok, err := jwt.ParseWithClaims(c.Value, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !tok.Valid || claims.SID == "" {
		return nil, ErrNoSession
	}

	raw, err := m.rdb.Get(ctx, key(claims.SID)).Bytes()
	if err == redis.Nil {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("session load: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("session decode: %w", err)
	}
	return &sess, nil
}

// UpdateRole rewrites the stored record after a role switch; the cookie is
// untouched, so the change is visible on the very next request.
func (m *Manager) UpdateRole(ctx context.Context, sess *Session, role string) error {
	sess.Role = role
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return m.rdb.Set(ctx, key(sess.ID), raw, redis.KeepTTL).Err()
}

// Destroy drops the record and expires the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if sess, err := m.Get(ctx, r); err == nil {
		m.rdb.Del(ctx, key(sess.ID))
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
