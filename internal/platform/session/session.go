// Package session implements admin sessions as signed, expiring tokens
// carried in an HttpOnly cookie. Each token references a server-side
// session record so logout revokes immediately; the record lives in Redis
// or in process memory depending on deployment.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/chinda/studio-bookings/internal/domain"
)

var ErrNoSession = errors.New("no valid admin session")

type Claims struct {
	AdminID   int64  `json:"sub"`
	Username  string `json:"username"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Store keeps the revocable server-side session records.
type Store interface {
	Save(ctx context.Context, sessionID string, adminID int64, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}

type Manager struct {
	store      Store
	secret     string
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewManager(store Store, secret, cookieName string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		store:      store,
		secret:     secret,
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
	}
}

// Issue creates a session record for the admin and sets the signed cookie.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, admin *domain.Admin) error {
	sessionID := uuid.NewString()
	if err := m.store.Save(ctx, sessionID, admin.ID, m.ttl); err != nil {
		return err
	}

	now := time.Now()
	claims := Claims{
		AdminID:   admin.ID,
		Username:  admin.Username,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.secret))
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(m.ttl),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Authenticate validates the session cookie and checks that the referenced
// session record still exists. It returns ErrNoSession for anything short
// of a live, signed, unexpired session.
func (m *Manager) Authenticate(ctx context.Context, r *http.Request) (*Claims, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}

	claims, err := m.parse(cookie.Value)
	if err != nil {
		return nil, ErrNoSession
	}

	alive, err := m.store.Exists(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if !alive {
		return nil, ErrNoSession
	}
	return claims, nil
}

// Clear revokes the session record, if any, and expires the cookie. It is
// a no-op when no session existed.
func (m *Manager) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if cookie, err := r.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		if claims, err := m.parse(cookie.Value); err == nil {
			if err := m.store.Delete(ctx, claims.SessionID); err != nil {
				return err
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *Manager) parse(tokenString string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(m.secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := tok.Claims.(*Claims); ok && tok.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
