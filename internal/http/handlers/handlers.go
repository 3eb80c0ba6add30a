package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chinda/studio-bookings/internal/platform/session"
	"github.com/chinda/studio-bookings/internal/service"
	"github.com/chinda/studio-bookings/pkg/logger"
)

type contextKey string

const claimsKey contextKey = "admin_claims"

type Handlers struct {
	bookings service.BookingService
	content  service.ContentService
	auth     service.AuthService
	sessions *session.Manager
}

func New(bookings service.BookingService, content service.ContentService, auth service.AuthService, sessions *session.Manager) *Handlers {
	return &Handlers{
		bookings: bookings,
		content:  content,
		auth:     auth,
		sessions: sessions,
	}
}

func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Index)
	r.Get("/book", h.BookForm)
	r.Post("/book", h.SubmitBooking)
	r.Get("/admin/login", h.LoginForm)
	r.Post("/admin/login", h.Login)
	r.Get("/admin/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(h.RequireAdmin)
		r.Get("/admin", h.Dashboard)
		r.Get("/admin/bookings", h.Bookings)
		r.Post("/admin/booking/{id}/update_status", h.UpdateBookingStatus)
		r.Get("/admin/content", h.Content)
		r.Post("/admin/content/update", h.UpdateContent)
	})

	return r
}

// RequireAdmin gates administrative routes. The session is revalidated on
// every call; anything short of a live session redirects to the login page
// with no error shown.
func (h *Handlers) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := h.sessions.Authenticate(r.Context(), r)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				logger.ErrorContext(r.Context(), "Session check failed", "error", err)
				h.renderError(w, r, http.StatusInternalServerError)
				return
			}
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		ctx = context.WithValue(ctx, logger.AdminIDKey, claims.AdminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getClaims(r *http.Request) *session.Claims {
	if claims, ok := r.Context().Value(claimsKey).(*session.Claims); ok {
		return claims
	}
	return nil
}
