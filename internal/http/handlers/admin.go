package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chinda/studio-bookings/internal/domain"
	"github.com/chinda/studio-bookings/internal/service"
	"github.com/chinda/studio-bookings/pkg/logger"
)

type loginPage struct {
	Flash    *Flash
	Username string
}

func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login.html", loginPage{Flash: popFlash(w, r)})
}

// Login establishes an admin session on exact credential match. A failed
// attempt leaves any existing session untouched.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest)
		return
	}

	req := domain.LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	admin, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.render(w, r, http.StatusOK, "login.html", loginPage{
				Flash:    &Flash{Kind: "error", Message: "Invalid username or password"},
				Username: req.Username,
			})
			return
		}
		logger.ErrorContext(r.Context(), "Login failed", "error", err)
		h.renderError(w, r, http.StatusInternalServerError)
		return
	}

	if err := h.sessions.Issue(r.Context(), w, admin); err != nil {
		logger.ErrorContext(r.Context(), "Failed to issue admin session", "error", err)
		h.renderError(w, r, http.StatusInternalServerError)
		return
	}

	logger.InfoContext(r.Context(), "Admin logged in", "admin_id", admin.ID)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout revokes the session unconditionally; without one it is a no-op.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Clear(r.Context(), w, r); err != nil {
		logger.ErrorContext(r.Context(), "Failed to clear admin session", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type dashboardPage struct {
	Flash          *Flash
	Username       string
	Bookings       []domain.Booking
	PendingCount   int
	ConfirmedCount int
}

// Dashboard lists all bookings, most recent first, with the pending and
// confirmed counts recomputed on every call.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list bookings", "error", err)
		h.renderError(w, r, http.StatusInternalServerError)
		return
	}

	pending, confirmed, err := h.bookings.StatusCounts(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to count bookings", "error", err)
		h.renderError(w, r, http.StatusInternalServerError)
		return
	}

	var username string
	if claims := getClaims(r); claims != nil {
		username = claims.Username
	}

	h.render(w, r, http.StatusOK, "dashboard.html", dashboardPage{
		Flash:          popFlash(w, r),
		Username:       username,
		Bookings:       bookings,
		PendingCount:   pending,
		ConfirmedCount: confirmed,
	})
}

type bookingsPage struct {
	Flash    *Flash
	Bookings []domain.Booking
	Statuses []domain.BookingStatus
}

func (h *Handlers) Bookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.List(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list bookings", "error", err)
		h.renderError(w, r, http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "bookings.html", bookingsPage{
		Flash:    popFlash(w, r),
		Bookings: bookings,
		Statuses: domain.BookingStatuses(),
	})
}

// UpdateBookingStatus overwrites one booking's status. Unknown ids are a
// hard not-found failure in both storage variants.
func (h *Handlers) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.renderError(w, r, http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest)
		return
	}

	status, ok := domain.ParseBookingStatus(r.PostFormValue("status"))
	if !ok {
		setFlash(w, "error", "Invalid status value")
		http.Redirect(w, r, "/admin/bookings", http.StatusSeeOther)
		return
	}

	updated, err := h.bookings.UpdateStatus(r.Context(), id, status)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to update booking status", "error", err, "booking_id", id)
		h.renderError(w, r, http.StatusInternalServerError)
		return
	}
	if updated == nil {
		h.renderError(w, r, http.StatusNotFound)
		return
	}

	setFlash(w, "success", fmt.Sprintf("Booking status updated to %s", updated.Status))
	http.Redirect(w, r, "/admin/bookings", http.StatusSeeOther)
}
