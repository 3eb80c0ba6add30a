package handlers

import (
	"net/http"

	"github.com/chinda/studio-bookings/internal/domain"
	"github.com/chinda/studio-bookings/pkg/logger"
)

type indexPage struct {
	Flash   *Flash
	Content map[string]string
}

// Index renders the public landing page from the editable content entries.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	content, err := h.content.PageContent(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to load page content", "error", err)
		h.renderError(w, r, http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "index.html", indexPage{
		Flash:   popFlash(w, r),
		Content: content,
	})
}

type bookPage struct {
	Flash    *Flash
	Form     domain.BookingRequest
	Errors   map[string]string
	Services []domain.ServiceOption
}

func (h *Handlers) BookForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "book.html", bookPage{
		Flash:    popFlash(w, r),
		Services: domain.ServiceCatalog(),
	})
}

// SubmitBooking validates the posted form. Failures re-render the form
// with the submitted values echoed and per-field messages; success stores
// exactly one booking and redirects home.
func (h *Handlers) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest)
		return
	}

	req := domain.BookingRequest{
		Name:        r.PostFormValue("name"),
		Email:       r.PostFormValue("email"),
		Phone:       r.PostFormValue("phone"),
		ServiceType: r.PostFormValue("service_type"),
		EventDate:   r.PostFormValue("event_date"),
		EventTime:   r.PostFormValue("event_time"),
		Location:    r.PostFormValue("location"),
		Message:     r.PostFormValue("message"),
	}

	booking, fieldErrs, err := h.bookings.Submit(r.Context(), &req)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to submit booking", "error", err)
		h.renderError(w, r, http.StatusInternalServerError)
		return
	}
	if len(fieldErrs) > 0 {
		h.render(w, r, http.StatusUnprocessableEntity, "book.html", bookPage{
			Form:     req,
			Errors:   fieldErrs,
			Services: domain.ServiceCatalog(),
		})
		return
	}

	logger.InfoContext(r.Context(), "Booking submitted", "booking_id", booking.ID, "service_type", booking.ServiceType)
	setFlash(w, "success", "Your booking request has been submitted successfully! We will contact you within 24 hours.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
