package handlers

import (
	"net/http"

	"github.com/chinda/studio-bookings/internal/domain"
	"github.com/chinda/studio-bookings/pkg/logger"
)

type contentPage struct {
	Flash   *Flash
	Entries []domain.ContentEntry
	Form    domain.ContentUpdate
	Errors  map[string]string
}

func (h *Handlers) Content(w http.ResponseWriter, r *http.Request) {
	entries, err := h.content.List(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to list content", "error", err)
		h.renderError(w, r, http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "content.html", contentPage{
		Flash:   popFlash(w, r),
		Entries: entries,
	})
}

// UpdateContent upserts one (section, key) entry; the value is stored
// without validation.
func (h *Handlers) UpdateContent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest)
		return
	}

	upd := domain.ContentUpdate{
		Section: r.PostFormValue("section"),
		Key:     r.PostFormValue("key"),
		Value:   r.PostFormValue("value"),
	}

	entry, fieldErrs, err := h.content.Update(r.Context(), &upd)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to update content", "error", err)
		h.renderError(w, r, http.StatusInternalServerError)
		return
	}
	if len(fieldErrs) > 0 {
		entries, err := h.content.List(r.Context())
		if err != nil {
			logger.ErrorContext(r.Context(), "Failed to list content", "error", err)
			h.renderError(w, r, http.StatusInternalServerError)
			return
		}
		h.render(w, r, http.StatusUnprocessableEntity, "content.html", contentPage{
			Entries: entries,
			Form:    upd,
			Errors:  fieldErrs,
		})
		return
	}

	logger.InfoContext(r.Context(), "Content updated", "section", entry.Section, "key", entry.Key)
	setFlash(w, "success", "Content updated successfully")
	http.Redirect(w, r, "/admin/content", http.StatusSeeOther)
}
