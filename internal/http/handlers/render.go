package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/chinda/studio-bookings/pkg/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		logger.ErrorContext(r.Context(), "Failed to render template", "template", name, "error", err)
	}
}

type errorPage struct {
	Status  int
	Message string
}

func (h *Handlers) renderError(w http.ResponseWriter, r *http.Request, status int) {
	message := "Something went wrong"
	if status == http.StatusNotFound {
		message = "Page not found"
	}
	h.render(w, r, status, "error.html", errorPage{Status: status, Message: message})
}
