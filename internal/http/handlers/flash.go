package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// Flash is a one-shot message: set on one request, shown and cleared on
// the next rendered page.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

const flashCookie = "flash"

func setFlash(w http.ResponseWriter, kind, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(kind + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	kind, message, found := strings.Cut(string(decoded), "|")
	if !found {
		return nil
	}
	return &Flash{Kind: kind, Message: message}
}
