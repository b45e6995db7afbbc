package ui

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookieName = "ui_flash"

const (
	toastSuccess = "success"
	toastError   = "error"
)

// toast is a one-shot notification carried across a redirect.
type toast struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (h *Handler) setFlash(w http.ResponseWriter, t toast) {
	raw, err := json.Marshal(t)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/ui",
		HttpOnly: true,
		Secure:   h.Production,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending toast, if any, and expires its cookie.
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request) *toast {
	c, err := r.Cookie(flashCookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/ui",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Production,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var t toast
	if err := json.Unmarshal(raw, &t); err != nil || t.Message == "" {
		return nil
	}
	if t.Kind != toastSuccess {
		t.Kind = toastError
	}
	return &t
}

func (h *Handler) redirectWithToast(w http.ResponseWriter, r *http.Request, kind, message string) {
	h.setFlash(w, toast{Kind: kind, Message: message})
	http.Redirect(w, r, "/ui", http.StatusSeeOther)
}
