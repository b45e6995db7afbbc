package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"risk-demo/internal/session"
)

// SessionCookieName is the cookie carrying the caller's session ID.
const SessionCookieName = "risk_session"

// Session returns an HTTP middleware that binds each request to a session in
// store. A cookie naming an unknown or expired session is replaced with a fresh
// one, so every request downstream sees a session in its context.
func Session(store *session.Store, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session
			if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
				sess, _ = store.Get(c.Value)
			}
			if sess == nil {
				sess = store.GetOrCreate(uuid.NewString())
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
		})
	}
}
