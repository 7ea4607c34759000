package httpapi

import (
	"net/http"

	"github.com/google/uuid"
)

const sessionCookie = "bp_session"

// sessionID returns the visitor's session id, issuing a new cookie on first
// touch. One cart exists per (merchant, session).
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
