package middleware

import (
	"net/http"

	"github.com/gourav02/acda-org/internal/core/ports"
)

// RequireSession rejects requests that carry no valid admin session. Every
// mutating endpoint sits behind this gate; listings do not.
func RequireSession(sessions ports.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sessions.Principal(r.Context()); !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"success":false,"error":"Unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
