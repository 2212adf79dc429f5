package middleware

import (
	"net/http"
	"strings"

	"github.com/mrops-br/inventory-dashboard-api/internal/domain"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/http/response"
)

// SessionAuthorizer is the contract the session gate fulfills for the
// HTTP edge.
type SessionAuthorizer interface {
	Authorize(token string) bool
}

// RequireSession gates catalog routes on an authenticated session.
// Requests without a matching bearer token get 401 and never reach the
// catalog. This mirrors client-side route protection; it is advisory,
// not a security boundary.
func RequireSession(gate SessionAuthorizer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gate.Authorize(bearerToken(r)) {
				response.Error(w, http.StatusUnauthorized, domain.ErrNotAuthenticated)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimPrefix(auth, prefix)
}
