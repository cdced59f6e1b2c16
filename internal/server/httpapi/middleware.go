package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/skillbridge/internal/server/auth"
)

type contextKey string

const ctxKeyPrincipal = contextKey("principal")

// bearerToken extracts the token from an "Authorization: Bearer ..." header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// requireAuth rejects requests without a valid bearer token. A missing token
// and a bad one get different statuses so clients can tell "log in" from
// "log in again".
func (s *Server) requireAuth(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			fail(w, r, http.StatusUnauthorized, "Access token required")
			return
		}

		p, err := auth.ParseToken(token, s.secretKey)
		if err != nil {
			fail(w, r, http.StatusForbidden, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), ctxKeyPrincipal, p)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(fn)
}

// optionalAuth attaches a principal when a valid token is present and passes
// the request through unchanged otherwise. It never rejects.
func (s *Server) optionalAuth(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			if p, err := auth.ParseToken(token, s.secretKey); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), ctxKeyPrincipal, p))
			}
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}

// principalFrom returns the request principal, or nil on unauthenticated
// optional-auth routes.
func principalFrom(r *http.Request) *auth.Principal {
	p, _ := r.Context().Value(ctxKeyPrincipal).(*auth.Principal)
	return p
}
