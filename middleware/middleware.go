// Package middleware guards protected routes: token extraction and
// verification first, then role checks against a per-route allow-list.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"sports-school/auth"
	"sports-school/models"
	"sports-school/utils"
)

type contextKey struct{}

var principalKey contextKey

// Principal returns the authenticated identity stored by Authenticate.
func Principal(r *http.Request) (models.Principal, bool) {
	p, ok := r.Context().Value(principalKey).(models.Principal)
	return p, ok
}

// Authenticate verifies the bearer token and stores the principal in the
// request context. Missing, malformed or invalid tokens all end in 401.
func Authenticate(mgr *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Token is missing"})
				return
			}

			// A bare "Bearer" with no second segment is invalid, not a crash.
			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Invalid Authorization header format"})
				return
			}

			principal, err := mgr.ParseToken(parts[1])
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Token is invalid"})
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated principals whose role is not in the
// allow-list. 403 here is distinct from the 401 of a failed Authenticate.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := Principal(r)
			if !ok {
				utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Token is missing"})
				return
			}
			if _, ok := allowed[principal.Role]; !ok {
				utils.RespondWithError(w, http.StatusForbidden, models.Error{Message: "Permission denied"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CORS mirrors the permissive policy of the original frontend pairing.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
