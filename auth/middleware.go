package auth

import (
	"context"
	"net/http"
	"strings"

	"adminpanel/models"
	"adminpanel/utils/response"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// Middleware gates handlers on a valid bearer token and, for mutations, the
// admin role. Decoded claims are attached to the request context.
type Middleware struct {
	Secret string
}

func NewMiddleware(secret string) *Middleware {
	return &Middleware{Secret: secret}
}

// RequireAuth rejects requests without a valid bearer token and runs next
// with the claims in context.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			response.Error(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		claims, err := ParseToken(m.Secret, token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid or expired token.")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// RequireAdmin is RequireAuth plus an admin role check.
func (m *Middleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims := FromContext(r.Context())
		if claims == nil || claims.Role != models.RoleAdmin {
			response.Error(w, http.StatusForbidden, "Access denied. Admin only.")
			return
		}
		next(w, r)
	})
}

// FromContext returns the claims attached by RequireAuth, or nil.
func FromContext(ctx context.Context) *Claims {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	if !ok {
		return nil
	}
	return claims
}
