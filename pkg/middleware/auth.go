// Package middleware provides the HTTP middleware stack for the shop:
// authentication, the admin gate, request logging, panic recovery, CORS
// and rate limiting.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/sweetshop/pkg/auth"
	"github.com/shashiranjanraj/sweetshop/pkg/response"
)

type identityKey struct{}

// Identity is the authenticated caller, stored in the request context by
// Authenticate.
type Identity struct {
	UserID uint
	Email  string
	Role   string
}

// RoleAdmin is the role required by the admin gate.
const RoleAdmin = "ADMIN"

// IdentityFromCtx returns the authenticated identity, if any.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// WithIdentity stores an identity in ctx. Exported for handler tests.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// Authenticate verifies the bearer token and stores the caller's
// identity in the request context. A missing token yields 401 with the
// fixed "no token" message; a bad or expired token yields 401 as well.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			response.Error(w, http.StatusUnauthorized, "Access denied. No token provided")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := WithIdentity(r.Context(), Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin is the admin gate: it rejects non-ADMIN callers with a
// fixed 403 message. Must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromCtx(r.Context())
		if !ok {
			response.Error(w, http.StatusUnauthorized, "Access denied. No user information")
			return
		}
		if id.Role != RoleAdmin {
			response.Error(w, http.StatusForbidden, "Access denied. Admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
