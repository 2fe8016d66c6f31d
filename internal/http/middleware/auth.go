package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Key for storing the org ID in context
type contextKey string

const OrgIDKey contextKey = "org_id"

// AuthConfig holds the configuration for the auth middleware
type AuthConfig struct {
	secretKey []byte
}

// NewAuthMiddleware creates a new auth middleware with the given secret key
func NewAuthMiddleware(secretKey string) *AuthConfig {
	return &AuthConfig{secretKey: []byte(secretKey)}
}

// RequireAuth creates a middleware that verifies the bearer JWT and
// injects the org ID from its claims into the request context. Token
// issuance lives outside this service; any HS256 token signed with the
// shared secret and carrying an org_id claim is accepted.
func (ac *AuthConfig) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return ac.secretKey, nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Invalid token claims", http.StatusUnauthorized)
				return
			}
			orgID, _ := claims["org_id"].(string)
			if orgID == "" {
				http.Error(w, "Org ID not found in token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), OrgIDKey, orgID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OrgIDFromContext returns the authenticated org ID, if any
func OrgIDFromContext(ctx context.Context) (string, bool) {
	orgID, ok := ctx.Value(OrgIDKey).(string)
	return orgID, ok
}
