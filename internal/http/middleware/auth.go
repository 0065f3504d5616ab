package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Key for storing the authenticated admin in the request context
type contextKey string

const (
	// AdminEmailKey holds the email of the authenticated admin.
	AdminEmailKey contextKey = "admin_email"
)

// AuthMiddleware verifies admin session tokens on protected routes.
type AuthMiddleware struct {
	getJWTSecret func() ([]byte, error)
}

// NewAuthMiddleware creates an auth middleware. The secret is resolved per
// request so configuration reloads take effect without a restart.
func NewAuthMiddleware(getJWTSecret func() ([]byte, error)) *AuthMiddleware {
	return &AuthMiddleware{getJWTSecret: getJWTSecret}
}

// RequireAuth creates a middleware that verifies the Bearer JWT and stores
// the admin identity in the request context.
func (m *AuthMiddleware) RequireAuth() func(http.Handler) http.Handler {
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

			secret, err := m.getJWTSecret()
			if err != nil {
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			email, _ := claims["sub"].(string)
			if email == "" {
				http.Error(w, "Subject not found in token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), AdminEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminEmailFromContext returns the authenticated admin email, if any.
func AdminEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(AdminEmailKey).(string)
	return email, ok
}
