package http

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mparraf99/inventory-api/internal/auth"
	"github.com/mparraf99/inventory-api/internal/http/ratelimit"
)

type contextKey string

const usernameKey = contextKey("username")

// AuthMiddleware rejects requests without a valid, unrevoked bearer token
// before any handler runs, and stores the caller's username in the context.
func AuthMiddleware(tokens *auth.TokenService, revoked *auth.RevocationList) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")
			token, err := tokens.Parse(tokenStr)
			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if isRevoked, err := revoked.IsRevoked(r.Context(), tokenStr); err != nil {
				http.Error(w, "could not verify token", http.StatusInternalServerError)
				return
			} else if isRevoked {
				http.Error(w, "token revoked", http.StatusUnauthorized)
				return
			}

			username := ""
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				username, _ = claims["username"].(string)
			}
			ctx := context.WithValue(r.Context(), usernameKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUsername returns the authenticated caller's username, or "" when the
// request did not pass through AuthMiddleware.
func GetUsername(r *http.Request) string {
	if val, ok := r.Context().Value(usernameKey).(string); ok {
		return val
	}
	return ""
}

// RateLimitMiddleware applies a per-IP token bucket to the wrapped routes.
func RateLimitMiddleware(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !limiter.Allow(ip) {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
