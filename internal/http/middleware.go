package http

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/marketmind/marketmind/internal/auth"
	rl "github.com/marketmind/marketmind/internal/http/rate_limiter"
)

type contextKey string

const userEmailKey = contextKey("user_email")

// AuthMiddleware validates the bearer token and stores the caller's email
// in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		email, _ := claims["sub"].(string)
		ctx := context.WithValue(r.Context(), userEmailKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserEmail returns the authenticated caller's email, if any.
func GetUserEmail(r *http.Request) string {
	if val, ok := r.Context().Value(userEmailKey).(string); ok {
		return val
	}
	return ""
}

// RequestLogMiddleware logs each authenticated request with the acting
// user. It must sit behind AuthMiddleware.
func RequestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s by %s", r.Method, r.URL.Path, GetUserEmail(r))
		next.ServeHTTP(w, r)
	})
}

// RateLimitMiddleware applies the per-client limiter keyed by remote IP.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.GetClient(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
