package middleware

import "net/http"

// Allower is satisfied by ratelimiter.Limiter.
type Allower interface {
	Allow() bool
}

// RateLimit rejects requests with 429 once the limiter runs out of tokens.
func RateLimit(l Allower) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
