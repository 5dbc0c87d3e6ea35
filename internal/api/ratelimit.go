package api

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/listenupapp/programguide/internal/http/response"
	"github.com/listenupapp/programguide/internal/ratelimit"
)

// RateLimitMiddleware limits requests per client IP and answers 429 when
// a client exceeds its budget. Run it after middleware.RealIP.
func RateLimitMiddleware(limiter *ratelimit.Limiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)

			if !limiter.Allow(key) {
				logger.Warn("rate limit exceeded", "ip", key, "path", r.URL.Path)
				response.TooManyRequests(w, "too many requests, try again later", logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
