package middleware

import (
	"net"
	"net/http"

	"go.uber.org/zap"
)

type RateLimiter struct {
	logs    *zap.SugaredLogger
	limiter Limiter
	scope   string
}

// NewRateLimiter limits requests per client address within scope, which keeps
// counters of different routes apart.
func NewRateLimiter(logger *zap.SugaredLogger, limiter Limiter, scope string) *RateLimiter {
	return &RateLimiter{
		logs:    logger,
		limiter: limiter,
		scope:   scope,
	}
}

// Limit answers 429 once the client exhausted its attempts. Limiter failures
// let the request through.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := RequestIDFrom(r.Context())
		key := rl.scope + ":" + clientIP(r.RemoteAddr)

		allowed, err := rl.limiter.Allow(r.Context(), key)
		if err != nil {
			rl.logs.Warnw("rate limiter unavailable",
				"error", err,
				"scope", rl.scope,
				"request_id", requestId)
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			writeError(w, http.StatusTooManyRequests, "Too many attempts", "try again later")
			rl.logs.Infow("request throttled",
				"scope", rl.scope,
				"remote_addr", r.RemoteAddr,
				"request_id", requestId)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}
