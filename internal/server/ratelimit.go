package server

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	httperrors "github.com/triviaworks/trivia-api/pkg/http/errors"
)

// RateLimitConfig contains the fixed-window limiter settings.
type RateLimitConfig struct {
	// MaxRequests is the request budget per Window.
	MaxRequests int
	// Window is the counting window.
	Window time.Duration
	// KeyPrefix namespaces the counter keys in Redis.
	KeyPrefix string
}

// RateLimiter throttles requests per client IP and path using Redis
// INCR/EXPIRE counters. Redis being unreachable fails open: the request is
// allowed and the error logged.
type RateLimiter struct {
	client *redis.Client
	logger zerolog.Logger
}

// NewRateLimiter creates a Redis-backed rate limiter.
func NewRateLimiter(client *redis.Client, logger zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		client: client,
		logger: logger.With().Str("component", "rate_limiter").Logger(),
	}
}

// Limit returns a middleware enforcing cfg on the wrapped handler.
func (rl *RateLimiter) Limit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := fmt.Sprintf("%s:%s:%s", cfg.KeyPrefix, clientIP(r), r.URL.Path)
			ctx := r.Context()

			count, err := rl.client.Incr(ctx, key).Result()
			if err != nil {
				rl.logger.Warn().Err(err).Str("key", key).Msg("redis unavailable, allowing request")
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				if err := rl.client.Expire(ctx, key, cfg.Window).Err(); err != nil {
					rl.logger.Warn().Err(err).Str("key", key).Msg("failed to set window TTL")
				}
			}

			remaining := cfg.MaxRequests - int(count)
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > cfg.MaxRequests {
				ttl, err := rl.client.TTL(ctx, key).Result()
				if err != nil || ttl < 0 {
					ttl = cfg.Window
				}
				w.Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))
				httperrors.RespondTooManyRequests(w, "Too many requests, slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
