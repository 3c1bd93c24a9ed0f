package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
)

// RateLimiter enforces a sliding-window request budget per client using a
// Redis sorted set: one member per request, scored by its timestamp, pruned
// on every check.
type RateLimiter struct {
	redis             *redis.Client
	requestsPerMinute int
}

// NewRateLimiter builds a limiter against an existing redis client.
func NewRateLimiter(client *redis.Client, requestsPerMinute int) *RateLimiter {
	return &RateLimiter{redis: client, requestsPerMinute: requestsPerMinute}
}

// RateLimitResult is the outcome of one CheckRateLimit call.
type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter int
}

// CheckRateLimit records one request from identifier and reports whether it
// is within budget. On a Redis error the request is allowed through: a
// limiter outage should never take the API down with it.
func (rl *RateLimiter) CheckRateLimit(ctx context.Context, identifier string) (*RateLimitResult, error) {
	const window = 60 * time.Second
	now := time.Now()
	windowStart := now.Add(-window)
	key := fmt.Sprintf("ratelimit:%s", identifier)

	pipe := rl.redis.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, &redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return &RateLimitResult{Allowed: true, Remaining: rl.requestsPerMinute}, nil
	}

	count := int(countCmd.Val())
	remaining := rl.requestsPerMinute - count
	if remaining < 0 {
		remaining = 0
	}
	retryAfter := 0
	allowed := count < rl.requestsPerMinute
	if !allowed {
		retryAfter = int(window.Seconds())
	}

	return &RateLimitResult{Allowed: allowed, Remaining: remaining, RetryAfter: retryAfter}, nil
}

// Middleware wraps a handler, rejecting with 429 once the client IP exceeds
// budget. Health checks are exempt.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		result, err := rl.CheckRateLimit(r.Context(), clientIP(r))
		if err == nil && !result.Allowed {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", result.RetryAfter))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
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
