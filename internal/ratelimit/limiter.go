package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/time/rate"
)

// Config holds rate limiter settings. Submissions are the only expensive
// write path, so the limit applies per client IP per minute.
type Config struct {
	SubmissionsPerMin int
	Burst             int
}

// DefaultConfig returns the default limits.
func DefaultConfig() Config {
	return Config{
		SubmissionsPerMin: 10,
		Burst:             3,
	}
}

// Result reports the outcome of one limit check.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter limits submissions per IP, distributed through Redis when
// available with an in-memory x/time fallback otherwise.
type RateLimiter struct {
	redisLimiter *redis_rate.Limiter
	redisClient  *RedisClient
	config       Config

	fallback      map[string]*rate.Limiter
	fallbackSeen  map[string]time.Time
	fallbackMutex sync.Mutex
}

// NewRateLimiter creates a limiter over an optional Redis connection.
func NewRateLimiter(redisClient *RedisClient, config Config) *RateLimiter {
	rl := &RateLimiter{
		redisClient:  redisClient,
		config:       config,
		fallback:     make(map[string]*rate.Limiter),
		fallbackSeen: make(map[string]time.Time),
	}

	if redisClient.IsEnabled() {
		rl.redisLimiter = redis_rate.NewLimiter(redisClient.GetClient())
	}

	go rl.cleanupFallback()

	return rl
}

// AllowSubmission checks whether ip may submit another assessment now.
func (rl *RateLimiter) AllowSubmission(ctx context.Context, ip string) *Result {
	if rl.redisClient.IsEnabled() && rl.redisLimiter != nil {
		res, err := rl.redisLimiter.Allow(ctx, fmt.Sprintf("ratelimit:submit:%s", ip),
			redis_rate.PerMinute(rl.config.SubmissionsPerMin))
		if err == nil {
			return &Result{
				Allowed:    res.Allowed > 0,
				Remaining:  res.Remaining,
				RetryAfter: res.RetryAfter,
			}
		}
		slog.Warn("Redis rate limit check failed, using in-memory fallback", "ip", ip, "error", err)
	}

	return rl.allowFallback(ip)
}

func (rl *RateLimiter) allowFallback(ip string) *Result {
	rl.fallbackMutex.Lock()
	defer rl.fallbackMutex.Unlock()

	limiter, ok := rl.fallback[ip]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(float64(rl.config.SubmissionsPerMin)/60.0), rl.config.Burst)
		rl.fallback[ip] = limiter
	}
	rl.fallbackSeen[ip] = time.Now()

	if limiter.Allow() {
		return &Result{Allowed: true, Remaining: int(limiter.Tokens())}
	}
	return &Result{Allowed: false, RetryAfter: time.Minute / time.Duration(rl.config.SubmissionsPerMin)}
}

// cleanupFallback drops per-IP limiters idle for over an hour.
func (rl *RateLimiter) cleanupFallback() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-time.Hour)
		rl.fallbackMutex.Lock()
		for ip, seen := range rl.fallbackSeen {
			if seen.Before(cutoff) {
				delete(rl.fallback, ip)
				delete(rl.fallbackSeen, ip)
			}
		}
		rl.fallbackMutex.Unlock()
	}
}
