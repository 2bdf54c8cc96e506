package middleware

import (
	"context"
	"log"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/AlenaMolokova/cardvalidator/internal/utils"
	"golang.org/x/time/rate"
)

const staleLimiterAge = time.Hour

type RejectObserver interface {
	ObserveRejected(reason string)
}

type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rps      float64
	burst    int
	observer RejectObserver
	now      func() time.Time
}

func NewRateLimiter(rps float64, burst int, observer RejectObserver) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		rps:      rps,
		burst:    burst,
		observer: observer,
		now:      time.Now,
	}
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		limiter := l.getLimiter(ip)

		if !limiter.Allow() {
			retryAfter := l.retryAfter(limiter)

			log.Printf("Rate limit exceeded for %s, retry after %ds", ip, retryAfter)
			if l.observer != nil {
				l.observer.ObserveRejected("rate_limit")
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			utils.WriteJSONError(w, http.StatusTooManyRequests, "Too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// retryAfter is the number of whole seconds until the bucket holds a token.
func (l *RateLimiter) retryAfter(limiter *rate.Limiter) int {
	missing := 1 - limiter.Tokens()
	if missing <= 0 || l.rps <= 0 {
		return 1
	}
	seconds := int(math.Ceil(missing / l.rps))
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}

func (l *RateLimiter) getLimiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry, ok := l.limiters[ip]; ok {
		entry.lastAccess = l.now()
		return entry.limiter
	}

	limiter := rate.NewLimiter(rate.Limit(l.rps), l.burst)
	l.limiters[ip] = &limiterEntry{limiter: limiter, lastAccess: l.now()}
	return limiter
}

// Cleanup drops limiters unused for an hour, every interval, until ctx is done.
func (l *RateLimiter) Cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.removeStale()
		}
	}
}

func (l *RateLimiter) removeStale() {
	threshold := l.now().Add(-staleLimiterAge)

	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, entry := range l.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(l.limiters, ip)
		}
	}
}

func (l *RateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// clientIP keys on the socket address. Forwarded headers are client-controlled
// and are not trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
