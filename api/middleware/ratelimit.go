package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/seoscan/config"
	"github.com/use-agent/seoscan/models"
	"golang.org/x/time/rate"
)

// ScanLimiter meters scans per caller identity (see Identity). Every route
// that starts a scan shares one ScanLimiter, so the JSON API and the browser
// form draw from the same bucket.
type ScanLimiter struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewScanLimiter builds an empty limiter from cfg.
func NewScanLimiter(cfg config.RateLimitConfig) *ScanLimiter {
	return &ScanLimiter{
		limit:   rate.Limit(cfg.RequestsPerSecond),
		burst:   cfg.Burst,
		buckets: make(map[string]*bucket),
	}
}

// Allow takes one token from identity's bucket at time now.
func (l *ScanLimiter) Allow(identity string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[identity]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[identity] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// Len reports the number of tracked identities.
func (l *ScanLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Run evicts buckets idle for longer than idle, checking every interval,
// until ctx is done.
func (l *ScanLimiter) Run(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.evictBefore(now.Add(-idle))
		}
	}
}

func (l *ScanLimiter) evictBefore(cutoff time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, id)
		}
	}
}

// Middleware rejects a request with 429 once its caller's bucket is empty.
// It must run after Auth so authenticated callers are metered by key.
func (l *ScanLimiter) Middleware(deny Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(Identity(c), time.Now()) {
			reject(c, deny, http.StatusTooManyRequests, models.ErrorResponse{
				Error: "Too many scans. Please wait a moment and retry.",
				Code:  models.ErrCodeRateLimited,
			})
			return
		}
		c.Next()
	}
}
