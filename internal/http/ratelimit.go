package http

import (
	"sync"
	"sync/atomic"
	"time"
)

// mutationLimiter caps how many mutating requests one client IP may issue
// per window. Reads never pass through it; the method filter lives in the
// middleware.
type mutationLimiter struct {
	mu        sync.Mutex
	limit     int
	window    time.Duration
	buckets   map[string]*bucket
	lastSweep time.Time
}

type bucket struct {
	windowStart time.Time
	count       int
}

func newMutationLimiter(limit int, window time.Duration) *mutationLimiter {
	return &mutationLimiter{
		limit:     limit,
		window:    window,
		buckets:   make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

// allow records one mutation attempt for the IP and reports whether it still
// fits the current window. A fresh window starts on the first attempt after
// the previous one expired.
func (l *mutationLimiter) allow(clientIP string, metrics *securityMetrics) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.sweepLocked(now)

	b, ok := l.buckets[clientIP]
	if !ok || now.Sub(b.windowStart) >= l.window {
		l.buckets[clientIP] = &bucket{windowStart: now, count: 1}
		return true
	}

	b.count++
	if b.count > l.limit {
		if metrics != nil {
			atomic.AddInt64(&metrics.rateLimitHits, 1)
		}
		return false
	}

	return true
}

// sweepLocked drops buckets whose window expired long ago. Piggybacking on
// allow keeps the map bounded without a cleanup goroutine.
func (l *mutationLimiter) sweepLocked(now time.Time) {
	if now.Sub(l.lastSweep) < 5*l.window {
		return
	}
	l.lastSweep = now

	cutoff := now.Add(-2 * l.window)
	for ip, b := range l.buckets {
		if b.windowStart.Before(cutoff) {
			delete(l.buckets, ip)
		}
	}
}
