// Package ratelimit provides per-client rate limiting for the parse API
// using a token bucket per client.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows a burst of capacity tokens, refilling at a steady rate.
type tokenBucket struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	now := time.Now()
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastSeen:   now,
	}
}

// allow consumes a token if one is available.
func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now
	tb.lastSeen = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Limiter manages one token bucket per client identifier.
type Limiter struct {
	mu      sync.RWMutex
	buckets map[string]*tokenBucket
	config  *Config

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
	stopOnce      sync.Once
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup goroutine.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}
	l := &Limiter{
		buckets:     make(map[string]*tokenBucket),
		config:      config,
		cleanupStop: make(chan struct{}),
	}
	if config.Enabled {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether the client may make another request now.
func (l *Limiter) Allow(clientID string) bool {
	if !l.config.Enabled {
		return true
	}

	l.mu.RLock()
	bucket, ok := l.buckets[clientID]
	l.mu.RUnlock()

	if !ok {
		l.mu.Lock()
		// Re-check under the write lock; another request may have raced us.
		bucket, ok = l.buckets[clientID]
		if !ok {
			refillRate := float64(l.config.Limit) / l.config.Window.Seconds()
			bucket = newTokenBucket(l.config.Burst, refillRate)
			l.buckets[clientID] = bucket
		}
		l.mu.Unlock()
	}

	return bucket.allow()
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() {
		if l.cleanupTicker != nil {
			l.cleanupTicker.Stop()
		}
		close(l.cleanupStop)
	})
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.cleanup()
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanup drops buckets idle for longer than the cleanup interval so the map
// does not grow with every client ever seen.
func (l *Limiter) cleanup() {
	cutoff := time.Now().Add(-l.config.CleanupInterval)

	l.mu.Lock()
	defer l.mu.Unlock()
	for id, bucket := range l.buckets {
		bucket.mu.Lock()
		idle := bucket.lastSeen.Before(cutoff)
		bucket.mu.Unlock()
		if idle {
			delete(l.buckets, id)
		}
	}
}
