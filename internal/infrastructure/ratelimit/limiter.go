package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Upstream names used as limiter keys
const (
	UpstreamSheets = "sheets"
	UpstreamSubmit = "submit"
)

// Limiter throttles calls per upstream service
type Limiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 5,
		BurstSize:         10,
	}
}

func NewLimiter(config Config) *Limiter {
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewLimiterWithDefaults() *Limiter {
	return NewLimiter(DefaultConfig())
}

// GetLimiter returns the limiter for upstream, creating one with the
// defaults on first use
func (l *Limiter) GetLimiter(upstream string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[upstream]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists = l.limiters[upstream]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(l.defaults.RequestsPerSecond), l.defaults.BurstSize)
	l.limiters[upstream] = limiter
	return limiter
}

func (l *Limiter) SetLimit(upstream string, rps float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.limiters[upstream] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until upstream may be called or ctx is done. A nil Limiter
// never blocks.
func (l *Limiter) Wait(ctx context.Context, upstream string) error {
	if l == nil {
		return nil
	}
	return l.GetLimiter(upstream).Wait(ctx)
}
