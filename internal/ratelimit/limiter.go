package ratelimit

import (
	"context"
	"os"
	"sync"

	"golang.org/x/time/rate"
)

// API represents the external fund-data providers we fetch from
type API string

const (
	// APIAnbima represents the Anbima data portal
	APIAnbima API = "anbima"
	// APIVortx represents the Vórtx investor portal
	APIVortx API = "vortx"
	// APICVM represents the CVM legacy fundosreg system
	APICVM API = "cvm"
)

// Limiter manages rate limits for different providers
type Limiter struct {
	limiters map[API]*rate.Limiter
	mu       sync.RWMutex
}

var (
	instance *Limiter
	once     sync.Once
)

// GetLimiter returns the singleton rate limiter instance
func GetLimiter() *Limiter {
	once.Do(func() {
		instance = &Limiter{
			limiters: make(map[API]*rate.Limiter),
		}
		instance.initLimiters()
	})
	return instance
}

// initLimiters initializes rate limiters for each provider with polite defaults.
// None of the portals publish limits; these keep repeated searches from
// hammering public infrastructure.
func (l *Limiter) initLimiters() {
	// In test mode, use unlimited rate limits to avoid slowing down tests
	if os.Getenv("GO_TESTING") == "1" || isTestMode() {
		l.limiters[APIAnbima] = rate.NewLimiter(rate.Inf, 1)
		l.limiters[APIVortx] = rate.NewLimiter(rate.Inf, 1)
		l.limiters[APICVM] = rate.NewLimiter(rate.Inf, 1)
		return
	}

	// Anbima: framework-rendered pages behind a CDN, 2 requests per second
	l.limiters[APIAnbima] = rate.NewLimiter(rate.Limit(2), 1)

	// Vórtx: static portal page, 2 requests per second
	l.limiters[APIVortx] = rate.NewLimiter(rate.Limit(2), 1)

	// CVM: legacy ASP system, keep it to 1 request per second
	l.limiters[APICVM] = rate.NewLimiter(rate.Limit(1), 1)
}

// isTestMode checks if we're running in test mode
func isTestMode() bool {
	for _, arg := range os.Args {
		if len(arg) > 6 && arg[:6] == "-test." {
			return true
		}
	}
	return false
}

// Wait blocks until the rate limiter permits an event for the given provider.
// It returns an error if the context is canceled before the event can proceed
func (l *Limiter) Wait(ctx context.Context, api API) error {
	l.mu.RLock()
	limiter, exists := l.limiters[api]
	l.mu.RUnlock()

	if !exists {
		// If no limiter exists for this provider, allow the request without limiting
		return nil
	}

	return limiter.Wait(ctx)
}

// Allow reports whether an event for the given provider may happen now
func (l *Limiter) Allow(api API) bool {
	l.mu.RLock()
	limiter, exists := l.limiters[api]
	l.mu.RUnlock()

	if !exists {
		return true
	}

	return limiter.Allow()
}
