// Package ratelimit damps bursts of file-change events so editors that
// write in several syscalls trigger a single reload.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

type Limiter struct {
	limiter *rate.Limiter
}

// New uses 0 or negative limit for no rate limiting.
func New(eventsPerSecond float64) *Limiter {
	if eventsPerSecond <= 0 {
		return &Limiter{
			limiter: rate.NewLimiter(rate.Inf, 1),
		}
	}

	// Burst of 1: the first event passes immediately, followers wait
	// out the configured interval.
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(eventsPerSecond), 1),
	}
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Allow is non-blocking and useful for dropping surplus events.
func (l *Limiter) Allow() bool {
	return l.limiter.Allow()
}

// SetLimit can be called at runtime.
func (l *Limiter) SetLimit(eventsPerSecond float64) {
	if eventsPerSecond <= 0 {
		l.limiter.SetLimit(rate.Inf)
	} else {
		l.limiter.SetLimit(rate.Limit(eventsPerSecond))
	}
}

func (l *Limiter) Limit() float64 {
	limit := l.limiter.Limit()
	if limit == rate.Inf {
		return 0
	}
	return float64(limit)
}
