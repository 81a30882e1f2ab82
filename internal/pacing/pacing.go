// Package pacing provides the policies that throttle dispatch between
// consecutive items of a batch run.
package pacing

import (
	"context"
	"fmt"
	"time"

	"station-reassignment-service/internal/my_errors"

	"golang.org/x/time/rate"
)

const (
	ModeFixed       = "fixed"
	ModeTokenBucket = "token-bucket"
	ModeNone        = "none"
)

// Fixed waits a constant interval.
type Fixed struct {
	Interval time.Duration
}

func NewFixed(interval time.Duration) *Fixed {
	return &Fixed{Interval: interval}
}

func (f *Fixed) Wait(ctx context.Context) error {
	if f.Interval <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(f.Interval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// TokenBucket allows bursts up to burst requests and refills at one token per interval.
type TokenBucket struct {
	limiter *rate.Limiter
}

func NewTokenBucket(interval time.Duration, burst int) *TokenBucket {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &TokenBucket{limiter: rate.NewLimiter(limit, burst)}
}

// Start charges the first dispatch of a run, which is not preceded by Wait.
// The reservation may put the bucket in debt; the next Wait pays it off.
func (t *TokenBucket) Start() {
	t.limiter.Reserve()
}

func (t *TokenBucket) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

// None never waits.
type None struct{}

func (None) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Pacer is the common behaviour of all policies.
type Pacer interface {
	Wait(ctx context.Context) error
}

// New builds a pacer by mode name. The fixed mode needs a positive interval;
// use ModeNone to disable pacing.
func New(mode string, interval time.Duration, burst int) (Pacer, error) {
	switch mode {
	case ModeFixed, "":
		if interval <= 0 {
			return nil, fmt.Errorf("%w: %s", my_errors.ErrInvalidPacingInterval, interval)
		}
		return NewFixed(interval), nil
	case ModeTokenBucket:
		return NewTokenBucket(interval, burst), nil
	case ModeNone:
		return None{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", my_errors.ErrUnknownPacing, mode)
	}
}
