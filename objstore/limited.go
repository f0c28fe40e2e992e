package objstore

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// LimitConfig holds client-side throttling limits for a Store.
type LimitConfig struct {
	// RequestsPerSecond is the maximum sustained request rate.
	// If 0, unlimited.
	RequestsPerSecond float64

	// Burst is the maximum burst size for the rate limiter.
	// If 0, defaults to 1 when a rate limit is set.
	Burst int

	// MaxInFlight is the maximum number of concurrent requests.
	// If 0, unbounded.
	MaxInFlight int64
}

// Limited wraps a Store with a request rate limit and an in-flight cap.
// It protects a shared backend from bursty exhaustive scans.
type Limited struct {
	inner   Store
	limiter *rate.Limiter       // nil if unlimited
	sem     *semaphore.Weighted // nil if unbounded
}

// NewLimited creates a throttling decorator around inner.
func NewLimited(inner Store, cfg LimitConfig) *Limited {
	l := &Limited{inner: inner}

	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		l.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	if cfg.MaxInFlight > 0 {
		l.sem = semaphore.NewWeighted(cfg.MaxInFlight)
	}

	return l
}

// acquire blocks until a request slot and a rate token are available.
// The returned release function must be called when the request completes.
func (l *Limited) acquire(ctx context.Context) (func(), error) {
	release := func() {}

	if l.sem != nil {
		if err := l.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		release = func() { l.sem.Release(1) }
	}

	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			release()
			return nil, err
		}
	}

	return release, nil
}

// Put implements Store.
func (l *Limited) Put(ctx context.Context, key string, data []byte, contentType string) error {
	release, err := l.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return l.inner.Put(ctx, key, data, contentType)
}

// Get implements Store.
func (l *Limited) Get(ctx context.Context, key string) ([]byte, error) {
	release, err := l.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return l.inner.Get(ctx, key)
}

// List implements Store.
func (l *Limited) List(ctx context.Context, prefix string, maxKeys int) ([]string, error) {
	release, err := l.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	return l.inner.List(ctx, prefix, maxKeys)
}

// Delete implements Store.
func (l *Limited) Delete(ctx context.Context, key string) error {
	release, err := l.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	return l.inner.Delete(ctx, key)
}
