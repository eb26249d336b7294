// Package resilience provides fault-tolerance patterns for store calls:
// retry with exponential backoff, circuit breaker, and bulkhead.
package resilience

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/boddenberg/cards-api-go/internal/domain"
	"github.com/boddenberg/cards-api-go/internal/infra/observability"

	"github.com/sony/gobreaker"
)

// Config holds resilience parameters.
type Config struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxConcurrency int
}

type permanentError struct{ err error }

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// Permanent marks err as not worth retrying. RetryWithBackoff returns the
// wrapped error unchanged.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// RetryWithBackoff executes fn with exponential backoff + jitter.
// It respects context cancellation and stops early on Permanent errors.
// fn always runs at least once; a negative MaxRetries means no retries.
func RetryWithBackoff(ctx context.Context, cfg Config, fn func() error) error {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		var perm *permanentError
		if errors.As(lastErr, &perm) {
			return perm.err
		}

		if attempt < cfg.MaxRetries {
			backoff := time.Duration(math.Pow(2, float64(attempt))) * cfg.InitialBackoff
			wait := backoff
			if half := int64(backoff / 2); half > 0 {
				wait += time.Duration(rand.Int63n(half))
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
	}
	return lastErr
}

// NewCircuitBreaker creates a circuit breaker with sensible defaults.
// Cancelled requests, missing rows and Permanent errors do not count as
// failures.
func NewCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,                // half-open: allow 3 requests
		Interval:    30 * time.Second, // closed: reset counters every 30s
		Timeout:     10 * time.Second, // open -> half-open after 10s
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		IsSuccessful: func(err error) bool {
			var perm *permanentError
			return err == nil || benign(err) || errors.As(err, &perm)
		},
	})
}

// Bulkhead limits concurrent access to a resource.
type Bulkhead struct {
	sem chan struct{}
}

// NewBulkhead creates a bulkhead with the given max concurrency.
func NewBulkhead(maxConcurrency int) *Bulkhead {
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	return &Bulkhead{sem: make(chan struct{}, maxConcurrency)}
}

// Acquire blocks until a slot is available or context is cancelled.
func (b *Bulkhead) Acquire(ctx context.Context) error {
	select {
	case b.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees a slot.
func (b *Bulkhead) Release() {
	<-b.sem
}

// Executor runs calls against one backend through a shared circuit breaker.
// Reads are retried with backoff; writes run once.
type Executor struct {
	name     string
	cfg      Config
	cb       *gobreaker.CircuitBreaker
	bulkhead *Bulkhead
	metrics  *observability.Metrics
}

// NewExecutor creates an executor for the named backend.
func NewExecutor(name string, cfg Config, metrics *observability.Metrics) *Executor {
	return &Executor{
		name:    name,
		cfg:     cfg,
		cb:      NewCircuitBreaker(name),
		metrics: metrics,
	}
}

// WithBulkhead bounds the number of in-flight calls.
func (e *Executor) WithBulkhead(b *Bulkhead) *Executor {
	e.bulkhead = b
	return e
}

// Name returns the backend name.
func (e *Executor) Name() string { return e.name }

// Read runs an idempotent call, retrying failures while the circuit is closed.
func (e *Executor) Read(ctx context.Context, fn func(ctx context.Context) error) error {
	err := RetryWithBackoff(ctx, e.cfg, func() error {
		err := e.once(ctx, fn)
		var open *domain.ErrCircuitOpen
		if errors.As(err, &open) {
			return Permanent(err)
		}
		return err
	})
	return e.record(err)
}

// Write runs a non-idempotent call exactly once.
func (e *Executor) Write(ctx context.Context, fn func(ctx context.Context) error) error {
	err := e.once(ctx, fn)
	var perm *permanentError
	if errors.As(err, &perm) {
		err = perm.err
	}
	return e.record(err)
}

func (e *Executor) once(ctx context.Context, fn func(ctx context.Context) error) error {
	if e.bulkhead != nil {
		if err := e.bulkhead.Acquire(ctx); err != nil {
			return err
		}
		defer e.bulkhead.Release()
	}

	_, err := e.cb.Execute(func() (interface{}, error) {
		return nil, fn(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return &domain.ErrCircuitOpen{Service: e.name}
	}
	return err
}

func (e *Executor) record(err error) error {
	if err != nil && e.metrics != nil && !benign(err) {
		e.metrics.IncrStoreError(e.name)
	}
	return err
}

func benign(err error) bool {
	var nf *domain.ErrNotFound
	return errors.Is(err, context.Canceled) || errors.As(err, &nf)
}
