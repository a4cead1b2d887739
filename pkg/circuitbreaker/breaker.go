package circuitbreaker

import (
	"errors"

	"github.com/sony/gobreaker/v2"
)

type (
	// CircuitBreaker wraps gobreaker to guard calls to a remote dependency.
	CircuitBreaker[T any] struct {
		cb *gobreaker.CircuitBreaker[T]
	}

	// Option customises the breaker beyond the static Config.
	Option func(*gobreaker.Settings)

	// StateChangeFunc is notified on every state transition.
	StateChangeFunc func(name, from, to string)
)

const (
	StateClosed   = "closed"
	StateHalfOpen = "half-open"
	StateOpen     = "open"
)

// WithSuccessClassifier marks errors that must not count as failures,
// for instance a 404 returned by a healthy upstream.
func WithSuccessClassifier(isSuccessful func(err error) bool) Option {
	return func(s *gobreaker.Settings) {
		s.IsSuccessful = isSuccessful
	}
}

// WithStateChangeHook registers fn to observe transitions.
func WithStateChangeHook(fn StateChangeFunc) Option {
	return func(s *gobreaker.Settings) {
		s.OnStateChange = func(name string, from, to gobreaker.State) {
			fn(name, from.String(), to.String())
		}
	}
}

// New creates a circuit breaker from cfg.
// Returns nil if the circuit breaker is disabled in the configuration.
func New[T any](cfg Config, opts ...Option) *CircuitBreaker[T] {
	if !cfg.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: uint32(cfg.MaxRequests),
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(cfg.FailureThreshold)
		},
	}

	for _, opt := range opts {
		opt(&settings)
	}

	return &CircuitBreaker[T]{cb: gobreaker.NewCircuitBreaker[T](settings)}
}

// Name returns the name of the circuit breaker.
func (c *CircuitBreaker[T]) Name() string {
	return c.cb.Name()
}

// State reports the current state; a nil breaker is always closed.
func (c *CircuitBreaker[T]) State() string {
	if c == nil {
		return StateClosed
	}

	return c.cb.State().String()
}

// Execute runs fn through the circuit breaker.
// If the circuit breaker is nil, fn is executed directly.
// Returns ErrCircuitOpen when the circuit breaker is in open state and
// ErrTooManyRequests when the half-open probe budget is exhausted.
func Execute[T any](cb *CircuitBreaker[T], fn func() (T, error)) (T, error) {
	if cb == nil {
		return fn()
	}

	result, err := cb.cb.Execute(fn)
	if err != nil {
		var zero T

		switch {
		case errors.Is(err, gobreaker.ErrOpenState):
			return zero, ErrCircuitOpen
		case errors.Is(err, gobreaker.ErrTooManyRequests):
			return zero, ErrTooManyRequests
		}

		return result, err
	}

	return result, nil
}

// IsRejection reports whether err was produced by the breaker itself
// rather than by the guarded call.
func IsRejection(err error) bool {
	return errors.Is(err, ErrCircuitOpen) || errors.Is(err, ErrTooManyRequests)
}
