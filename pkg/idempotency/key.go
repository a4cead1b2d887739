// Package idempotency mints and carries the keys sent with destructive
// calls to the rooms backend, so a retried DELETE is recognised upstream.
package idempotency

import (
	"errors"
	"regexp"

	"github.com/google/uuid"
)

const (
	HeaderName = "Idempotency-Key"

	MinKeyLength = 16
	MaxKeyLength = 128
)

var (
	ErrKeyTooShort = errors.New("idempotency key must be at least 16 characters")
	ErrKeyTooLong  = errors.New("idempotency key must not exceed 128 characters")
	ErrKeyInvalid  = errors.New("idempotency key contains invalid characters")

	validKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)
)

// New returns a fresh random key.
func New() string {
	return uuid.NewString()
}

// Validate checks if the idempotency key is valid.
func Validate(key string) error {
	switch {
	case len(key) < MinKeyLength:
		return ErrKeyTooShort
	case len(key) > MaxKeyLength:
		return ErrKeyTooLong
	case !validKeyPattern.MatchString(key):
		return ErrKeyInvalid
	}

	return nil
}
