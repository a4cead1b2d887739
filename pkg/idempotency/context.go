package idempotency

import "context"

type contextKey string

const contextKeyIdempotency contextKey = "idempotencyKey"

// FromContext retrieves the idempotency key from context.
func FromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(contextKeyIdempotency).(string)

	return key, ok && key != ""
}

// WithKey returns a new context with the idempotency key.
func WithKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, contextKeyIdempotency, key)
}

// Ensure returns the key already carried by ctx, minting one when absent.
func Ensure(ctx context.Context) (context.Context, string) {
	if key, ok := FromContext(ctx); ok {
		return ctx, key
	}

	key := New()

	return WithKey(ctx, key), key
}
