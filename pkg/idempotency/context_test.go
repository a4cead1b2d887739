package idempotency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		setupContext  func(t *testing.T) context.Context
		expectedKey   string
		expectedFound bool
	}{
		{
			name: "key present",
			setupContext: func(t *testing.T) context.Context {
				return WithKey(t.Context(), "550e8400-e29b-41d4-a716-446655440000")
			},
			expectedKey:   "550e8400-e29b-41d4-a716-446655440000",
			expectedFound: true,
		},
		{
			name: "key absent",
			setupContext: func(t *testing.T) context.Context {
				return t.Context()
			},
		},
		{
			name: "empty key",
			setupContext: func(t *testing.T) context.Context {
				return WithKey(t.Context(), "")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			key, found := FromContext(tc.setupContext(t))

			require.Equal(t, tc.expectedFound, found)
			require.Equal(t, tc.expectedKey, key)
		})
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	t.Run("keeps existing key", func(t *testing.T) {
		t.Parallel()

		ctx := WithKey(t.Context(), "existing-key-0000001")

		ctx, key := Ensure(ctx)
		require.Equal(t, "existing-key-0000001", key)

		carried, found := FromContext(ctx)
		require.True(t, found)
		require.Equal(t, key, carried)
	})

	t.Run("mints when absent", func(t *testing.T) {
		t.Parallel()

		ctx, key := Ensure(t.Context())
		require.NoError(t, Validate(key))

		carried, found := FromContext(ctx)
		require.True(t, found)
		require.Equal(t, key, carried)
	})
}
