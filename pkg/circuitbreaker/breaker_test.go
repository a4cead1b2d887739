package circuitbreaker

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errNotFound = errors.New("not found")

func testConfig(name string, threshold uint) Config {
	return Config{
		Name:             name,
		Enabled:          true,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: threshold,
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		cfg      Config
		wantNil  bool
		wantName string
	}{
		{
			name:     "creates circuit breaker when enabled",
			cfg:      testConfig("rooms-api", 5),
			wantName: "rooms-api",
		},
		{
			name:    "returns nil when disabled",
			cfg:     Config{Name: "disabled", Enabled: false},
			wantNil: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cb := New[string](tc.cfg)

			if tc.wantNil {
				require.Nil(t, cb)
				require.Equal(t, StateClosed, cb.State())

				return
			}

			require.NotNil(t, cb)
			require.Equal(t, tc.wantName, cb.Name())
			require.Equal(t, StateClosed, cb.State())
		})
	}
}

func TestExecute(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		cb        *CircuitBreaker[string]
		fn        func() (string, error)
		wantVal   string
		errSubstr string
	}{
		{
			name:    "executes successfully with circuit breaker",
			cb:      New[string](testConfig("success", 5)),
			fn:      func() (string, error) { return "ok", nil },
			wantVal: "ok",
		},
		{
			name:    "passes through when circuit breaker is nil",
			fn:      func() (string, error) { return "direct", nil },
			wantVal: "direct",
		},
		{
			name:      "returns error from function",
			cb:        New[string](testConfig("failure", 5)),
			fn:        func() (string, error) { return "", errors.New("operation failed") },
			errSubstr: "operation failed",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, err := Execute(tc.cb, tc.fn)

			if tc.errSubstr != "" {
				require.ErrorContains(t, err, tc.errSubstr)
				require.False(t, IsRejection(err))
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tc.wantVal, result)
		})
	}
}

func TestCircuitBreaker_OpenState(t *testing.T) {
	t.Parallel()

	cb := New[string](testConfig("open-state", 1))
	require.NotNil(t, cb)

	_, err := Execute(cb, func() (string, error) {
		return "", errors.New("failure")
	})
	require.Error(t, err)
	require.Equal(t, StateOpen, cb.State())

	called := false
	_, err = Execute(cb, func() (string, error) {
		called = true

		return "should not execute", nil
	})

	require.ErrorIs(t, err, ErrCircuitOpen)
	require.True(t, IsRejection(err))
	require.False(t, called)
}

func TestCircuitBreaker_SuccessClassifier(t *testing.T) {
	t.Parallel()

	cb := New[string](testConfig("classified", 1), WithSuccessClassifier(func(err error) bool {
		return err == nil || errors.Is(err, errNotFound)
	}))

	for range 3 {
		_, err := Execute(cb, func() (string, error) {
			return "", errNotFound
		})
		require.ErrorIs(t, err, errNotFound)
	}

	require.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_StateChangeHook(t *testing.T) {
	t.Parallel()

	var (
		mu          sync.Mutex
		transitions []string
	)

	cb := New[string](testConfig("hooked", 1), WithStateChangeHook(func(name, from, to string) {
		mu.Lock()
		defer mu.Unlock()

		transitions = append(transitions, name+":"+from+"->"+to)
	}))

	_, _ = Execute(cb, func() (string, error) {
		return "", errors.New("boom")
	})

	mu.Lock()
	defer mu.Unlock()

	require.Equal(t, []string{"hooked:closed->open"}, transitions)
}
