package runtime

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates service context with default values", func(t *testing.T) {
		t.Parallel()

		serviceCtx := New()

		require.NotNil(t, serviceCtx)
		require.NotNil(t, serviceCtx.shutdownChannel)
		require.Nil(t, serviceCtx.deps)
		require.Nil(t, serviceCtx.serverReady)
		require.Empty(t, serviceCtx.dependencyOpts)
	})

	t.Run("creates service context with options", func(t *testing.T) {
		t.Parallel()

		ch := make(chan os.Signal, 1)
		serviceCtx := New(
			WithServiceTermination(ch),
			WithWaitingForServer(),
			WithDependencyOptions(func(*dependencies) error { return nil }),
		)

		require.Equal(t, ch, serviceCtx.shutdownChannel)
		require.NotNil(t, serviceCtx.serverReady)
		require.Len(t, serviceCtx.dependencyOpts, 1)
	})
}

func TestCleanup_RunsInReverseOrder(t *testing.T) {
	t.Parallel()

	var order []string

	deps := &dependencies{
		cleanupFuncs: make(map[string]func(ctx context.Context) error),
	}
	deps.infra.logger = logger.NewTestLogger()

	step := func(name string, err error) func(context.Context) error {
		return func(context.Context) error {
			order = append(order, name)

			return err
		}
	}

	deps.onCleanup("metrics", step("metrics", nil))
	deps.onCleanup("sessions", step("sessions", errors.New("ignored")))
	deps.onCleanup("public_http_server", step("public_http_server", nil))
	deps.onCleanup("metrics", step("metrics", nil))

	serviceCtx := &ServiceCtx{deps: deps}
	serviceCtx.cleanup(t.Context())

	require.Equal(t, []string{"public_http_server", "sessions", "metrics"}, order)
}
