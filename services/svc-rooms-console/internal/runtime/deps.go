package runtime

import (
	"context"
	"fmt"
	"net/http"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/pkg/metrics"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/adapters/outbound/rooms"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/config"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/console"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/ports"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/usecases"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	infrastructureDep struct {
		publicHttpServer *http.Server
		adminHttpServer  *http.Server
		logger           logger.Logger
		metricsClient    metrics.Client
		tracerProvider   otelTrace.TracerProvider
	}

	servicesDep struct {
		roomsClient   *rooms.Client
		healthChecker ports.HealthChecker
	}

	applications struct {
		webApp   *usecases.WebApplication
		sessions *console.Sessions
	}

	dependencies struct {
		config       *config.ServiceConfig
		configLoader *config.Loader

		infra infrastructureDep

		services servicesDep

		apps applications

		cleanupOrder []string
		cleanupFuncs map[string]func(ctx context.Context) error
	}

	DependencyOption func(*dependencies) error
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*dependencies, error) {
	deps := &dependencies{
		cleanupFuncs: make(map[string]func(ctx context.Context) error),
	}

	allOpts := append(defaultOptions(ctx), opts...)

	for _, opt := range allOpts {
		if err := opt(deps); err != nil {
			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	return deps, nil
}

// onCleanup registers a shutdown step. Steps run in reverse registration
// order, so servers stop before the resources they depend on.
func (d *dependencies) onCleanup(name string, fn func(ctx context.Context) error) {
	if _, exists := d.cleanupFuncs[name]; !exists {
		d.cleanupOrder = append(d.cleanupOrder, name)
	}

	d.cleanupFuncs[name] = fn
}
