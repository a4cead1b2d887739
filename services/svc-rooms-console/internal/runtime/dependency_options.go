package runtime

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/pkg/metrics/meter"
	"github.com/architeacher/rooms-console/pkg/metrics/noop"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/adapters/feedback"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/adapters/health"
	inboundhttp "github.com/architeacher/rooms-console/services/svc-rooms-console/internal/adapters/inbound/http"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/adapters/outbound/rooms"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/config"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/console"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/infrastructure"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/usecases"
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithConfig(),
		WithLogger(),
		WithConfigLoader(),
		WithMetrics(),
		WithTracing(ctx),
		WithRoomsClient(),
		WithApplication(),
		WithSessions(),
		WithHTTPServer(),
		WithAdminHTTPServer(),
	}
}

func WithConfig() DependencyOption {
	return func(d *dependencies) error {
		cfg, err := config.Init()
		if err != nil {
			return fmt.Errorf("initializing configuration: %w", err)
		}

		d.config = cfg

		return nil
	}
}

func WithLogger() DependencyOption {
	return func(d *dependencies) error {
		d.infra.logger = logger.New(d.config.Logging.Level, d.config.Logging.Format).
			Component(d.config.App.ServiceName)

		return nil
	}
}

func WithConfigLoader() DependencyOption {
	return func(d *dependencies) error {
		d.configLoader = config.NewLoader(d.config)

		return nil
	}
}

func WithMetrics() DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.Metrics.Enabled {
			d.infra.metricsClient = noop.NewMetricsClient()

			return nil
		}

		client := meter.NewClient(d.config.App.ServiceName, d.infra.logger)
		d.infra.metricsClient = client
		d.onCleanup("metrics", client.Shutdown)

		return nil
	}
}

func WithTracing(ctx context.Context) DependencyOption {
	return func(d *dependencies) error {
		if !d.config.Telemetry.Enabled || !d.config.Telemetry.Traces.Enabled {
			d.infra.tracerProvider = infrastructure.NewNoopTracerProvider()

			return nil
		}

		tp, shutdown, err := infrastructure.NewTracerProvider(ctx, d.config.App, d.config.Telemetry)
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}

		d.infra.tracerProvider = tp
		d.onCleanup("tracer", shutdown)

		return nil
	}
}

func WithRoomsClient() DependencyOption {
	return func(d *dependencies) error {
		client := rooms.NewClient(d.config, d.infra.logger, rooms.WithMetrics(d.infra.metricsClient))

		d.services.roomsClient = client
		d.services.healthChecker = health.NewChecker(config.ServiceVersion, client)

		return nil
	}
}

func WithApplication() DependencyOption {
	return func(d *dependencies) error {
		d.apps.webApp = usecases.NewWebApplication(
			d.services.roomsClient,
			d.services.healthChecker,
			d.infra.logger,
			d.infra.metricsClient,
			d.infra.tracerProvider,
		)

		return nil
	}
}

// WithSessions wires one rooms list and toast queue per operator session.
func WithSessions() DependencyOption {
	return func(d *dependencies) error {
		opts := console.OptionsFromConfig(d.config.Console)
		app := d.apps.webApp
		log := d.infra.logger

		factory := func(string) (*console.RoomsList, console.ToastQueue) {
			toasts := feedback.NewToaster(d.config.Console.ToastCapacity, d.services.roomsClient, log)

			list := console.NewRoomsList(console.Deps{
				ListRooms:  app.Queries.ListRooms,
				DeleteRoom: app.Commands.DeleteRoom,
				Feedback:   toasts,
				Logger:     log,
				Metrics:    d.infra.metricsClient,
			}, opts)

			return list, toasts
		}

		d.apps.sessions = console.NewSessions(factory, console.SessionsConfig{
			IdleTTL:     d.config.Sessions.IdleTTL,
			MaxSessions: d.config.Sessions.MaxSessions,
		}, log)

		d.onCleanup("sessions", func(context.Context) error {
			d.apps.sessions.Purge()

			return nil
		})

		return nil
	}
}

func WithHTTPServer() DependencyOption {
	return func(d *dependencies) error {
		router, err := inboundhttp.NewRouter(inboundhttp.RouterConfig{
			App:            d.apps.webApp,
			Sessions:       d.apps.sessions,
			Options:        console.OptionsFromConfig(d.config.Console),
			Logger:         d.infra.logger,
			MetricsClient:  d.infra.metricsClient,
			TracerProvider: d.infra.tracerProvider,
			Config:         d.config,
		})
		if err != nil {
			return fmt.Errorf("building public router: %w", err)
		}

		cfg := d.config.PublicHTTPServer
		d.infra.publicHttpServer = &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.FormatUint(uint64(cfg.Port), 10)),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		}
		d.onCleanup("public_http_server", d.infra.publicHttpServer.Shutdown)

		return nil
	}
}

func WithAdminHTTPServer() DependencyOption {
	return func(d *dependencies) error {
		cfg := d.config.AdminHTTPServer
		if !cfg.Enabled {
			return nil
		}

		router := inboundhttp.NewAdminRouter(inboundhttp.AdminRouterConfig{
			Sessions:      d.apps.sessions,
			MetricsClient: d.infra.metricsClient,
			Logger:        d.infra.logger,
		})

		d.infra.adminHttpServer = &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.FormatUint(uint64(cfg.Port), 10)),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		}
		d.onCleanup("admin_http_server", d.infra.adminHttpServer.Shutdown)

		return nil
	}
}
