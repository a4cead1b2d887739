package http

import (
	"net/http"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/pkg/metrics"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/config"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/console"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/usecases"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/throttled/throttled/v2/store/memstore"
	otelTrace "go.opentelemetry.io/otel/trace"
)

const baseURL = "/v1"

type RouterConfig struct {
	App            *usecases.WebApplication
	Sessions       *console.Sessions
	Options        console.Options
	Logger         logger.Logger
	MetricsClient  metrics.Client
	TracerProvider otelTrace.TracerProvider
	Config         *config.ServiceConfig
}

func NewRouter(cfg RouterConfig) (http.Handler, error) {
	router := chi.NewRouter()

	// Core middlewares, always applied.
	router.Use(middleware.RequestTracking())
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recovery(cfg.Logger))
	router.Use(chimiddleware.Timeout(cfg.Config.PublicHTTPServer.WriteTimeout))
	router.Use(middleware.SecurityHeaders())

	if cfg.Config.Telemetry.Traces.Enabled && cfg.TracerProvider != nil {
		router.Use(middleware.Tracer(cfg.TracerProvider, cfg.Config.App.ServiceName))
		cfg.Logger.Info().Msg("distributed tracing enabled")
	}

	if cfg.Config.Telemetry.Metrics.Enabled {
		router.Use(middleware.NewMetricsMiddleware(cfg.MetricsClient).Middleware)
		cfg.Logger.Info().Msg("HTTP metrics collection enabled")
	}

	if cfg.Config.Logging.AccessLog.Enabled {
		healthFilter := middleware.NewHealthCheckFilter(cfg.Config.Logging.AccessLog.LogHealthChecks)

		router.Use(healthFilter.Middleware)
		router.Use(middleware.AccessLogger(cfg.Logger, cfg.Config.Logging.AccessLog.IncludeQueryParams))
		cfg.Logger.Info().
			Bool("log_health_checks", cfg.Config.Logging.AccessLog.LogHealthChecks).
			Msg("structured access logging enabled")
	}

	healthHandler := handlers.NewHealthHandler(cfg.App)

	router.Route(baseURL, func(r chi.Router) {
		r.Get("/liveness", healthHandler.Liveness)
		r.Get("/readiness", healthHandler.Readiness)
	})

	consoleHandler, err := handlers.NewConsoleHandler(cfg.Options, cfg.Logger)
	if err != nil {
		return nil, err
	}

	var rateLimit func(http.Handler) http.Handler
	if cfg.Config.ThrottledRateLimiting.Enabled {
		store, err := memstore.NewCtx(int(cfg.Config.ThrottledRateLimiting.MaxKeys))
		if err != nil {
			return nil, err
		}

		rateLimit, err = middleware.ThrottledRateLimiting(
			cfg.Config.ThrottledRateLimiting,
			store,
			middleware.SessionRateLimitKey(cfg.Sessions, cfg.Config.Sessions.CookieName),
			cfg.Logger,
		)
		if err != nil {
			return nil, err
		}
	}

	router.Group(func(r chi.Router) {
		// Limit before the session lookup so throttled callers never register one.
		if rateLimit != nil {
			r.Use(rateLimit)
		}

		r.Use(middleware.Sessions(cfg.Sessions, cfg.Config.Sessions, handlers.RoomsPath))

		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, handlers.RoomsPath, http.StatusFound)
		})

		r.Route(handlers.RoomsPath, func(r chi.Router) {
			r.Get("/", consoleHandler.Page)
			r.Get("/state", consoleHandler.State)
			r.Post("/page", consoleHandler.SetPage)
			r.Post("/size", consoleHandler.SetRowsPerPage)
			r.Post("/reload", consoleHandler.Reload)
			r.Post("/{roomID}/menu", consoleHandler.OpenMenu)
			r.Post("/menu/close", consoleHandler.CloseMenu)
			r.Post("/menu/{action}", consoleHandler.SelectAction)
			r.Post("/delete/confirm", consoleHandler.ConfirmDelete)
			r.Post("/delete/cancel", consoleHandler.CancelDelete)
		})

		r.Get(cfg.Options.EditPathPrefix+"/{roomID}", consoleHandler.EditState)
	})

	return router, nil
}
