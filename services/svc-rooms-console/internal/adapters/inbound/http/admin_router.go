package http

import (
	"net/http"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/pkg/metrics"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/adapters/inbound/http/handlers"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/console"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type AdminRouterConfig struct {
	Sessions      *console.Sessions
	MetricsClient metrics.Client
	Logger        logger.Logger
}

// NewAdminRouter serves the operator endpoints. It is meant for a listener
// bound to an internal address.
func NewAdminRouter(cfg AdminRouterConfig) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Recovery(cfg.Logger))

	adminHandler := handlers.NewAdminHandler(cfg.Sessions)

	router.Route("/admin", func(r chi.Router) {
		r.Get("/status", adminHandler.Status)
		r.Method(http.MethodGet, "/metrics", cfg.MetricsClient.Handler())
		r.Get("/sessions", adminHandler.ListSessions)
		r.Delete("/sessions", adminHandler.PurgeSessions)
		r.Delete("/sessions/{sessionID}", adminHandler.RemoveSession)
	})

	return router
}
