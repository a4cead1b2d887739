package handlers

import (
	"net/http"
	"time"

	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/usecases"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/usecases/queries"
)

type HealthHandler struct {
	app *usecases.WebApplication
}

func NewHealthHandler(app *usecases.WebApplication) *HealthHandler {
	return &HealthHandler{app: app}
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	report, err := h.app.Queries.FetchLiveness.Execute(r.Context(), queries.FetchLivenessQuery{})
	if err != nil {
		writeJSONResponse(w, http.StatusServiceUnavailable, model.LivenessReport{
			Status:    model.HealthStatusDown,
			Timestamp: time.Now().UTC(),
		})

		return
	}

	writeJSONResponse(w, http.StatusOK, report)
}

// Readiness reports 503 only when the rooms backend is down. A degraded
// backend, such as a half open breaker, still takes traffic.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	report, err := h.app.Queries.FetchReadiness.Execute(r.Context(), queries.FetchReadinessQuery{})
	if err != nil {
		writeJSONResponse(w, http.StatusServiceUnavailable, model.ReadinessReport{
			Status:    model.HealthStatusDown,
			Timestamp: time.Now().UTC(),
		})

		return
	}

	status := http.StatusOK
	if report.Status == model.HealthStatusDown {
		status = http.StatusServiceUnavailable
	}

	writeJSONResponse(w, status, report)
}
