package usecases

import (
	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/pkg/metrics"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/ports"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/usecases/commands"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/usecases/queries"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Commands struct {
		DeleteRoom commands.DeleteRoomCommandHandler
	}

	Queries struct {
		ListRooms      queries.ListRoomsQueryHandler
		FetchLiveness  queries.FetchLivenessQueryHandler
		FetchReadiness queries.FetchReadinessQueryHandler
	}

	WebApplication struct {
		Commands Commands
		Queries  Queries
	}
)

func NewWebApplication(
	roomsSvc ports.RoomsService,
	healthChecker ports.HealthChecker,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) *WebApplication {
	return &WebApplication{
		Commands: Commands{
			DeleteRoom: commands.NewDeleteRoomCommandHandler(roomsSvc, log, metricsClient, tracerProvider),
		},
		Queries: Queries{
			ListRooms:      queries.NewListRoomsQueryHandler(roomsSvc, log, metricsClient, tracerProvider),
			FetchLiveness:  queries.NewFetchLivenessQueryHandler(healthChecker, log, metricsClient, tracerProvider),
			FetchReadiness: queries.NewFetchReadinessQueryHandler(healthChecker, log, metricsClient, tracerProvider),
		},
	}
}
