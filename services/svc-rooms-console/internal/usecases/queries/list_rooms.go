package queries

import (
	"context"

	"github.com/architeacher/rooms-console/pkg/decorator"
	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/pkg/metrics"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/ports"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	ListRoomsQuery struct {
		Page model.PageRequest
	}

	ListRoomsQueryHandler = decorator.QueryHandler[ListRoomsQuery, *model.RoomPage]

	listRoomsQueryHandler struct {
		roomsService ports.RoomsService
	}
)

func NewListRoomsQueryHandler(
	svc ports.RoomsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) ListRoomsQueryHandler {
	return decorator.ApplyQueryDecorators[ListRoomsQuery, *model.RoomPage](
		listRoomsQueryHandler{roomsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h listRoomsQueryHandler) Execute(ctx context.Context, query ListRoomsQuery) (*model.RoomPage, error) {
	return h.roomsService.ListRooms(ctx, query.Page)
}
