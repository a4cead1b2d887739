package commands

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
	DeleteRoomCommand struct {
		ID             model.RoomID
		IdempotencyKey string
	}

	DeleteRoomResult struct {
		Success bool
	}

	DeleteRoomCommandHandler = decorator.CommandHandler[DeleteRoomCommand, DeleteRoomResult]

	deleteRoomCommandHandler struct {
		roomsService ports.RoomsService
	}
)

func NewDeleteRoomCommandHandler(
	svc ports.RoomsService,
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) DeleteRoomCommandHandler {
	return decorator.ApplyCommandDecorators[DeleteRoomCommand, DeleteRoomResult](
		deleteRoomCommandHandler{roomsService: svc},
		log,
		metricsClient,
		tracerProvider,
	)
}

func (h deleteRoomCommandHandler) Handle(ctx context.Context, cmd DeleteRoomCommand) (DeleteRoomResult, error) {
	if cmd.ID.IsZero() {
		return DeleteRoomResult{}, model.ErrInvalidRoomID
	}

	if err := h.roomsService.DeleteRoom(ctx, cmd.ID, cmd.IdempotencyKey); err != nil {
		return DeleteRoomResult{Success: false}, err
	}

	return DeleteRoomResult{Success: true}, nil
}
