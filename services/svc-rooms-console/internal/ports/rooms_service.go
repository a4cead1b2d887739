//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/rooms_service.go . RoomsService

import (
	"context"

	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
)

// RoomsService is the remote rooms backend.
type RoomsService interface {
	// ListRooms fetches one page of rooms.
	ListRooms(ctx context.Context, req model.PageRequest) (*model.RoomPage, error)

	// DeleteRoom removes a room. The idempotency key is forwarded upstream.
	DeleteRoom(ctx context.Context, id model.RoomID, idempotencyKey string) error
}
