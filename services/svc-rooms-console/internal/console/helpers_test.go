package console

import (
	"context"
	"fmt"
	"testing"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/pkg/metrics/noop"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/mocks"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/usecases/commands"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/usecases/queries"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

type (
	listResult struct {
		page *model.RoomPage
		err  error
	}

	pendingList struct {
		req   model.PageRequest
		reply chan listResult
	}
)

func newTestList(t *testing.T, svc *mocks.FakeRoomsService, opts Options) (*RoomsList, *mocks.FakeFeedback) {
	t.Helper()

	log := logger.NewTestLogger()
	mc := noop.NewMetricsClient()
	tp := otelNoop.NewTracerProvider()
	fb := &mocks.FakeFeedback{}
	fb.ErrorMessageCalls(func(err error) string { return err.Error() })

	list := NewRoomsList(Deps{
		ListRooms:  queries.NewListRoomsQueryHandler(svc, log, mc, tp),
		DeleteRoom: commands.NewDeleteRoomCommandHandler(svc, log, mc, tp),
		Feedback:   fb,
		Logger:     log,
		Metrics:    mc,
	}, opts)

	return list, fb
}

func listRequest(svc *mocks.FakeRoomsService, i int) model.PageRequest {
	_, req := svc.ListRoomsArgsForCall(i)

	return req
}

func notificationsOf(fb *mocks.FakeFeedback) []model.Notification {
	notifications := make([]model.Notification, 0, fb.NotifyCallCount())
	for i := range fb.NotifyCallCount() {
		_, kind, message := fb.NotifyArgsForCall(i)
		notifications = append(notifications, model.Notification{Kind: kind, Message: message})
	}

	return notifications
}

func makeRooms(prefix string, n int) []model.Room {
	rooms := make([]model.Room, 0, n)
	for i := range n {
		rooms = append(rooms, model.Room{
			ID:         model.RoomID(fmt.Sprintf("%s-%d", prefix, i)),
			RoomNumber: fmt.Sprintf("%s%02d", prefix, i),
			Images:     []string{fmt.Sprintf("https://img.example/%s-%d.png", prefix, i)},
			Price:      float64(100 + i),
			Capacity:   2,
		})
	}

	return rooms
}

func pageOf(rooms []model.Room) *model.RoomPage {
	return &model.RoomPage{Rooms: rooms}
}

// blockingLister parks every ListRooms call until the test replies to it.
func blockingLister(svc *mocks.FakeRoomsService) <-chan pendingList {
	calls := make(chan pendingList)

	svc.ListRoomsCalls(func(ctx context.Context, req model.PageRequest) (*model.RoomPage, error) {
		reply := make(chan listResult, 1)
		calls <- pendingList{req: req, reply: reply}

		select {
		case res := <-reply:
			return res.page, res.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})

	return calls
}

func async(fn func()) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)
		fn()
	}()

	return done
}
