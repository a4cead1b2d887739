package commands_test

import (
	"testing"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/pkg/metrics/noop"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/mocks"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/usecases/commands"
	"github.com/stretchr/testify/require"
	otelNoop "go.opentelemetry.io/otel/trace/noop"
)

func TestDeleteRoomCommandHandler(t *testing.T) {
	t.Parallel()

	log := logger.NewTestLogger()
	mc := noop.NewMetricsClient()
	tp := otelNoop.NewTracerProvider()

	cases := []struct {
		name          string
		cmd           commands.DeleteRoomCommand
		svcErr        error
		expectedErr   error
		expectedCalls int
	}{
		{
			name:          "deletes the room with the given key",
			cmd:           commands.DeleteRoomCommand{ID: "room-1", IdempotencyKey: "key-0000000000000001"},
			expectedCalls: 1,
		},
		{
			name:          "room not found",
			cmd:           commands.DeleteRoomCommand{ID: "room-1", IdempotencyKey: "key-0000000000000001"},
			svcErr:        model.ErrRoomNotFound,
			expectedErr:   model.ErrRoomNotFound,
			expectedCalls: 1,
		},
		{
			name:        "empty id is rejected before calling the backend",
			cmd:         commands.DeleteRoomCommand{},
			expectedErr: model.ErrInvalidRoomID,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &mocks.FakeRoomsService{}
			svc.DeleteRoomReturns(tc.svcErr)

			result, err := commands.NewDeleteRoomCommandHandler(svc, log, mc, tp).Handle(t.Context(), tc.cmd)
			require.Equal(t, tc.expectedCalls, svc.DeleteRoomCallCount())

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				require.False(t, result.Success)

				return
			}

			require.NoError(t, err)
			require.True(t, result.Success)

			_, id, key := svc.DeleteRoomArgsForCall(0)
			require.Equal(t, tc.cmd.ID, id)
			require.Equal(t, tc.cmd.IdempotencyKey, key)
		})
	}
}
