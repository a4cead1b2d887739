// Package console holds the per session controller behind the rooms
// administration table: paging, the row action menu and the delete dialog.
package console

import (
	"context"
	"slices"
	"sync"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/pkg/metrics"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/ports"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/usecases/commands"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/usecases/queries"
)

type (
	Deps struct {
		ListRooms  queries.ListRoomsQueryHandler
		DeleteRoom commands.DeleteRoomCommandHandler
		Feedback   ports.Feedback
		Logger     logger.Logger
		Metrics    metrics.Client
	}

	// RoomsList is safe for concurrent use. Its mutex is never held while
	// the backend is being called.
	RoomsList struct {
		mu sync.Mutex

		listRooms  queries.ListRoomsQueryHandler
		deleteRoom commands.DeleteRoomCommandHandler
		feedback   ports.Feedback
		logger     logger.Logger
		metrics    metrics.Client
		opts       Options

		mounted     bool
		generation  uint64
		latestToken uint64

		page        uint
		rowsPerPage uint
		rooms       []model.Room
		totalCount  *uint
		loading     bool
		openMenuFor model.RoomID
		dialog      deleteDialog
	}

	// Snapshot is a consistent copy of the view state.
	Snapshot struct {
		Page        uint
		RowsPerPage uint
		Rooms       []model.Room
		TotalCount  *uint
		Loading     bool
		OpenMenuFor model.RoomID
		Dialog      DeleteDialog
		Options     Options
	}
)

func NewRoomsList(deps Deps, opts Options) *RoomsList {
	return &RoomsList{
		listRooms:   deps.ListRooms,
		deleteRoom:  deps.DeleteRoom,
		feedback:    deps.Feedback,
		logger:      deps.Logger.Component("rooms-list"),
		metrics:     deps.Metrics,
		opts:        opts,
		rowsPerPage: opts.DefaultRowsPerPage,
		rooms:       []model.Room{},
	}
}

// Mount loads the first page the first time it is called. Later calls are
// no-ops so a re-rendered page keeps its paging.
func (l *RoomsList) Mount(ctx context.Context) {
	l.mu.Lock()
	if l.mounted {
		l.mu.Unlock()

		return
	}

	l.mounted = true
	l.mu.Unlock()

	l.load(ctx)
}

func (l *RoomsList) Mounted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.mounted
}

// Unmount drops all view state. Responses still in flight are discarded.
func (l *RoomsList) Unmount() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.generation++
	l.latestToken++
	l.mounted = false
	l.page = 0
	l.rowsPerPage = l.opts.DefaultRowsPerPage
	l.rooms = []model.Room{}
	l.totalCount = nil
	l.loading = false
	l.openMenuFor = ""
	l.dialog = deleteDialog{}
}

func (l *RoomsList) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.snapshotLocked()
}

func (l *RoomsList) snapshotLocked() Snapshot {
	return Snapshot{
		Page:        l.page,
		RowsPerPage: l.rowsPerPage,
		Rooms:       slices.Clone(l.rooms),
		TotalCount:  l.totalCount,
		Loading:     l.loading,
		OpenMenuFor: l.openMenuFor,
		Dialog:      l.dialog.view(),
		Options:     l.opts,
	}
}

func (l *RoomsList) inc(ctx context.Context, key string) {
	if l.metrics != nil {
		l.metrics.Inc(ctx, key, 1)
	}
}
