package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/usecases/queries"
)

func (l *RoomsList) SetPage(ctx context.Context, page uint) {
	l.mu.Lock()
	l.mounted = true
	l.page = min(page, model.MaxPage)
	l.mu.Unlock()

	l.load(ctx)
}

// SetRowsPerPage changes the page size and goes back to the first page.
func (l *RoomsList) SetRowsPerPage(ctx context.Context, size uint) error {
	if err := (model.PageRequest{Size: size}).Validate(l.opts.RowsPerPageOptions); err != nil {
		return fmt.Errorf("setting rows per page: %w", err)
	}

	l.mu.Lock()
	l.mounted = true
	l.rowsPerPage = size
	l.page = 0
	l.mu.Unlock()

	l.load(ctx)

	return nil
}

// Reload fetches the current page again.
func (l *RoomsList) Reload(ctx context.Context) {
	l.mu.Lock()
	l.mounted = true
	l.mu.Unlock()

	l.load(ctx)
}

// load fetches the current page. Only the newest request may touch the
// state; older responses are dropped without a trace in the view.
func (l *RoomsList) load(ctx context.Context) {
	l.mu.Lock()
	l.latestToken++
	token := l.latestToken
	req := model.PageRequest{Page: l.page, Size: l.rowsPerPage}
	l.loading = true
	l.mu.Unlock()

	page, err := l.listRooms.Execute(ctx, queries.ListRoomsQuery{Page: req})

	l.mu.Lock()
	if token != l.latestToken {
		l.mu.Unlock()

		l.logger.WithContext(ctx).Debug().
			Uint64("token", token).
			Uint("page", req.Page).
			Msg("discarding stale rooms response")
		l.inc(ctx, "console.stale_responses")

		return
	}

	l.loading = false

	if err != nil {
		l.mu.Unlock()

		if errors.Is(err, context.Canceled) {
			return
		}

		l.feedback.Notify(ctx, model.NotificationError, l.feedback.ErrorMessage(err))

		return
	}

	l.rooms = page.Rooms
	if l.rooms == nil {
		l.rooms = []model.Room{}
	}
	l.totalCount = page.TotalCount

	if !l.openMenuFor.IsZero() && !l.isRenderedLocked(l.openMenuFor) {
		l.openMenuFor = ""
	}
	l.mu.Unlock()
}
