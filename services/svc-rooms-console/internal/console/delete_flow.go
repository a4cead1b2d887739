package console

import (
	"context"
	"errors"

	"github.com/architeacher/rooms-console/pkg/idempotency"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/usecases/commands"
)

type DeletePhase string

const (
	DeleteClosed      DeletePhase = "closed"
	DeleteConfirmOpen DeletePhase = "confirm_open"
	DeleteDeleting    DeletePhase = "deleting"
)

const (
	DeleteDialogTitle = "Delete This Room?"
	DeleteDialogBody  = "Are you sure you want to delete this item? If you are sure, just click on delete."
)

type (
	deleteDialog struct {
		phase          DeletePhase
		roomID         model.RoomID
		idempotencyKey string
	}

	DeleteDialog struct {
		Phase  DeletePhase  `json:"phase"`
		RoomID model.RoomID `json:"roomId,omitempty"`
		Open   bool         `json:"open"`
		Busy   bool         `json:"busy"`
	}
)

func (d deleteDialog) view() DeleteDialog {
	phase := d.phase
	if phase == "" {
		phase = DeleteClosed
	}

	return DeleteDialog{
		Phase:  phase,
		RoomID: d.roomID,
		Open:   phase != DeleteClosed,
		Busy:   phase == DeleteDeleting,
	}
}

// OpenDelete opens the confirmation dialog for a room. The id is captured
// here and is the one deleted on confirm, whatever the list shows by then.
func (l *RoomsList) OpenDelete(id model.RoomID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.openDeleteLocked(id)
}

func (l *RoomsList) openDeleteLocked(id model.RoomID) error {
	if id.IsZero() {
		return model.ErrInvalidRoomID
	}

	switch l.dialog.phase {
	case DeleteDeleting:
		return ErrDeleteInFlight
	case DeleteConfirmOpen:
		return ErrDeleteDialogOpen
	}

	l.dialog = deleteDialog{
		phase:          DeleteConfirmOpen,
		roomID:         id,
		idempotencyKey: idempotency.New(),
	}

	return nil
}

// CloseDelete dismisses the dialog. It has no effect while deleting.
func (l *RoomsList) CloseDelete() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.dialog.phase == DeleteDeleting {
		return
	}

	l.dialog = deleteDialog{}
}

// ConfirmDelete deletes the captured room. On success the dialog closes, the
// operator is told and the current page is reloaded. On failure the dialog
// stays open with its key so the same delete can be retried.
func (l *RoomsList) ConfirmDelete(ctx context.Context) error {
	l.mu.Lock()

	switch l.dialog.phase {
	case DeleteDeleting:
		l.mu.Unlock()

		return ErrDeleteInFlight
	case DeleteConfirmOpen:
	default:
		l.mu.Unlock()

		return ErrDeleteDialogClosed
	}

	l.dialog.phase = DeleteDeleting
	generation := l.generation
	cmd := commands.DeleteRoomCommand{
		ID:             l.dialog.roomID,
		IdempotencyKey: l.dialog.idempotencyKey,
	}
	l.mu.Unlock()

	_, err := l.deleteRoom.Handle(ctx, cmd)

	l.mu.Lock()
	if generation != l.generation {
		l.mu.Unlock()

		return nil
	}

	if err != nil {
		l.dialog.phase = DeleteConfirmOpen
		l.mu.Unlock()

		if !errors.Is(err, context.Canceled) {
			l.feedback.Notify(ctx, model.NotificationError, l.feedback.ErrorMessage(err))
		}

		return nil
	}

	l.dialog = deleteDialog{}
	l.mu.Unlock()

	l.logger.WithContext(ctx).Info().Str("room_id", cmd.ID.String()).Msg("room deleted")
	l.feedback.Notify(ctx, model.NotificationSuccess, model.DeleteSuccessMessage)
	l.load(ctx)

	return nil
}
