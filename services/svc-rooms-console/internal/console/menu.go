package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
)

type Action string

const (
	ActionView   Action = "view"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"

	editMode = "edit"
)

type (
	// EditState travels with the navigation to the edit page.
	EditState struct {
		RoomData model.Room `json:"roomData"`
		Mode     string     `json:"state"`
	}

	Navigation struct {
		Path  string    `json:"path"`
		State EditState `json:"state"`
	}
)

func ParseAction(s string) (Action, error) {
	action := Action(strings.ToLower(strings.TrimSpace(s)))

	switch action {
	case ActionView, ActionEdit, ActionDelete:
		return action, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
	}
}

// OpenMenu opens the action menu of a rendered row, closing any other.
func (l *RoomsList) OpenMenu(id model.RoomID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.isRenderedLocked(id) {
		return fmt.Errorf("%w: %s", ErrRoomNotListed, id)
	}

	l.openMenuFor = id

	return nil
}

func (l *RoomsList) CloseMenu() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.openMenuFor = ""
}

// SelectAction runs a menu action for the room whose menu is open. The menu
// is closed for every known action. Edit yields the navigation to follow.
func (l *RoomsList) SelectAction(ctx context.Context, action Action) (*Navigation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.openMenuFor.IsZero() {
		return nil, ErrMenuClosed
	}

	id := l.openMenuFor

	switch action {
	case ActionView:
		l.openMenuFor = ""

		return nil, nil

	case ActionEdit:
		l.openMenuFor = ""

		room, ok := l.findLocked(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrRoomNotListed, id)
		}

		l.logger.WithContext(ctx).Debug().Str("room_id", id.String()).Msg("navigating to room editor")

		return &Navigation{
			Path:  l.opts.editPath(id),
			State: EditState{RoomData: room, Mode: editMode},
		}, nil

	case ActionDelete:
		l.openMenuFor = ""

		return nil, l.openDeleteLocked(id)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}

func (l *RoomsList) findLocked(id model.RoomID) (model.Room, bool) {
	for _, room := range l.rooms {
		if room.ID == id {
			return room, true
		}
	}

	return model.Room{}, false
}
