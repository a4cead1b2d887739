package console

import "errors"

var (
	ErrRoomNotListed      = errors.New("room is not listed on the current page")
	ErrMenuClosed         = errors.New("no row menu is open")
	ErrUnknownAction      = errors.New("unknown row action")
	ErrDeleteDialogClosed = errors.New("delete dialog is not open")
	ErrDeleteDialogOpen   = errors.New("delete dialog is already open")
	ErrDeleteInFlight     = errors.New("a delete is already in progress")
)
