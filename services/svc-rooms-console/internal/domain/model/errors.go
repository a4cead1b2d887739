package model

import "errors"

var (
	ErrInvalidRoomID      = errors.New("invalid room id")
	ErrInvalidPageSize    = errors.New("invalid rows per page")
	ErrRoomNotFound       = errors.New("room not found")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrTimeout            = errors.New("request timeout")
)

const (
	DeleteSuccessMessage   = "Room has been deleted!"
	NetworkErrorMessage    = "Network Error"
	UnavailableMessage     = "Service temporarily unavailable"
	UnexpectedErrorMessage = "Something went wrong"
)
