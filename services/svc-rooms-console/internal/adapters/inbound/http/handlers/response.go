package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/console"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
)

const (
	contentTypeHeader = "Content-Type"
	acceptHeader      = "Accept"
	applicationJSON   = "application/json"
	textHTML          = "text/html; charset=utf-8"

	codeInvalidID       = "INVALID_ID"
	codeInvalidPage     = "INVALID_PAGE"
	codeInvalidPageSize = "INVALID_PAGE_SIZE"
	codeUnknownAction   = "UNKNOWN_ACTION"
	codeRoomNotListed   = "ROOM_NOT_LISTED"
	codeMenuClosed      = "MENU_CLOSED"
	codeDialogState     = "DIALOG_STATE"
	codeDeleteInFlight  = "DELETE_IN_FLIGHT"
	codeNoSession       = "NO_SESSION"
	codeNotFound        = "NOT_FOUND"
	codeInternalError   = "INTERNAL_ERROR"
)

type ErrorResponse struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func writeJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(contentTypeHeader, applicationJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSONResponse(w, status, ErrorResponse{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

// writeConsoleError maps controller misuse onto client errors. Backend
// failures never get here, the controller reports them as toasts.
func writeConsoleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidRoomID):
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidID, err.Error())
	case errors.Is(err, model.ErrInvalidPageSize):
		writeErrorResponse(w, http.StatusBadRequest, codeInvalidPageSize, err.Error())
	case errors.Is(err, console.ErrUnknownAction):
		writeErrorResponse(w, http.StatusBadRequest, codeUnknownAction, err.Error())
	case errors.Is(err, console.ErrRoomNotListed):
		writeErrorResponse(w, http.StatusConflict, codeRoomNotListed, err.Error())
	case errors.Is(err, console.ErrMenuClosed):
		writeErrorResponse(w, http.StatusConflict, codeMenuClosed, err.Error())
	case errors.Is(err, console.ErrDeleteDialogClosed), errors.Is(err, console.ErrDeleteDialogOpen):
		writeErrorResponse(w, http.StatusConflict, codeDialogState, err.Error())
	case errors.Is(err, console.ErrDeleteInFlight):
		writeErrorResponse(w, http.StatusConflict, codeDeleteInFlight, err.Error())
	default:
		writeErrorResponse(w, http.StatusInternalServerError, codeInternalError, "internal server error")
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get(acceptHeader), applicationJSON)
}
