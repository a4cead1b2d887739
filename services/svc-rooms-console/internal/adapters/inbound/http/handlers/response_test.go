package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/console"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestWriteConsoleError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{name: "invalid room id", err: fmt.Errorf("%w: empty", model.ErrInvalidRoomID), expectedStatus: http.StatusBadRequest, expectedCode: codeInvalidID},
		{name: "invalid page size", err: fmt.Errorf("setting rows per page: %w", model.ErrInvalidPageSize), expectedStatus: http.StatusBadRequest, expectedCode: codeInvalidPageSize},
		{name: "unknown action", err: console.ErrUnknownAction, expectedStatus: http.StatusBadRequest, expectedCode: codeUnknownAction},
		{name: "room not listed", err: console.ErrRoomNotListed, expectedStatus: http.StatusConflict, expectedCode: codeRoomNotListed},
		{name: "menu closed", err: console.ErrMenuClosed, expectedStatus: http.StatusConflict, expectedCode: codeMenuClosed},
		{name: "dialog closed", err: console.ErrDeleteDialogClosed, expectedStatus: http.StatusConflict, expectedCode: codeDialogState},
		{name: "dialog already open", err: console.ErrDeleteDialogOpen, expectedStatus: http.StatusConflict, expectedCode: codeDialogState},
		{name: "delete in flight", err: console.ErrDeleteInFlight, expectedStatus: http.StatusConflict, expectedCode: codeDeleteInFlight},
		{name: "anything else", err: errors.New("disk on fire"), expectedStatus: http.StatusInternalServerError, expectedCode: codeInternalError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			writeConsoleError(rec, tc.err)

			require.Equal(t, tc.expectedStatus, rec.Code)
			require.Contains(t, rec.Body.String(), `"code":"`+tc.expectedCode+`"`)
		})
	}
}

func TestWantsJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		accept   string
		expected bool
	}{
		{accept: "application/json", expected: true},
		{accept: "text/html,application/json;q=0.9", expected: true},
		{accept: "text/html", expected: false},
		{accept: "", expected: false},
	}

	for _, tc := range cases {
		t.Run(tc.accept, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/rooms/reload", nil)
			req.Header.Set(acceptHeader, tc.accept)

			require.Equal(t, tc.expected, wantsJSON(req))
		})
	}
}
