package rooms

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/architeacher/rooms-console/pkg/circuitbreaker"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
)

// ErrNetwork marks failures where no HTTP response was received.
var ErrNetwork = errors.New("rooms api unreachable")

// APIError is a non 2xx answer from the rooms backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rooms api responded %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether repeating the call may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (b *errorBody) text() string {
	if b == nil {
		return ""
	}

	if b.Message != "" {
		return b.Message
	}

	return b.Error
}

// ErrorMessage turns a failure from this client into operator facing text.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError

	switch {
	case circuitbreaker.IsRejection(err):
		return model.UnavailableMessage
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, ErrNetwork), errors.Is(err, context.DeadlineExceeded):
		return model.NetworkErrorMessage
	default:
		return err.Error()
	}
}

// countsAsSuccess keeps caller mistakes and cancellations from tripping the breaker.
func countsAsSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return !apiErr.Temporary()
	}

	return false
}

func mapAPIError(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", model.ErrRoomNotFound, err)
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return fmt.Errorf("%w: %w", model.ErrServiceUnavailable, err)
	case http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %w", model.ErrTimeout, err)
	default:
		return err
	}
}
