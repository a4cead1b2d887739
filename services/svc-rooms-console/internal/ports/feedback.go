//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/feedback.go . Feedback

import (
	"context"

	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
)

type (
	Notifier interface {
		Notify(ctx context.Context, kind model.NotificationKind, message string)
	}

	ErrorMessageExtractor interface {
		ErrorMessage(err error) string
	}

	// Feedback is what the console needs to report outcomes to the operator.
	Feedback interface {
		Notifier
		ErrorMessageExtractor
	}

	ErrorMessageFunc func(err error) string
)

func (f ErrorMessageFunc) ErrorMessage(err error) string {
	return f(err)
}
