// Package feedback holds the per session toast queue the console reports to.
package feedback

import (
	"context"
	"sync"
	"time"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/ports"
	"github.com/rs/zerolog"
)

const defaultCapacity = 16

type Toaster struct {
	mu        sync.Mutex
	toasts    []model.Notification
	capacity  int
	extractor ports.ErrorMessageExtractor
	logger    logger.Logger
	now       func() time.Time
}

var _ ports.Feedback = (*Toaster)(nil)

func NewToaster(capacity uint, extractor ports.ErrorMessageExtractor, log logger.Logger) *Toaster {
	size := int(capacity)
	if size <= 0 {
		size = defaultCapacity
	}

	return &Toaster{
		toasts:    make([]model.Notification, 0, size),
		capacity:  size,
		extractor: extractor,
		logger:    log.Component("feedback"),
		now:       time.Now,
	}
}

// Notify queues a toast, dropping the oldest one when the queue is full.
func (t *Toaster) Notify(ctx context.Context, kind model.NotificationKind, message string) {
	t.logger.WithContext(ctx).WithLevel(levelFor(kind)).
		Str("kind", kind.String()).
		Msg(message)

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.toasts) == t.capacity {
		t.toasts = t.toasts[1:]
	}

	t.toasts = append(t.toasts, model.Notification{
		Kind:      kind,
		Message:   message,
		CreatedAt: t.now().UTC(),
	})
}

func (t *Toaster) ErrorMessage(err error) string {
	if t.extractor == nil {
		if err == nil {
			return ""
		}

		return err.Error()
	}

	return t.extractor.ErrorMessage(err)
}

// Drain returns the queued toasts in order and empties the queue.
func (t *Toaster) Drain() []model.Notification {
	t.mu.Lock()
	defer t.mu.Unlock()

	drained := t.toasts
	t.toasts = make([]model.Notification, 0, t.capacity)

	return drained
}

func (t *Toaster) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.toasts)
}

func levelFor(kind model.NotificationKind) zerolog.Level {
	switch kind {
	case model.NotificationError:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
