package decorator

import (
	"context"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/pkg/metrics"
	otelTrace "go.opentelemetry.io/otel/trace"
)

type (
	Query  any
	Result any

	// QueryHandler serves a read, such as one page of rooms or a readiness
	// report. Errors pass through the decorators unchanged so callers can
	// still match them with errors.Is and errors.As.
	QueryHandler[Q Query, R Result] interface {
		Execute(ctx context.Context, query Q) (R, error)
	}
)

// ApplyQueryDecorators wraps a read the same way commands are wrapped. The
// metric and span names come from the query type, for example
// queries.listroomsquery.success.
func ApplyQueryDecorators[Q Query, R Result](
	handler QueryHandler[Q, R],
	log logger.Logger,
	metricsClient metrics.Client,
	tracerProvider otelTrace.TracerProvider,
) QueryHandler[Q, R] {
	return queryLoggingDecorator[Q, R]{
		base: queryMetricsDecorator[Q, R]{
			base: queryTracingDecorator[Q, R]{
				base:           handler,
				tracerProvider: tracerProvider,
			},
			client: metricsClient,
		},
		logger: log,
	}
}
