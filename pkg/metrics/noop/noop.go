// Package noop provides a metrics client that drops every measurement,
// used in tests and when metrics collection is disabled.
package noop

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
)

type (
	MetricsClient struct{}
)

func NewMetricsClient() MetricsClient {
	return MetricsClient{}
}

func (c MetricsClient) Inc(context.Context, string, any, ...attribute.KeyValue) {}

func (c MetricsClient) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"code":"METRICS_DISABLED","message":"metrics collection is disabled"}`))
	})
}

func (c MetricsClient) Shutdown(context.Context) error {
	return nil
}
