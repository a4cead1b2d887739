package decorator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type (
	removeThingCommand struct{ ID string }
	findThingsQuery    struct{ Page uint }

	commandHandlerFunc func(context.Context, removeThingCommand) (bool, error)
	queryHandlerFunc   func(context.Context, findThingsQuery) ([]string, error)

	recordingMetrics struct {
		mu     sync.Mutex
		values map[string]float64
	}
)

func (f commandHandlerFunc) Handle(ctx context.Context, cmd removeThingCommand) (bool, error) {
	return f(ctx, cmd)
}

func (f queryHandlerFunc) Execute(ctx context.Context, query findThingsQuery) ([]string, error) {
	return f(ctx, query)
}

func (m *recordingMetrics) Inc(_ context.Context, key string, value any, _ ...attribute.KeyValue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.values == nil {
		m.values = make(map[string]float64)
	}

	switch v := value.(type) {
	case int:
		m.values[key] += float64(v)
	case float64:
		m.values[key] += v
	}
}

func (m *recordingMetrics) Handler() http.Handler          { return http.NotFoundHandler() }
func (m *recordingMetrics) Shutdown(context.Context) error { return nil }

func (m *recordingMetrics) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.values[key]

	return ok
}

func TestGenerateActionName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "value type", value: removeThingCommand{}, expected: "removeThingCommand"},
		{name: "pointer type", value: &findThingsQuery{}, expected: "findThingsQuery"},
		{name: "builtin", value: 42, expected: "int"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.expected, generateActionName(tc.value))
		})
	}
}

func TestApplyCommandDecorators(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		handlerErr    error
		expectedKey   string
		expectedSpan  codes.Code
		expectWarnLog bool
	}{
		{
			name:         "records success",
			expectedKey:  "commands.removethingcommand.success",
			expectedSpan: codes.Unset,
		},
		{
			name:          "records failure",
			handlerErr:    errors.New("backend down"),
			expectedKey:   "commands.removethingcommand.failure",
			expectedSpan:  codes.Error,
			expectWarnLog: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			metricsClient := &recordingMetrics{}
			recorder := tracetest.NewSpanRecorder()
			tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

			handler := ApplyCommandDecorators[removeThingCommand, bool](
				commandHandlerFunc(func(context.Context, removeThingCommand) (bool, error) {
					return tc.handlerErr == nil, tc.handlerErr
				}),
				logger.NewBufferedTestLogger(&buf),
				metricsClient,
				tracerProvider,
			)

			ok, err := handler.Handle(t.Context(), removeThingCommand{ID: "r-1"})
			require.ErrorIs(t, err, tc.handlerErr)
			require.Equal(t, tc.handlerErr == nil, ok)

			require.True(t, metricsClient.has(tc.expectedKey))
			require.True(t, metricsClient.has("commands.removethingcommand.duration"))

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			require.Equal(t, "command.removeThingCommand", spans[0].Name())
			require.Equal(t, tc.expectedSpan, spans[0].Status().Code)

			if tc.expectWarnLog {
				require.Contains(t, buf.String(), "failed to execute command")
			}
		})
	}
}

func TestApplyQueryDecorators(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	metricsClient := &recordingMetrics{}

	handler := ApplyQueryDecorators[findThingsQuery, []string](
		queryHandlerFunc(func(_ context.Context, q findThingsQuery) ([]string, error) {
			require.Equal(t, uint(2), q.Page)

			return []string{"a", "b"}, nil
		}),
		logger.NewBufferedTestLogger(&buf),
		metricsClient,
		nil,
	)

	result, err := handler.Execute(t.Context(), findThingsQuery{Page: 2})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, result)
	require.True(t, metricsClient.has("queries.findthingsquery.success"))

	var entry map[string]any
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	require.Equal(t, "findThingsQuery", entry["query"])
}

type pageMissingError struct{ Page uint }

func (e *pageMissingError) Error() string { return "page missing" }

func TestApplyQueryDecorators_ErrorsPassThrough(t *testing.T) {
	t.Parallel()

	metricsClient := &recordingMetrics{}
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	handler := ApplyQueryDecorators[findThingsQuery, []string](
		queryHandlerFunc(func(_ context.Context, q findThingsQuery) ([]string, error) {
			return nil, &pageMissingError{Page: q.Page}
		}),
		logger.NewTestLogger(),
		metricsClient,
		provider,
	)

	_, err := handler.Execute(t.Context(), findThingsQuery{Page: 7})

	var missing *pageMissingError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, uint(7), missing.Page)
	require.True(t, metricsClient.has("queries.findthingsquery.failure"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "query.findThingsQuery", spans[0].Name())
	require.Equal(t, codes.Error, spans[0].Status().Code)
}
