package meter_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/pkg/metrics/meter"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestClient_Snapshot(t *testing.T) {
	t.Parallel()

	client := meter.NewClient("test", logger.NewTestLogger())
	t.Cleanup(func() {
		_ = client.Shutdown(t.Context())
	})

	ctx := t.Context()

	client.Inc(ctx, "queries.listroomsquery.success", int64(1))
	client.Inc(ctx, "queries.listroomsquery.success", 1)
	client.Inc(ctx, "queries.listroomsquery.duration", 0.25)
	client.Inc(ctx, "http_requests_total", int64(1), attribute.String("http.method", http.MethodGet))
	client.Inc(ctx, "ignored", "not a number")

	series, err := client.Snapshot(ctx)
	require.NoError(t, err)

	byName := make(map[string]meter.Series, len(series))
	for _, s := range series {
		byName[s.Name] = s
	}

	require.NotContains(t, byName, "ignored")

	success := byName["queries.listroomsquery.success"]
	require.Equal(t, "counter", success.Kind)
	require.InDelta(t, 2, success.Sum, 0.0001)

	duration := byName["queries.listroomsquery.duration"]
	require.Equal(t, "histogram", duration.Kind)
	require.Equal(t, uint64(1), duration.Count)
	require.InDelta(t, 0.25, duration.Sum, 0.0001)

	require.Equal(t, "counter", byName["http_requests_total"].Kind)
}

func TestClient_Handler(t *testing.T) {
	t.Parallel()

	client := meter.NewClient("test", logger.NewTestLogger())
	client.Inc(t.Context(), "commands.deleteroomcommand.success", 1)

	rec := httptest.NewRecorder()
	client.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Metrics []meter.Series `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Metrics, 1)
	require.Equal(t, "commands.deleteroomcommand.success", body.Metrics[0].Name)
}
