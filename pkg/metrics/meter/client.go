// Package meter implements metrics.Client on top of the OpenTelemetry SDK
// with an in-process manual reader, so measurements can be inspected through
// the admin listener without an external collector.
package meter

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type (
	Client struct {
		provider *sdkmetric.MeterProvider
		reader   *sdkmetric.ManualReader
		meter    metric.Meter
		logger   logger.Logger

		mu         sync.Mutex
		counters   map[string]metric.Int64Counter
		histograms map[string]metric.Float64Histogram
	}

	// Series is the JSON shape of one instrument in the admin snapshot.
	Series struct {
		Name  string  `json:"name"`
		Kind  string  `json:"kind"`
		Count uint64  `json:"count"`
		Sum   float64 `json:"sum"`
	}
)

var _ metrics.Client = (*Client)(nil)

func NewClient(scope string, log logger.Logger) *Client {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return &Client{
		provider:   provider,
		reader:     reader,
		meter:      provider.Meter(scope),
		logger:     log,
		counters:   make(map[string]metric.Int64Counter),
		histograms: make(map[string]metric.Float64Histogram),
	}
}

func (c *Client) Inc(ctx context.Context, key string, value any, attributes ...attribute.KeyValue) {
	v, ok := metrics.Float64Value(value)
	if !ok {
		c.logger.Debug().Str("metric", key).Msgf("unsupported metric value type %T", value)

		return
	}

	opts := metric.WithAttributes(attributes...)

	if metrics.IsDistribution(key) {
		histogram, err := c.histogram(key)
		if err != nil {
			c.logger.Warn().Err(err).Str("metric", key).Msg("metric registration failed")

			return
		}

		histogram.Record(ctx, v, opts)

		return
	}

	counter, err := c.counter(key)
	if err != nil {
		c.logger.Warn().Err(err).Str("metric", key).Msg("metric registration failed")

		return
	}

	counter.Add(ctx, int64(v), opts)
}

func (c *Client) Snapshot(ctx context.Context) ([]Series, error) {
	var rm metricdata.ResourceMetrics
	if err := c.reader.Collect(ctx, &rm); err != nil {
		return nil, err
	}

	series := make([]Series, 0)

	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				s := Series{Name: m.Name, Kind: "counter"}
				for _, dp := range data.DataPoints {
					s.Count++
					s.Sum += float64(dp.Value)
				}
				series = append(series, s)

			case metricdata.Histogram[float64]:
				s := Series{Name: m.Name, Kind: "histogram"}
				for _, dp := range data.DataPoints {
					s.Count += dp.Count
					s.Sum += dp.Sum
				}
				series = append(series, s)
			}
		}
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Name < series[j].Name
	})

	return series, nil
}

func (c *Client) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		series, err := c.Snapshot(r.Context())
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":"INTERNAL_ERROR","message":"collecting metrics failed"}`))

			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"metrics": series})
	})
}

func (c *Client) Shutdown(ctx context.Context) error {
	return c.provider.Shutdown(ctx)
}

func (c *Client) counter(key string) (metric.Int64Counter, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if counter, ok := c.counters[key]; ok {
		return counter, nil
	}

	counter, err := metrics.RegisterInt64Counter(c.meter, metrics.Descriptor{Unit: "1"}, key)
	if err != nil {
		return nil, err
	}

	c.counters[key] = counter

	return counter, nil
}

func (c *Client) histogram(key string) (metric.Float64Histogram, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if histogram, ok := c.histograms[key]; ok {
		return histogram, nil
	}

	unit := "s"
	if strings.HasSuffix(key, "_bytes") {
		unit = "By"
	}

	histogram, err := metrics.RegisterFloat64Histogram(c.meter, metrics.Descriptor{Unit: unit}, key)
	if err != nil {
		return nil, err
	}

	c.histograms[key] = histogram

	return histogram, nil
}
