package rooms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/architeacher/rooms-console/pkg/circuitbreaker"
	"github.com/architeacher/rooms-console/pkg/idempotency"
	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/pkg/metrics"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/config"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/domain/model"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/ports"
	"github.com/cenkalti/backoff/v5"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const (
	roomsAPIName = "rooms-api"
	roomsPath    = "/admin/rooms"

	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"
)

type (
	// Client talks to the rooms REST backend. Every call goes through the
	// circuit breaker, and inside it a bounded retry for transient failures.
	Client struct {
		http          *resty.Client
		cb            *circuitbreaker.CircuitBreaker[*resty.Response]
		backoff       config.Backoff
		maxRetries    uint
		logger        logger.Logger
		metricsClient metrics.Client
	}

	Option func(*Client)

	listRoomsEnvelope struct {
		Data struct {
			Rooms      []model.Room `json:"rooms"`
			TotalCount *uint        `json:"totalCount"`
			Total      *uint        `json:"total"`
			Pagination *struct {
				TotalItems *uint `json:"totalItems"`
			} `json:"pagination"`
		} `json:"data"`
	}
)

var (
	_ ports.RoomsService    = (*Client)(nil)
	_ ports.DependencyProbe = (*Client)(nil)
)

// WithHTTPClient replaces the underlying transport client, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = resty.NewWithClient(httpClient)
	}
}

// WithCircuitBreaker allows injecting a custom circuit breaker for testing.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker[*resty.Response]) Option {
	return func(c *Client) {
		c.cb = cb
	}
}

func WithMetrics(metricsClient metrics.Client) Option {
	return func(c *Client) {
		c.metricsClient = metricsClient
	}
}

func NewClient(cfg *config.ServiceConfig, log logger.Logger, opts ...Option) *Client {
	client := &Client{
		backoff:    cfg.Backoff,
		maxRetries: cfg.RoomsAPI.MaxRetries,
		logger:     log.Component(roomsAPIName),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.http == nil {
		client.http = resty.NewWithClient(&http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		})
	}

	client.http.
		SetBaseURL(cfg.RoomsAPI.BaseURL).
		SetTimeout(cfg.RoomsAPI.Timeout).
		SetHeader("Accept", "application/json").
		SetError(&errorBody{}).
		OnBeforeRequest(propagateIDs)

	if cfg.RoomsAPI.Token != "" {
		client.http.SetAuthToken(cfg.RoomsAPI.Token)
	}

	if client.cb == nil {
		breakerCfg := cfg.RoomsAPI.CircuitBreaker
		client.cb = circuitbreaker.New[*resty.Response](
			circuitbreaker.Config{
				Name:             roomsAPIName,
				Enabled:          breakerCfg.Enabled,
				MaxRequests:      breakerCfg.MaxRequests,
				Interval:         breakerCfg.Interval,
				Timeout:          breakerCfg.Timeout,
				FailureThreshold: breakerCfg.FailureThreshold,
			},
			circuitbreaker.WithSuccessClassifier(countsAsSuccess),
			circuitbreaker.WithStateChangeHook(client.onStateChange),
		)
	}

	return client
}

func (c *Client) ListRooms(ctx context.Context, req model.PageRequest) (*model.RoomPage, error) {
	resp, err := c.execute(ctx, http.MethodGet, func() (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			SetQueryParam("page", strconv.FormatUint(uint64(req.APIPage()), 10)).
			SetQueryParam("size", strconv.FormatUint(uint64(req.Size), 10)).
			SetResult(&listRoomsEnvelope{}).
			Get(roomsPath)
	})
	if err != nil {
		return nil, fmt.Errorf("listing rooms page %d: %w", req.APIPage(), err)
	}

	envelope, ok := resp.Result().(*listRoomsEnvelope)
	if !ok || envelope == nil {
		return nil, fmt.Errorf("listing rooms page %d: unexpected response body", req.APIPage())
	}

	page := &model.RoomPage{
		Rooms:      envelope.Data.Rooms,
		TotalCount: envelope.total(),
	}

	if page.Rooms == nil {
		page.Rooms = []model.Room{}
	}

	return page, nil
}

func (c *Client) DeleteRoom(ctx context.Context, id model.RoomID, idempotencyKey string) error {
	if id.IsZero() {
		return model.ErrInvalidRoomID
	}

	if idempotencyKey == "" {
		ctx, idempotencyKey = idempotency.Ensure(ctx)
	}

	_, err := c.execute(ctx, http.MethodDelete, func() (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			SetHeader(idempotency.HeaderName, idempotencyKey).
			SetPathParam("roomID", id.String()).
			Delete(roomsPath + "/{roomID}")
	})
	if err != nil {
		return fmt.Errorf("deleting room %s: %w", id, err)
	}

	return nil
}

// ErrorMessage implements ports.ErrorMessageExtractor.
func (c *Client) ErrorMessage(err error) string {
	return ErrorMessage(err)
}

func (c *Client) Name() string {
	return roomsAPIName
}

// Probe reports the breaker state without calling the backend.
func (c *Client) Probe(_ context.Context) model.DependencyCheck {
	check := model.DependencyCheck{
		Status:      model.DependencyStatusUp,
		Message:     "circuit " + c.cb.State(),
		LastChecked: time.Now().UTC(),
	}

	switch c.cb.State() {
	case circuitbreaker.StateOpen:
		check.Status = model.DependencyStatusDown
	case circuitbreaker.StateHalfOpen:
		check.Status = model.DependencyStatusDegraded
	}

	return check
}

func (c *Client) execute(ctx context.Context, method string, call func() (*resty.Response, error)) (*resty.Response, error) {
	start := time.Now()

	resp, err := circuitbreaker.Execute(c.cb, func() (*resty.Response, error) {
		return c.retry(ctx, call)
	})

	c.record(ctx, method, time.Since(start), err)

	if err != nil {
		return nil, mapAPIError(err)
	}

	return resp, nil
}

func (c *Client) retry(ctx context.Context, call func() (*resty.Response, error)) (*resty.Response, error) {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = c.backoff.BaseDelay
	expBackoff.Multiplier = c.backoff.Multiplier
	expBackoff.RandomizationFactor = c.backoff.Jitter
	expBackoff.MaxInterval = c.backoff.MaxDelay

	attempt := 0
	operation := func() (*resty.Response, error) {
		attempt++

		resp, err := call()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, backoff.Permanent(ctxErr)
			}

			c.logger.WithContext(ctx).Debug().Err(err).Int("attempt", attempt).Msg("rooms api call failed")

			return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
		}

		if !resp.IsError() {
			return resp, nil
		}

		apiErr := toAPIError(resp)
		if !apiErr.Temporary() {
			return nil, backoff.Permanent(apiErr)
		}

		c.logger.WithContext(ctx).Debug().
			Int("status", apiErr.StatusCode).
			Int("attempt", attempt).
			Msg("rooms api answered with a transient error")

		if seconds, convErr := strconv.Atoi(resp.Header().Get("Retry-After")); convErr == nil && seconds > 0 {
			return nil, errors.Join(apiErr, backoff.RetryAfter(seconds))
		}

		return nil, apiErr
	}

	return backoff.Retry(
		ctx,
		operation,
		backoff.WithMaxTries(c.maxRetries+1),
		backoff.WithBackOff(expBackoff),
	)
}

func (c *Client) record(ctx context.Context, method string, took time.Duration, err error) {
	if c.metricsClient == nil {
		return
	}

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	attrs := []attribute.KeyValue{
		attribute.String("http.method", method),
		attribute.String("outcome", outcome),
	}

	c.metricsClient.Inc(ctx, "rooms_api.requests", 1, attrs...)
	c.metricsClient.Inc(ctx, "rooms_api.request.duration", took.Seconds(), attrs...)
}

func (c *Client) onStateChange(name, from, to string) {
	c.logger.Warn().
		Str("breaker", name).
		Str("from", from).
		Str("to", to).
		Msg("circuit breaker changed state")

	if c.metricsClient != nil {
		c.metricsClient.Inc(context.Background(), "rooms_api.circuit_breaker.transitions", 1,
			attribute.String("to", to))
	}
}

func (e *listRoomsEnvelope) total() *uint {
	switch {
	case e.Data.TotalCount != nil:
		return e.Data.TotalCount
	case e.Data.Total != nil:
		return e.Data.Total
	case e.Data.Pagination != nil:
		return e.Data.Pagination.TotalItems
	default:
		return nil
	}
}

func toAPIError(resp *resty.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode()}

	if body, ok := resp.Error().(*errorBody); ok {
		apiErr.Message = body.text()
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}

	return apiErr
}

func propagateIDs(_ *resty.Client, req *resty.Request) error {
	ctx := req.Context()

	if requestID, ok := ctx.Value(logger.ContextKeyRequestID).(string); ok && requestID != "" {
		req.SetHeader(headerRequestID, requestID)
	}

	if correlationID, ok := ctx.Value(logger.ContextKeyCorrelationID).(string); ok && correlationID != "" {
		req.SetHeader(headerCorrelationID, correlationID)
	}

	return nil
}
