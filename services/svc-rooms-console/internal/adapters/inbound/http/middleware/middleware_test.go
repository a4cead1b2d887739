package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/adapters/feedback"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/config"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/console"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/throttled/throttled/v2/store/memstore"
	"go.opentelemetry.io/otel/attribute"
)

const cookieName = "rooms_console_session"

type (
	SecurityHeadersTestSuite struct {
		suite.Suite
	}

	RateLimitingTestSuite struct {
		suite.Suite
		log    logger.Logger
		config config.ThrottledRateLimiting
	}

	labelRecorder struct {
		mu     sync.Mutex
		labels map[string][]attribute.KeyValue
	}
)

func (m *labelRecorder) Inc(_ context.Context, key string, _ any, attrs ...attribute.KeyValue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.labels == nil {
		m.labels = make(map[string][]attribute.KeyValue)
	}

	m.labels[key] = attrs
}

func (m *labelRecorder) Handler() http.Handler          { return http.NotFoundHandler() }
func (m *labelRecorder) Shutdown(context.Context) error { return nil }

func (m *labelRecorder) label(key, name string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, kv := range m.labels[key] {
		if string(kv.Key) == name {
			return kv.Value.AsString()
		}
	}

	return ""
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func newRegistry() *console.Sessions {
	log := logger.NewTestLogger()

	return console.NewSessions(func(string) (*console.RoomsList, console.ToastQueue) {
		return console.NewRoomsList(console.Deps{Logger: log}, console.DefaultOptions()), feedback.NewToaster(4, nil, log)
	}, console.SessionsConfig{IdleTTL: time.Minute, MaxSessions: 10}, log)
}

func TestSecurityHeadersTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SecurityHeadersTestSuite))
}

func (s *SecurityHeadersTestSuite) TestSecurityHeaders() {
	s.T().Parallel()

	rec := httptest.NewRecorder()
	middleware.SecurityHeaders()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))

	cases := []struct {
		header   string
		expected string
	}{
		{header: "X-Content-Type-Options", expected: "nosniff"},
		{header: "X-Frame-Options", expected: "DENY"},
		{header: "Referrer-Policy", expected: "strict-origin-when-cross-origin"},
	}

	for _, tc := range cases {
		s.Run(tc.header, func() {
			s.Require().Equal(tc.expected, rec.Header().Get(tc.header))
		})
	}

	s.Require().Contains(rec.Header().Get("Content-Security-Policy"), "img-src 'self' https:")
}

func TestRequestTracking(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		requestID     string
		correlationID string
	}{
		{name: "mints ids when absent"},
		{name: "keeps caller ids", requestID: "req-1", correlationID: "corr-1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var seenRequestID, seenCorrelationID string

			handler := middleware.RequestTracking()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seenRequestID = middleware.GetRequestID(r.Context())
				seenCorrelationID = middleware.GetCorrelationID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
			if tc.requestID != "" {
				req.Header.Set(middleware.RequestIDHeader, tc.requestID)
				req.Header.Set(middleware.CorrelationIDHeader, tc.correlationID)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.NotEmpty(t, seenRequestID)
			require.NotEmpty(t, seenCorrelationID)
			require.Equal(t, seenRequestID, rec.Header().Get(middleware.RequestIDHeader))
			require.Equal(t, seenCorrelationID, rec.Header().Get(middleware.CorrelationIDHeader))

			if tc.requestID != "" {
				require.Equal(t, tc.requestID, seenRequestID)
				require.Equal(t, tc.correlationID, seenCorrelationID)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := middleware.Recovery(logger.NewBufferedTestLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rooms/reload", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"code":"INTERNAL_ERROR","message":"internal server error"}`, rec.Body.String())
	require.Contains(t, buf.String(), "panic recovered")
}

func TestAccessLogger_HealthFilter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name            string
		path            string
		logHealthChecks bool
		expectLogged    bool
	}{
		{name: "console request is logged", path: "/rooms", expectLogged: true},
		{name: "probe is skipped", path: "/v1/liveness", expectLogged: false},
		{name: "probe is logged when enabled", path: "/v1/readiness", logHealthChecks: true, expectLogged: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			filter := middleware.NewHealthCheckFilter(tc.logHealthChecks)
			handler := filter.Middleware(middleware.AccessLogger(logger.NewBufferedTestLogger(&buf), true)(okHandler()))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.path+"?x=1", nil))

			if !tc.expectLogged {
				require.Zero(t, buf.Len())

				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			require.Equal(t, tc.path, entry["path"])
			require.Equal(t, "x=1", entry["query"])
			require.EqualValues(t, http.StatusOK, entry["status"])
		})
	}
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	t.Parallel()

	recorder := &labelRecorder{}

	router := chi.NewRouter()
	router.Use(middleware.NewMetricsMiddleware(recorder).Middleware)
	router.Post("/rooms/{roomID}/menu", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/rooms/abc123/menu", nil))

	require.Equal(t, "/rooms/{roomID}/menu", recorder.label("http_requests_total", "http.route"))
	require.Equal(t, "204", recorder.label("http_requests_total", "http.status_code"))
	require.Equal(t, http.MethodPost, recorder.label("http_request_duration_seconds", "http.method"))
}

func TestSessions_IssuesAndReusesCookie(t *testing.T) {
	t.Parallel()

	registry := newRegistry()
	cfg := config.Sessions{CookieName: cookieName}

	var seen []string

	handler := middleware.Sessions(registry, cfg, "/rooms")(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		session := middleware.SessionFromContext(r.Context())
		require.NotNil(t, session)
		require.Equal(t, session.ID, r.Context().Value(logger.ContextKeySessionID))
		seen = append(seen, session.ID)
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/rooms", nil))

	cookies := first.Result().Cookies()
	require.Len(t, cookies, 1)
	require.True(t, cookies[0].HttpOnly)
	require.Equal(t, seen[0], cookies[0].Value)

	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	req.AddCookie(cookies[0])
	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)

	require.Empty(t, second.Result().Cookies())
	require.Equal(t, seen[0], seen[1])

	forged := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	forged.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: "not-a-session"})
	third := httptest.NewRecorder()
	handler.ServeHTTP(third, forged)

	require.Len(t, third.Result().Cookies(), 1)
	require.NotEqual(t, "not-a-session", seen[2])
	require.Equal(t, 2, registry.Len())
}

func TestSessions_MutationsNeverCreateSessions(t *testing.T) {
	t.Parallel()

	registry := newRegistry()
	cfg := config.Sessions{CookieName: cookieName}

	called := false
	handler := middleware.Sessions(registry, cfg, "/rooms")(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	cases := []struct {
		name     string
		accept   string
		cookie   string
		expected int
	}{
		{name: "browser without cookie is sent to landing", expected: http.StatusSeeOther},
		{name: "browser with expired cookie is sent to landing", cookie: "gone", expected: http.StatusSeeOther},
		{name: "json client without cookie is refused", accept: "application/json", expected: http.StatusForbidden},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/rooms/reload", nil)
		if tc.accept != "" {
			req.Header.Set("Accept", tc.accept)
		}

		if tc.cookie != "" {
			req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: tc.cookie})
		}

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, tc.expected, rec.Code, tc.name)
		require.Empty(t, rec.Result().Cookies(), tc.name)

		if tc.expected == http.StatusSeeOther {
			require.Equal(t, "/rooms", rec.Header().Get("Location"), tc.name)
		} else {
			require.Contains(t, rec.Body.String(), "NO_SESSION", tc.name)
		}
	}

	require.False(t, called)
	require.Zero(t, registry.Len())
}

func TestRateLimitingTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RateLimitingTestSuite))
}

func (s *RateLimitingTestSuite) SetupTest() {
	s.log = logger.NewTestLogger()
	s.config = config.ThrottledRateLimiting{
		Enabled:           true,
		RequestsPerSecond: 1,
		BurstSize:         0,
		MaxKeys:           100,
		SkipPaths:         []string{"/v1/liveness"},
		GracefulDegraded:  true,
	}
}

func (s *RateLimitingTestSuite) newHandler(registry *console.Sessions) http.Handler {
	store, err := memstore.NewCtx(100)
	s.Require().NoError(err)

	limit, err := middleware.ThrottledRateLimiting(s.config, store, middleware.SessionRateLimitKey(registry, cookieName), s.log)
	s.Require().NoError(err)

	return limit(okHandler())
}

func (s *RateLimitingTestSuite) serve(handler http.Handler, method, path, addr, session string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = addr

	if session != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: session})
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func (s *RateLimitingTestSuite) TestBlocksMutationsOverLimit() {
	registry := newRegistry()
	session, _ := registry.GetOrCreate("")
	handler := s.newHandler(registry)

	codes := make([]int, 0, 2)
	for range 2 {
		rec := s.serve(handler, http.MethodPost, "/rooms/reload", "192.168.1.1:12345", session.ID)
		codes = append(codes, rec.Code)

		if rec.Code == http.StatusTooManyRequests {
			s.Require().NotEmpty(rec.Header().Get(middleware.RetryAfterHeader))
			s.Require().True(strings.Contains(rec.Body.String(), "RATE_LIMIT_EXCEEDED"))
		}
	}

	s.Require().Equal([]int{http.StatusOK, http.StatusTooManyRequests}, codes)
}

func (s *RateLimitingTestSuite) TestSafeMethodsOfKnownSessionsAndSkippedPathsPass() {
	registry := newRegistry()
	session, _ := registry.GetOrCreate("")
	handler := s.newHandler(registry)

	for range 3 {
		rec := s.serve(handler, http.MethodGet, "/rooms", "192.168.1.1:12345", session.ID)
		s.Require().Equal(http.StatusOK, rec.Code)

		rec = s.serve(handler, http.MethodPost, "/v1/liveness", "192.168.1.1:12345", "")
		s.Require().Equal(http.StatusOK, rec.Code)
	}
}

func (s *RateLimitingTestSuite) TestCallersWithoutSessionShareTheirAddressBucket() {
	handler := s.newHandler(newRegistry())

	s.Require().Equal(http.StatusOK, s.serve(handler, http.MethodGet, "/rooms", "10.0.0.1:1000", "").Code)
	s.Require().Equal(http.StatusTooManyRequests, s.serve(handler, http.MethodGet, "/rooms", "10.0.0.1:1001", "").Code)
	s.Require().Equal(http.StatusTooManyRequests, s.serve(handler, http.MethodPost, "/rooms/reload", "10.0.0.1:1002", "forged").Code)
	s.Require().Equal(http.StatusOK, s.serve(handler, http.MethodGet, "/rooms", "10.0.0.2:1000", "").Code)
}

func (s *RateLimitingTestSuite) TestSessionsAreLimitedSeparately() {
	registry := newRegistry()
	handler := s.newHandler(registry)

	for range 2 {
		session, _ := registry.GetOrCreate("")

		rec := s.serve(handler, http.MethodPost, "/rooms/reload", "192.168.1.1:12345", session.ID)
		s.Require().Equal(http.StatusOK, rec.Code)
	}
}
