package config

import (
	"fmt"
	"slices"
	"time"
)

// Compile time variables are set by -ldflags.
var (
	ServiceVersion string
	CommitSHA      string
)

const (
	Development = 1 << iota
	Sandbox
	Staging
	Production
)

const (
	PagingModeServer = "server"
	PagingModeLegacy = "legacy"
)

type (
	ServiceConfig struct {
		App                   App                   `json:"app"`
		PublicHTTPServer      PublicHTTPServer      `json:"public_http_server"`
		AdminHTTPServer       AdminHTTPServer       `json:"admin_http_server"`
		RoomsAPI              RoomsAPI              `json:"rooms_api"`
		Backoff               Backoff               `json:"backoff"`
		Console               Console               `json:"console"`
		Sessions              Sessions              `json:"sessions"`
		ThrottledRateLimiting ThrottledRateLimiting `json:"throttled_rate_limiting"`
		Logging               Logging               `json:"logging"`
		Telemetry             Telemetry             `json:"telemetry"`
	}

	App struct {
		ServiceName string      `envconfig:"APP_SERVICE_NAME" default:"svc-rooms-console" json:"service_name"`
		APIVersion  string      `envconfig:"APP_API_VERSION" default:"v1" json:"api_version"`
		Env         Environment `json:"environment"`
	}

	Environment struct {
		Name string `envconfig:"APP_ENVIRONMENT" default:"development" json:"env"`
	}

	PublicHTTPServer struct {
		Host            string        `envconfig:"HTTP_SERVER_HOST" default:"0.0.0.0" json:"host"`
		Port            uint          `envconfig:"HTTP_SERVER_PORT" default:"8080" json:"port"`
		ReadTimeout     time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"15s" json:"read_timeout"`
		WriteTimeout    time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"30s" json:"write_timeout"`
		IdleTimeout     time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"60s" json:"idle_timeout"`
		ShutdownTimeout time.Duration `envconfig:"HTTP_SHUTDOWN_TIMEOUT" default:"30s" json:"shutdown_timeout"`
	}

	AdminHTTPServer struct {
		Enabled         bool          `envconfig:"ADMIN_HTTP_SERVER_ENABLED" default:"true" json:"enabled"`
		Host            string        `envconfig:"ADMIN_HTTP_SERVER_HOST" default:"127.0.0.1" json:"host"`
		Port            uint          `envconfig:"ADMIN_HTTP_SERVER_PORT" default:"8081" json:"port"`
		ReadTimeout     time.Duration `envconfig:"ADMIN_HTTP_READ_TIMEOUT" default:"15s" json:"read_timeout"`
		WriteTimeout    time.Duration `envconfig:"ADMIN_HTTP_WRITE_TIMEOUT" default:"15s" json:"write_timeout"`
		IdleTimeout     time.Duration `envconfig:"ADMIN_HTTP_IDLE_TIMEOUT" default:"60s" json:"idle_timeout"`
		ShutdownTimeout time.Duration `envconfig:"ADMIN_HTTP_SHUTDOWN_TIMEOUT" default:"30s" json:"shutdown_timeout"`
	}

	RoomsAPI struct {
		BaseURL        string               `envconfig:"ROOMS_API_BASE_URL" default:"http://localhost:4000/api" json:"base_url"`
		Token          string               `envconfig:"ROOMS_API_TOKEN" default:"" json:"token,omitempty"`
		Timeout        time.Duration        `envconfig:"ROOMS_API_TIMEOUT" default:"10s" json:"timeout"`
		MaxRetries     uint                 `envconfig:"ROOMS_API_MAX_RETRIES" default:"2" json:"max_retries"`
		CircuitBreaker CircuitBreakerConfig `json:"circuit_breaker"`
	}

	CircuitBreakerConfig struct {
		Enabled          bool          `envconfig:"ROOMS_API_CB_ENABLED" default:"true" json:"enabled"`
		MaxRequests      uint          `envconfig:"ROOMS_API_CB_MAX_REQUESTS" default:"3" json:"max_requests"`
		Interval         time.Duration `envconfig:"ROOMS_API_CB_INTERVAL" default:"60s" json:"interval"`
		Timeout          time.Duration `envconfig:"ROOMS_API_CB_TIMEOUT" default:"30s" json:"timeout"`
		FailureThreshold uint          `envconfig:"ROOMS_API_CB_FAILURE_THRESHOLD" default:"5" json:"failure_threshold"`
	}

	Backoff struct {
		BaseDelay  time.Duration `envconfig:"BACKOFF_BASE_DELAY" default:"200ms" json:"base_delay"`
		Multiplier float64       `envconfig:"BACKOFF_MULTIPLIER" default:"1.5" json:"multiplier"`
		Jitter     float64       `envconfig:"BACKOFF_JITTER" default:"0.3" json:"jitter"`
		MaxDelay   time.Duration `envconfig:"BACKOFF_MAX_DELAY" default:"2s" json:"max_delay"`
	}

	Console struct {
		RowsPerPageOptions []uint `envconfig:"CONSOLE_ROWS_PER_PAGE_OPTIONS" default:"5,10,15" json:"rows_per_page_options"`
		DefaultRowsPerPage uint   `envconfig:"CONSOLE_DEFAULT_ROWS_PER_PAGE" default:"5" json:"default_rows_per_page"`
		// PagingMode is "server" or "legacy"; legacy slices the returned page again client side.
		PagingMode     string `envconfig:"CONSOLE_PAGING_MODE" default:"server" json:"paging_mode"`
		AddRoomPath    string `envconfig:"CONSOLE_ADD_ROOM_PATH" default:"/dashboard/roomsdata" json:"add_room_path"`
		EditPathPrefix string `envconfig:"CONSOLE_EDIT_PATH_PREFIX" default:"/dashboard/roomsedit" json:"edit_path_prefix"`
		ToastCapacity  uint   `envconfig:"CONSOLE_TOAST_CAPACITY" default:"16" json:"toast_capacity"`
	}

	Sessions struct {
		CookieName      string        `envconfig:"SESSIONS_COOKIE_NAME" default:"rooms_console_session" json:"cookie_name"`
		CookieSecure    bool          `envconfig:"SESSIONS_COOKIE_SECURE" default:"false" json:"cookie_secure"`
		IdleTTL         time.Duration `envconfig:"SESSIONS_IDLE_TTL" default:"30m" json:"idle_ttl"`
		JanitorInterval time.Duration `envconfig:"SESSIONS_JANITOR_INTERVAL" default:"1m" json:"janitor_interval"`
		MaxSessions     uint          `envconfig:"SESSIONS_MAX" default:"1000" json:"max_sessions"`
	}

	ThrottledRateLimiting struct {
		Enabled           bool     `envconfig:"RATE_LIMITING_ENABLED" default:"true" json:"enabled"`
		RequestsPerSecond uint     `envconfig:"RATE_LIMITING_REQUESTS_PER_SECOND" default:"10" json:"requests_per_second"`
		BurstSize         uint     `envconfig:"RATE_LIMITING_BURST_SIZE" default:"20" json:"burst_size"`
		MaxKeys           uint     `envconfig:"RATE_LIMITING_MAX_KEYS" default:"1000" json:"max_keys"`
		SkipPaths         []string `envconfig:"RATE_LIMITING_SKIP_PATHS" default:"/v1/liveness,/v1/readiness" json:"skip_paths"`
		GracefulDegraded  bool     `envconfig:"RATE_LIMITING_GRACEFUL_DEGRADED" default:"true" json:"graceful_degraded"`
	}

	Logging struct {
		Level     string    `envconfig:"LOG_LEVEL" default:"info" json:"level"`
		Format    string    `envconfig:"LOG_FORMAT" default:"json" json:"format"`
		AccessLog AccessLog `json:"access_log"`
	}

	AccessLog struct {
		Enabled            bool `envconfig:"ACCESS_LOG_ENABLED" default:"true" json:"enabled"`
		LogHealthChecks    bool `envconfig:"ACCESS_LOG_HEALTH_CHECKS" default:"false" json:"log_health_checks"`
		IncludeQueryParams bool `envconfig:"ACCESS_LOG_INCLUDE_QUERY_PARAMS" default:"true" json:"include_query_params"`
	}

	Telemetry struct {
		Enabled      bool   `envconfig:"OTEL_ENABLED" default:"false" json:"enabled"`
		ExporterType string `envconfig:"OTEL_EXPORTER" default:"grpc" json:"exporter_type"`

		OtelGRPCHost string `envconfig:"OTEL_HOST" json:"otel_grpc_host"`
		OtelGRPCPort string `envconfig:"OTEL_PORT" default:"4317" json:"otel_grpc_port"`

		Metrics Metrics `json:"metrics"`
		Traces  Traces  `json:"traces"`
	}

	Metrics struct {
		Enabled bool `envconfig:"METRICS_ENABLED" default:"true" json:"enabled"`
	}

	Traces struct {
		Enabled      bool    `envconfig:"TRACES_ENABLED" default:"false" json:"enabled"`
		SamplerRatio float64 `envconfig:"TRACES_SAMPLER_RATIO" default:"1.0" json:"sampler_ratio"`
	}
)

func (c *ServiceConfig) GetEnvironment() int {
	switch c.App.Env.Name {
	case "production", "prod":
		return Production
	case "staging", "stg":
		return Staging
	case "sandbox", "sbx":
		return Sandbox
	default:
		return Development
	}
}

func (c *ServiceConfig) IsProduction() bool {
	return c.GetEnvironment() == Production
}

func (c *ServiceConfig) Validate() error {
	if err := c.Console.Validate(); err != nil {
		return fmt.Errorf("console: %w", err)
	}

	if c.RoomsAPI.BaseURL == "" {
		return fmt.Errorf("rooms api: base url must not be empty")
	}

	if c.Sessions.IdleTTL <= 0 {
		return fmt.Errorf("sessions: idle ttl must be positive, got %s", c.Sessions.IdleTTL)
	}

	return nil
}

func (c *Console) Validate() error {
	if len(c.RowsPerPageOptions) == 0 {
		return fmt.Errorf("rows per page options must not be empty")
	}

	if slices.Contains(c.RowsPerPageOptions, 0) {
		return fmt.Errorf("rows per page options must be positive")
	}

	if !slices.Contains(c.RowsPerPageOptions, c.DefaultRowsPerPage) {
		return fmt.Errorf("default rows per page %d is not one of %v", c.DefaultRowsPerPage, c.RowsPerPageOptions)
	}

	switch c.PagingMode {
	case PagingModeServer, PagingModeLegacy:
	default:
		return fmt.Errorf("unsupported paging mode %q", c.PagingMode)
	}

	return nil
}
