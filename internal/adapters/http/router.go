package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotes-api/internal/platform/telemetry"
)

// APIPrefix is the group every business route lives under.
const APIPrefix = "/api"

// RouterConfig contains what SetupRouter needs to build the route tree.
type RouterConfig struct {
	Logger *slog.Logger

	// ServiceName names the otelgin server spans.
	ServiceName string

	HealthHandler *handlers.HealthHandler
	QuoteHandler  *handlers.QuoteHandler

	// Timeout bounds each /api request. Zero disables it.
	Timeout time.Duration

	// Tracing toggles the otelgin and request metrics middleware.
	Tracing bool
}

// SetupRouter installs middleware and routes on engine.
//
// Global middleware runs in this order:
//  1. Recovery
//  2. ContextLogger
//  3. RequestID and CorrelationID
//  4. OpenTelemetry, when enabled
//  5. Logging, which skips /-/ paths
//
// Ops endpoints live under /-/ with no deadline; quote routes live under
// /api and get the request timeout.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	engine.HandleMethodNotAllowed = true

	engine.Use(
		middleware.Recovery(),
		middleware.ContextLogger(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	if cfg.Tracing {
		engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	}
	engine.Use(middleware.Logging(nil))

	engine.NoRoute(notFound)
	engine.NoMethod(methodNotAllowed)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group(APIPrefix)
	api.Use(middleware.Timeout(cfg.Timeout))

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}
}
