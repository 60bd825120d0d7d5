package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/jsamuelsen/quotes-api/internal/platform/telemetry"

// HeaderTraceID echoes the active trace ID back to the client.
const HeaderTraceID = "X-Trace-ID"

type httpMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

func newHTTPMetrics(meter metric.Meter) (*httpMetrics, error) {
	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	total, err := meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	active, err := meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &httpMetrics{duration: duration, total: total, active: active}, nil
}

// Middleware returns the tracing handler followed by the request metrics
// handler. Register both with engine.Use(telemetry.Middleware(name)...).
func Middleware(serviceName string) gin.HandlersChain {
	return gin.HandlersChain{
		otelgin.Middleware(serviceName),
		metricsHandler(otel.Meter(instrumentationName)),
	}
}

func metricsHandler(meter metric.Meter) gin.HandlerFunc {
	m, err := newHTTPMetrics(meter)
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		start := time.Now()
		ctx := c.Request.Context()

		if m != nil {
			inflight := metric.WithAttributes(attribute.String("http.method", c.Request.Method))
			m.active.Add(ctx, 1, inflight)
			defer m.active.Add(ctx, -1, inflight)
		}

		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.HasTraceID() {
			c.Header(HeaderTraceID, sc.TraceID().String())
		}

		c.Next()

		if m != nil {
			attrs := metric.WithAttributes(
				attribute.String("http.method", c.Request.Method),
				attribute.String("http.route", c.FullPath()),
				attribute.Int("http.status_code", c.Writer.Status()),
			)
			m.duration.Record(ctx, time.Since(start).Seconds(), attrs)
			m.total.Add(ctx, 1, attrs)
		}
	}
}
