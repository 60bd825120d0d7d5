package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotes-api/internal/app"
	"github.com/jsamuelsen/quotes-api/internal/domain"
	"github.com/jsamuelsen/quotes-api/internal/mocks"
	"github.com/jsamuelsen/quotes-api/internal/platform/config"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testServerConfig() *config.ServerConfig {
	return &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            0,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		RequestTimeout:  time.Second,
		MaxRequestSize:  1 << 20,
	}
}

type routerFixture struct {
	store  *mocks.MockQuoteStore
	engine *gin.Engine
}

func newRouterFixture(t *testing.T, timeout time.Duration) *routerFixture {
	t.Helper()

	store := mocks.NewMockQuoteStore(t)
	service := app.NewQuoteService(app.QuoteServiceConfig{
		Store:       store,
		Random:      mocks.NewMockRandomSource(t),
		Logger:      discardLogger(),
		MaxPageSize: domain.MaxPageSize,
	})

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(ports.HealthCheckFunc{
		CheckName: "mysql",
		Fn:        func(context.Context) error { return nil },
	}))

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		Logger:        discardLogger(),
		ServiceName:   "quotes-api",
		HealthHandler: handlers.NewHealthHandler(registry, handlers.NewBuildInfo("1.0.0", "abc", ""), nil),
		QuoteHandler:  handlers.NewQuoteHandler(service, domain.DefaultPageSize),
		Timeout:       timeout,
	})

	return &routerFixture{store: store, engine: engine}
}

func (f *routerFixture) do(method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSetupRouter_QuoteRoutes(t *testing.T) {
	f := newRouterFixture(t, time.Second)
	f.store.EXPECT().Count(mock.Anything).Return(uint64(42), nil)

	w := f.do(http.MethodGet, "/api/RNGQuote/QuotesCount")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", strings.TrimSpace(w.Body.String()))
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderCorrelationID))
}

func TestSetupRouter_OpsRoutes(t *testing.T) {
	f := newRouterFixture(t, time.Second)

	for _, path := range []string{"/-/live", "/-/ready", "/-/build", "/-/metrics"} {
		t.Run(path, func(t *testing.T) {
			w := f.do(http.MethodGet, path)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestSetupRouter_NoRoute(t *testing.T) {
	f := newRouterFixture(t, time.Second)

	w := f.do(http.MethodGet, "/api/Nope")

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decode(t, w)
	assert.Equal(t, dto.ErrorCodeNotFound, resp.Error.Code)
	assert.Equal(t, w.Header().Get(middleware.HeaderRequestID), resp.TraceID)
}

func TestSetupRouter_NoMethod(t *testing.T) {
	f := newRouterFixture(t, time.Second)

	w := f.do(http.MethodPost, "/api/RNGQuote/QuotesCount")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, dto.ErrorCodeMethodNotAllowed, decode(t, w).Error.Code)
}

func TestSetupRouter_StoreTimeout(t *testing.T) {
	f := newRouterFixture(t, 20*time.Millisecond)
	f.store.EXPECT().Count(mock.Anything).RunAndReturn(func(ctx context.Context) (uint64, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})

	w := f.do(http.MethodGet, "/api/RNGQuote/QuotesCount")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, dto.ErrorCodeTimeout, decode(t, w).Error.Code)
}

func TestSetupRouter_StoreUnavailable(t *testing.T) {
	f := newRouterFixture(t, time.Second)
	f.store.EXPECT().Count(mock.Anything).
		Return(uint64(0), domain.NewUnavailableError("mysql", "connection refused"))

	w := f.do(http.MethodGet, "/api/RNGQuote/all/PageCount")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, dto.ErrorCodeUnavailable, decode(t, w).Error.Code)
}

func TestSetupRouter_NilHandlers(t *testing.T) {
	engine := gin.New()
	SetupRouter(engine, RouterConfig{})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetupRouter_LogsRequests(t *testing.T) {
	var buf bytes.Buffer
	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		Logger: slog.New(slog.NewJSONHandler(&buf, nil)),
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, buf.String(), `"msg":"request completed"`)
	assert.Contains(t, buf.String(), `"request_id"`)
}

func TestServer_Addr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"127.0.0.1", 8080, "127.0.0.1:8080"},
		{"0.0.0.0", 80, "0.0.0.0:80"},
		{"::1", 9000, "[::1]:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			cfg := testServerConfig()
			cfg.Host, cfg.Port = tt.host, tt.port

			assert.Equal(t, tt.want, New(cfg, discardLogger()).Addr())
		})
	}
}

func TestServer_Handler(t *testing.T) {
	srv := New(testServerConfig(), discardLogger())
	srv.Engine().GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestServer_StartShutdown(t *testing.T) {
	srv := New(testServerConfig(), discardLogger())
	errCh := srv.Start()

	time.Sleep(50 * time.Millisecond)
	select {
	case err := <-errCh:
		require.NoError(t, err)
	default:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	_, ok := <-errCh
	assert.False(t, ok, "error channel should be closed")
}

func TestServer_StartListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	cfg := testServerConfig()
	cfg.Port = ln.Addr().(*net.TCPAddr).Port

	err = <-New(cfg, discardLogger()).Start()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server error")
}

func TestServer_MaxBodySize(t *testing.T) {
	cfg := testServerConfig()
	cfg.MaxRequestSize = 16

	srv := New(cfg, discardLogger())
	srv.Engine().POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.String(http.StatusOK, string(body))
	})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"under limit", "short", http.StatusOK},
		{"over limit", strings.Repeat("x", 64), http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
