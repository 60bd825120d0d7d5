package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-api/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func do(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestIDMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		incoming  string
		mw        func() gin.HandlerFunc
		get       func(*gin.Context) string
		wantReuse bool
	}{
		{"request id generated", HeaderRequestID, "", RequestID, GetRequestID, false},
		{"request id reused", HeaderRequestID, "req-123", RequestID, GetRequestID, true},
		{"request id with spaces replaced", HeaderRequestID, "bad id", RequestID, GetRequestID, false},
		{"request id too long replaced", HeaderRequestID, strings.Repeat("a", maxIDLength+1), RequestID, GetRequestID, false},
		{"correlation id generated", HeaderCorrelationID, "", CorrelationID, GetCorrelationID, false},
		{"correlation id reused", HeaderCorrelationID, "corr-456", CorrelationID, GetCorrelationID, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var captured string
			router := gin.New()
			router.Use(tt.mw())
			router.GET("/test", func(c *gin.Context) {
				captured = tt.get(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incoming != "" {
				req.Header.Set(tt.header, tt.incoming)
			}
			w := do(router, req)

			require.NotEmpty(t, captured)
			assert.Equal(t, captured, w.Header().Get(tt.header))
			if tt.wantReuse {
				assert.Equal(t, tt.incoming, captured)
			} else {
				assert.NotEqual(t, tt.incoming, captured)
				assert.Len(t, captured, 36)
			}
		})
	}
}

func TestGetIDs_OutsideMiddleware(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
	assert.Empty(t, GetCorrelationID(c))
}

func TestContextLogger_EnrichedByIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	router := gin.New()
	router.Use(ContextLogger(bufferLogger(&buf)), RequestID(), CorrelationID())
	router.GET("/test", func(c *gin.Context) {
		logging.FromContext(c.Request.Context()).Info("handled")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderRequestID, "req-abc")
	req.Header.Set(HeaderCorrelationID, "corr-xyz")
	do(router, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "handled", entry["msg"])
	assert.Equal(t, "req-abc", entry["request_id"])
	assert.Equal(t, "corr-xyz", entry["correlation_id"])
}

func TestLogging(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
		wantLog   bool
	}{
		{"success at info", "/api/RNGQuote", http.StatusOK, "INFO", true},
		{"client error at warn", "/api/RNGQuote/x", http.StatusNotFound, "WARN", true},
		{"server error at error", "/api/RNGQuote", http.StatusServiceUnavailable, "ERROR", true},
		{"ops path skipped", "/-/live", http.StatusOK, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			router := gin.New()
			router.Use(ContextLogger(bufferLogger(&buf)), Logging(nil))
			router.GET(tt.path, func(c *gin.Context) { c.Status(tt.status) })

			w := do(router, httptest.NewRequest(http.MethodGet, tt.path+"?entries=5", nil))
			assert.Equal(t, tt.status, w.Code)

			if !tt.wantLog {
				assert.Empty(t, buf.String())
				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "request completed", entry["msg"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.path+"?entries=5", entry["path"])
			assert.Equal(t, tt.path, entry["route"])
			assert.InDelta(t, float64(tt.status), entry["status"], 0)
		})
	}
}

func TestLogging_CustomSkipPrefixes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	router := gin.New()
	router.Use(ContextLogger(bufferLogger(&buf)), Logging([]string{"/internal"}))
	router.GET("/internal/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/-/live", func(c *gin.Context) { c.Status(http.StatusOK) })

	do(router, httptest.NewRequest(http.MethodGet, "/internal/x", nil))
	assert.Empty(t, buf.String())

	do(router, httptest.NewRequest(http.MethodGet, "/-/live", nil))
	assert.Contains(t, buf.String(), "request completed")
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	router := gin.New()
	router.Use(Recovery(), ContextLogger(bufferLogger(&buf)), RequestID())
	router.GET("/panic", func(*gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(HeaderRequestID, "req-panic")
	w := do(router, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
	assert.Equal(t, "req-panic", resp.TraceID)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestRecovery_AfterPartialWrite(t *testing.T) {
	t.Parallel()

	router := gin.New()
	router.Use(Recovery())
	router.GET("/panic", func(c *gin.Context) {
		c.String(http.StatusOK, "partial")
		panic("late")
	})

	w := do(router, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("fast handler unaffected", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Timeout(time.Second))
		router.GET("/fast", func(c *gin.Context) {
			_, ok := c.Request.Context().Deadline()
			assert.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		w := do(router, httptest.NewRequest(http.MethodGet, "/fast", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("deadline exceeded without write", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Timeout(10 * time.Millisecond))
		router.GET("/slow", func(c *gin.Context) {
			<-c.Request.Context().Done()
		})

		w := do(router, httptest.NewRequest(http.MethodGet, "/slow", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, dto.ErrorCodeTimeout, decodeError(t, w).Error.Code)
	})

	t.Run("handler already wrote", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Timeout(10 * time.Millisecond))
		router.GET("/slow", func(c *gin.Context) {
			<-c.Request.Context().Done()
			dto.HandleError(c, context.DeadlineExceeded)
		})

		w := do(router, httptest.NewRequest(http.MethodGet, "/slow", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, 1, strings.Count(w.Body.String(), `"error"`))
	})

	t.Run("zero disables", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(Timeout(0))
		router.GET("/x", func(c *gin.Context) {
			_, ok := c.Request.Context().Deadline()
			assert.False(t, ok)
			c.Status(http.StatusNoContent)
		})

		w := do(router, httptest.NewRequest(http.MethodGet, "/x", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
