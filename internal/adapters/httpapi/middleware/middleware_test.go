package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tinyfox/internal/adapters/httpapi/middleware"
)

func TestRequestID_GeneratesUUID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen string

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := rec.Header().Get(middleware.RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	require.Equal(t, id, seen)
}

func TestRequestID_KeepsInbound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
}

func TestAccessLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.AccessLog(zap.New(core)))
	r.GET("/hello", func(c *gin.Context) { c.String(http.StatusTeapot, "hi") })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	req.Header.Set(middleware.RequestIDHeader, "rid-1")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	require.Equal(t, "GET", fields["method"])
	require.Equal(t, "/hello", fields["path"])
	require.EqualValues(t, http.StatusTeapot, fields["status"])
	require.EqualValues(t, 2, fields["bytes"])
	require.Equal(t, "rid-1", fields["request_id"])
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)

	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestRecovery_ReturnsProblemJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.ErrorLevel)

	r := gin.New()
	r.Use(middleware.Recovery(zap.New(core)))
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "internal_error", body["type"])
	require.Equal(t, "internal error", body["detail"])

	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestRequestTimeout_SetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var (
		deadline time.Time
		ok       bool
	)

	r := gin.New()
	r.Use(middleware.RequestTimeout(50 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		deadline, ok = c.Request.Context().Deadline()

		<-c.Request.Context().Done()
		require.ErrorIs(t, c.Request.Context().Err(), context.DeadlineExceeded)
		c.Status(http.StatusGatewayTimeout)
	})

	start := time.Now()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

	require.True(t, ok)
	require.WithinDuration(t, start.Add(50*time.Millisecond), deadline, 40*time.Millisecond)
	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestRequestTimeout_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.RequestTimeout(0))
	r.GET("/", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		require.False(t, ok)
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
