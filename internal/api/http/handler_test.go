package apiHttp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibe-gaming/geo-api/internal/config"
	"github.com/vibe-gaming/geo-api/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{
		Limiter: config.Limiter{RPS: 1000, Burst: 1000, TTL: time.Minute},
		Auth:    config.AuthConfig{APIToken: "token"},
	}
}

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestHealth(t *testing.T) {
	var shuttingDown atomic.Bool
	ok := func(context.Context) error { return nil }

	router := NewHandlers(&service.Services{}, map[string]HealthCheck{"postgres": ok, "redis": ok}, &shuttingDown).Init(testConfig())
	w := serve(router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","checks":{"postgres":"ok","redis":"ok"}}`, w.Body.String())

	failing := func(context.Context) error { return errors.New("connection refused") }
	router = NewHandlers(&service.Services{}, map[string]HealthCheck{"postgres": ok, "redis": failing}, &shuttingDown).Init(testConfig())
	w = serve(router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unhealthy","checks":{"postgres":"ok","redis":"connection refused"}}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	var shuttingDown atomic.Bool
	router := NewHandlers(&service.Services{}, nil, &shuttingDown).Init(testConfig())

	serve(router, http.MethodGet, "/health")
	w := serve(router, http.MethodGet, "/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",path="/health",status="200"}`)
}

func TestUnknownRouteStaysNotFound(t *testing.T) {
	var shuttingDown atomic.Bool
	router := NewHandlers(&service.Services{}, nil, &shuttingDown).Init(testConfig())

	w := serve(router, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func guardedRouter(shuttingDown *atomic.Bool, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(shutdownMiddleware(shuttingDown))
	router.GET("/x", handler)
	return router
}

func TestShutdownMiddleware_PassesThrough(t *testing.T) {
	var shuttingDown atomic.Bool
	router := guardedRouter(&shuttingDown, func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	w := serve(router, http.MethodGet, "/x")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"))
}

func TestShutdownMiddleware_NoContent(t *testing.T) {
	var shuttingDown atomic.Bool
	router := guardedRouter(&shuttingDown, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := serve(router, http.MethodGet, "/x")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestShutdownMiddleware_ReplacesResponseDuringShutdown(t *testing.T) {
	var shuttingDown atomic.Bool
	router := guardedRouter(&shuttingDown, func(c *gin.Context) {
		// shutdown starts while the request is in flight
		shuttingDown.Store(true)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := serve(router, http.MethodGet, "/x")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Service Unavailable", w.Body.String())
}

func TestRequestID(t *testing.T) {
	var shuttingDown atomic.Bool
	router := NewHandlers(&service.Services{}, nil, &shuttingDown).Init(testConfig())

	w := serve(router, http.MethodGet, "/health")
	assert.Len(t, w.Header().Get(requestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestShutdownWinsOverRateLimit(t *testing.T) {
	var shuttingDown atomic.Bool
	shuttingDown.Store(true)
	cfg := testConfig()
	cfg.Limiter = config.Limiter{RPS: 1, Burst: 1, TTL: time.Minute}
	router := NewHandlers(&service.Services{}, nil, &shuttingDown).Init(cfg)

	for i := 0; i < 3; i++ {
		w := serve(router, http.MethodGet, "/health")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, i)
		assert.Equal(t, "Service Unavailable", w.Body.String(), i)
	}
}
