package apiHttp

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/vibe-gaming/geo-api/docs"
	internalV1 "github.com/vibe-gaming/geo-api/internal/api/http/internal/v1"
	"github.com/vibe-gaming/geo-api/internal/config"
	"github.com/vibe-gaming/geo-api/internal/service"
	"github.com/vibe-gaming/geo-api/pkg/limiter"
	"github.com/vibe-gaming/geo-api/pkg/logger"
	"github.com/vibe-gaming/geo-api/pkg/validator"
)

const healthCheckTimeout = time.Second

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Handler struct {
	services     *service.Services
	healthChecks map[string]HealthCheck
	shuttingDown *atomic.Bool
}

// NewHandlers builds the HTTP handlers. Once shuttingDown is set every response is
// replaced with 503.
func NewHandlers(
	services *service.Services,
	healthChecks map[string]HealthCheck,
	shuttingDown *atomic.Bool,
) *Handler {
	return &Handler{
		services:     services,
		healthChecks: healthChecks,
		shuttingDown: shuttingDown,
	}
}

func (h *Handler) Init(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		requestIDMiddleware,
		ginzap.GinzapWithConfig(logger.Logger(), &ginzap.Config{
			TimeFormat: time.RFC3339,
			UTC:        true,
			SkipPaths:  []string{"/metrics"},
			Context:    requestIDField,
		}),
		shutdownMiddleware(h.shuttingDown),
		limiter.Limit(cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		metricsMiddleware,
	)
	router.Use(ginzap.RecoveryWithZap(logger.Logger(), true))

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler(), ginSwagger.InstanceName("internal")))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", h.health)

	h.initAPI(router, cfg)

	return router
}

func (h *Handler) initAPI(router *gin.Engine, cfg *config.Config) {
	internalHandlersV1 := internalV1.NewHandler(h.services, cfg)
	internalHandlersV1.Init(&router.RouterGroup)
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func (h *Handler) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	response := healthResponse{Status: "healthy", Checks: make(map[string]string, len(h.healthChecks))}
	status := http.StatusOK
	for name, check := range h.healthChecks {
		if err := check(ctx); err != nil {
			logger.Warn("health check failed", zap.String("check", name), zap.Error(err))
			response.Checks[name] = err.Error()
			response.Status = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		response.Checks[name] = "ok"
	}

	c.JSON(status, response)
}
