package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/vibe-gaming/geo-api/internal/config"
	"github.com/vibe-gaming/geo-api/internal/service"
)

// @title Geo API
// @version 1.0
// @description Countries and cities directory with a bid queue.

// @BasePath /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandler(services *service.Services, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("/v1")

	h.initCountriesRoutes(v1)
	h.initCitiesRoutes(v1)
	h.initBidsRoutes(v1)
}
