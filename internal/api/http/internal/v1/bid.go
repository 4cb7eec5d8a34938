package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibe-gaming/geo-api/internal/domain"
)

func (h *Handler) initBidsRoutes(api *gin.RouterGroup) {
	bids := api.Group("/bid")
	{
		bids.POST("/", h.createBid)
		bids.POST("/second", h.createBidSecond)
	}
}

// @Summary Create Bid
// @Tags Bids
// @Description Publish a bid to the primary queue
// @ModuleID createBid
// @Accept  json
// @Param input body domain.CreateBidCommand true "bid"
// @Success 204
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bid/ [post]
func (h *Handler) createBid(c *gin.Context) {
	h.publishBid(c, h.services.Bids.CreateBid)
}

// @Summary Create Bid Second
// @Tags Bids
// @Description Publish a bid to the secondary queue
// @ModuleID createBidSecond
// @Accept  json
// @Param input body domain.CreateBidCommand true "bid"
// @Success 204
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /bid/second [post]
func (h *Handler) createBidSecond(c *gin.Context) {
	h.publishBid(c, h.services.Bids.CreateBidSecond)
}

func (h *Handler) publishBid(c *gin.Context, publish func(ctx context.Context, cmd domain.CreateBidCommand) (domain.CreateBidCommand, error)) {
	var cmd domain.CreateBidCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	if _, err := publish(c.Request.Context(), cmd); err != nil {
		errorResponse(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
