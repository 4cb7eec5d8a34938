package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibe-gaming/geo-api/internal/domain"
)

func (h *Handler) initCountriesRoutes(api *gin.RouterGroup) {
	countries := api.Group("/country")
	{
		countries.GET("/", h.getCountries)
		countries.GET("/with_cities/", h.getCountriesWithCities)
		countries.GET("/:country_id/", h.tokenAuthMiddleware, h.getCountry)
		countries.POST("/", h.tokenAuthMiddleware, h.createCountry)
		countries.PUT("/", h.tokenAuthMiddleware, h.updateCountry)
		countries.DELETE("/:country_id/", h.tokenAuthMiddleware, h.deleteCountry)
	}
}

type countryIDUri struct {
	ID int `uri:"country_id" json:"country_id" binding:"required,gt=0"`
}

// @Summary Get Countries
// @Tags Countries
// @Description Get all countries
// @ModuleID getCountries
// @Produce  json
// @Success 200 {array} domain.Country
// @Failure 500 {object} ErrorResponse
// @Router /country/ [get]
func (h *Handler) getCountries(c *gin.Context) {
	countries, err := h.services.Countries.ReadAllCountries(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

// @Summary Get Countries With Cities
// @Tags Countries
// @Description Get all countries, each with its cities
// @ModuleID getCountriesWithCities
// @Produce  json
// @Success 200 {array} domain.CountryWithCities
// @Failure 500 {object} ErrorResponse
// @Router /country/with_cities/ [get]
func (h *Handler) getCountriesWithCities(c *gin.Context) {
	countries, err := h.services.Countries.ReadCountryWithCities(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

// @Summary Get Country
// @Security BearerAuth
// @Tags Countries
// @ModuleID getCountry
// @Produce  json
// @Param country_id path int true "country id"
// @Success 200 {object} domain.Country
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /country/{country_id}/ [get]
func (h *Handler) getCountry(c *gin.Context) {
	var uri countryIDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	country, err := h.services.Countries.ReadCountry(c.Request.Context(), domain.ReadCountryQuery{ID: uri.ID})
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}

// @Summary Create Country
// @Security BearerAuth
// @Tags Countries
// @ModuleID createCountry
// @Accept  json
// @Produce  json
// @Param input body domain.CreateCountryCommand true "country"
// @Success 201 {object} domain.Country
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /country/ [post]
func (h *Handler) createCountry(c *gin.Context) {
	var cmd domain.CreateCountryCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	country, err := h.services.Countries.CreateCountry(c.Request.Context(), cmd)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, country)
}

// @Summary Update Country
// @Security BearerAuth
// @Tags Countries
// @ModuleID updateCountry
// @Accept  json
// @Produce  json
// @Param input body domain.UpdateCountryCommand true "country"
// @Success 200 {object} domain.Country
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /country/ [put]
func (h *Handler) updateCountry(c *gin.Context) {
	var cmd domain.UpdateCountryCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	country, err := h.services.Countries.UpdateCountry(c.Request.Context(), cmd)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}

// @Summary Delete Country
// @Security BearerAuth
// @Tags Countries
// @ModuleID deleteCountry
// @Produce  json
// @Param country_id path int true "country id"
// @Success 200 {object} domain.Country
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /country/{country_id}/ [delete]
func (h *Handler) deleteCountry(c *gin.Context) {
	var uri countryIDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	country, err := h.services.Countries.DeleteCountry(c.Request.Context(), domain.DeleteCountryCommand{ID: uri.ID})
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, country)
}
