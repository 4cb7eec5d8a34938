package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vibe-gaming/geo-api/internal/domain"
)

func (h *Handler) initCitiesRoutes(api *gin.RouterGroup) {
	cities := api.Group("/city")
	{
		cities.GET("/", h.tokenAuthMiddleware, h.getCities)
		cities.GET("/:country_code/", h.getCitiesByCountry)
		cities.POST("/", h.tokenAuthMiddleware, h.createCity)
		cities.PUT("/", h.tokenAuthMiddleware, h.updateCity)
		cities.PATCH("/", h.tokenAuthMiddleware, h.updateCity)
		cities.DELETE("/:city_id/", h.tokenAuthMiddleware, h.deleteCity)
	}
}

type cityIDUri struct {
	ID int `uri:"city_id" json:"city_id" binding:"required,gt=0"`
}

type countryCodeUri struct {
	Code string `uri:"country_code" json:"country_code" binding:"required"`
}

// @Summary Get Cities
// @Security BearerAuth
// @Tags Cities
// @Description Get all cities
// @ModuleID getCities
// @Produce  json
// @Success 200 {array} domain.City
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /city/ [get]
func (h *Handler) getCities(c *gin.Context) {
	cities, err := h.services.Cities.ReadAllCities(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// @Summary Get Cities By Country
// @Tags Cities
// @Description Get cities of the country with the given code
// @ModuleID getCitiesByCountry
// @Produce  json
// @Param country_code path string true "country code"
// @Success 200 {array} domain.City
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /city/{country_code}/ [get]
func (h *Handler) getCitiesByCountry(c *gin.Context) {
	var uri countryCodeUri
	if err := c.ShouldBindUri(&uri); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	cities, err := h.services.Cities.ReadCitiesByCountry(c.Request.Context(), domain.ReadCityByCountryQuery{CountryCode: uri.Code})
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// @Summary Create City
// @Security BearerAuth
// @Tags Cities
// @ModuleID createCity
// @Accept  json
// @Produce  json
// @Param input body domain.CreateCityCommand true "city"
// @Success 201 {object} domain.City
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /city/ [post]
func (h *Handler) createCity(c *gin.Context) {
	var cmd domain.CreateCityCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	city, err := h.services.Cities.CreateCity(c.Request.Context(), cmd)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusCreated, city)
}

// @Summary Update City
// @Security BearerAuth
// @Tags Cities
// @Description Change any subset of name, code and country code. PUT and PATCH behave the same.
// @ModuleID updateCity
// @Accept  json
// @Produce  json
// @Param input body domain.UpdateCityCommand true "city"
// @Success 200 {object} domain.City
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /city/ [put]
// @Router /city/ [patch]
func (h *Handler) updateCity(c *gin.Context) {
	var cmd domain.UpdateCityCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	city, err := h.services.Cities.UpdateCity(c.Request.Context(), cmd)
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}

// @Summary Delete City
// @Security BearerAuth
// @Tags Cities
// @ModuleID deleteCity
// @Produce  json
// @Param city_id path int true "city id"
// @Success 200 {object} domain.City
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /city/{city_id}/ [delete]
func (h *Handler) deleteCity(c *gin.Context) {
	var uri cityIDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		bindingErrorResponse(c, err)
		return
	}

	city, err := h.services.Cities.DeleteCity(c.Request.Context(), domain.DeleteCityCommand{ID: uri.ID})
	if err != nil {
		errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, city)
}
