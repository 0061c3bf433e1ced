package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ayushaahar/backend/internal/service"
)

// WeatherHandler exposes the weather lookup used by the chart UI.
type WeatherHandler struct {
	weather service.WeatherProvider
}

func NewWeatherHandler(weather service.WeatherProvider) *WeatherHandler {
	return &WeatherHandler{weather: weather}
}

func (h *WeatherHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/weather/:city", h.GetWeather)
}

// GetWeather always succeeds; upstream failures yield the temperate default.
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	c.JSON(http.StatusOK, h.weather.GetWeatherData(c.Request.Context(), c.Param("city")))
}
