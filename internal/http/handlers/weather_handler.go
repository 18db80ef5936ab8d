// README: Weather handler.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tabi/internal/modules/weather"
)

type WeatherHandler struct {
	weather *weather.Service
}

func NewWeatherHandler(svc *weather.Service) *WeatherHandler {
	return &WeatherHandler{weather: svc}
}

// Get handles GET /api/weather?lat=&lon=.
func (h *WeatherHandler) Get(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		writeError(c, http.StatusBadRequest, "lat and lon must be numbers")
		return
	}

	data, err := h.weather.Get(c.Request.Context(), lat, lon)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to fetch weather")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"weather": data})
}
