// README: Map handlers: route lookup, place search, AR overlay stub.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabi/internal/maps"
)

type MapHandler struct {
	routes *maps.RouteService
	places *maps.PlacesService
}

func NewMapHandler(routes *maps.RouteService, places *maps.PlacesService) *MapHandler {
	return &MapHandler{routes: routes, places: places}
}

// Route handles GET /api/maps/route?from=lng,lat&to=lng,lat&mode=walking.
func (h *MapHandler) Route(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		writeError(c, http.StatusBadRequest, "missing required parameters: from, to")
		return
	}
	mode := c.DefaultQuery("mode", "walking")

	route, err := h.routes.GetRoute(c.Request.Context(), from, to, mode)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to fetch route")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"route": route})
}

// Places handles GET /api/maps/places?near=Kyoto&q=ramen.
func (h *MapHandler) Places(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		writeError(c, http.StatusBadRequest, "missing required parameter: q")
		return
	}
	results, err := h.places.SearchNearby(c.Request.Context(), c.Query("near"), query)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to search places")
		return
	}
	if results == nil {
		results = []maps.Place{}
	}
	writeJSON(c, http.StatusOK, gin.H{"places": results})
}

// TravelEstimate handles GET /api/maps/travel-estimate?from=Tokyo+Station&to=Asakusa.
// Schedule hints between consecutive activities use this instead of a full route.
func (h *MapHandler) TravelEstimate(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		writeError(c, http.StatusBadRequest, "missing required parameters: from, to")
		return
	}

	duration, distance, err := h.routes.GetTravelEstimate(c.Request.Context(), from, to)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to fetch travel estimate")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"estimate": gin.H{
		"durationSec": int(duration.Seconds()),
		"distance":    distance,
	}})
}

// AROverlay handles GET /api/maps/ar-overlay. Landmark generation is not
// implemented yet; clients receive an empty overlay.
func (h *MapHandler) AROverlay(c *gin.Context) {
	if c.Query("coordinates") == "" {
		writeError(c, http.StatusBadRequest, "missing required parameter: coordinates")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"overlay": gin.H{
		"waypoints": []any{},
		"landmarks": []any{},
	}})
}
