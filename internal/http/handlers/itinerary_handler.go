// README: Itinerary handlers: generate, get, adjust, list, delete, statistics.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tabi/internal/modules/itinerary"
)

// modelCallTimeout bounds a single generate/adjust request. The model call
// dominates it; cancelling the request cancels the in-flight completion too.
const modelCallTimeout = 90 * time.Second

// Quota deducts from a per-user allowance of model calls.
type Quota interface {
	Use(ctx context.Context, userID string) error
}

type ItineraryHandler struct {
	itinerary *itinerary.Service
	quota     Quota
}

// NewItineraryHandler wires the orchestrator and the optional quota guard
// (nil disables quota enforcement, e.g. in tests).
func NewItineraryHandler(svc *itinerary.Service, quota Quota) *ItineraryHandler {
	return &ItineraryHandler{itinerary: svc, quota: quota}
}

// Generate handles POST /api/itinerary/generate.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var params itinerary.TripParams
	if err := c.ShouldBindJSON(&params); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	// Requests that fail validation never reach the model, so they must not
	// consume quota either.
	if err := params.Validate(); err != nil {
		writeItineraryError(c, err)
		return
	}

	uid := userID(c)
	if err := h.useQuota(c.Request.Context(), uid); err != nil {
		writeItineraryError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), modelCallTimeout)
	defer cancel()

	it, err := h.itinerary.Generate(ctx, uid, params)
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"itinerary": it})
}

// Get handles GET /api/itinerary/:id.
func (h *ItineraryHandler) Get(c *gin.Context) {
	it, err := h.itinerary.Get(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"itinerary": it})
}

type adjustReq struct {
	Reason      string         `json:"reason"`
	Preferences map[string]any `json:"preferences"`
}

// Adjust handles PUT /api/itinerary/:id/adjust.
func (h *ItineraryHandler) Adjust(c *gin.Context) {
	var req adjustReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Reason) == "" {
		writeError(c, http.StatusBadRequest, "reason must not be empty")
		return
	}

	uid := userID(c)
	if err := h.useQuota(c.Request.Context(), uid); err != nil {
		writeItineraryError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), modelCallTimeout)
	defer cancel()

	it, err := h.itinerary.Adjust(ctx, uid, c.Param("id"), req.Reason, req.Preferences)
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"itinerary": it})
}

// List handles GET /api/itinerary.
func (h *ItineraryHandler) List(c *gin.Context) {
	items, err := h.itinerary.List(c.Request.Context(), userID(c))
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	if items == nil {
		items = []*itinerary.Itinerary{}
	}
	writeJSON(c, http.StatusOK, gin.H{"itineraries": items})
}

// Delete handles DELETE /api/itinerary/:id.
func (h *ItineraryHandler) Delete(c *gin.Context) {
	if err := h.itinerary.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		writeItineraryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"message": "itinerary deleted successfully"})
}

// Statistics handles GET /api/itinerary/statistics.
func (h *ItineraryHandler) Statistics(c *gin.Context) {
	stats, err := h.itinerary.Statistics(c.Request.Context(), userID(c))
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"statistics": stats})
}

func (h *ItineraryHandler) useQuota(ctx context.Context, uid string) error {
	if h.quota == nil {
		return nil
	}
	return h.quota.Use(ctx, uid)
}
