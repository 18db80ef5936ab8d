// README: Shared handler utilities (JSON helpers, uid lookup, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tabi/internal/http/middleware"
	"tabi/internal/modules/aiquota"
	"tabi/internal/modules/booking"
	"tabi/internal/modules/itinerary"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// userID returns the verified uid the auth middleware stored.
func userID(c *gin.Context) string {
	return c.GetString(middleware.UIDKey)
}

// writeItineraryError maps module sentinels to HTTP statuses. Raw upstream
// failure detail never crosses this boundary; it lives in the server logs.
func writeItineraryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itinerary.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, itinerary.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, itinerary.ErrConflict):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, aiquota.ErrInsufficientQuota):
		writeError(c, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, itinerary.ErrGenerationFailed), errors.Is(err, itinerary.ErrAdjustmentFailed):
		writeError(c, http.StatusInternalServerError, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
