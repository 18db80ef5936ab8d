// README: Booking handlers for create/list/cancel.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabi/internal/modules/booking"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

type createBookingReq struct {
	ActivityID  string `json:"activityId"`
	BookingType string `json:"bookingType"`
	ExternalID  string `json:"externalId"`
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	b, err := h.booking.Create(c.Request.Context(), userID(c), booking.CreateCommand{
		ActivityID:  req.ActivityID,
		BookingType: req.BookingType,
		ExternalID:  req.ExternalID,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"booking": b})
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(c *gin.Context) {
	items, err := h.booking.List(c.Request.Context(), userID(c))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	if items == nil {
		items = []*booking.Booking{}
	}
	writeJSON(c, http.StatusOK, gin.H{"bookings": items})
}

// Cancel handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	b, err := h.booking.Cancel(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"booking": b})
}
