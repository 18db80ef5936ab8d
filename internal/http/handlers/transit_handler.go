// README: Transit schedule handler.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tabi/internal/modules/transit"
)

type TransitHandler struct {
	transit *transit.Service
}

func NewTransitHandler(svc *transit.Service) *TransitHandler {
	return &TransitHandler{transit: svc}
}

// Schedule handles GET /api/transit/schedule?from=&to=&date=&time=.
func (h *TransitHandler) Schedule(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	date := c.Query("date")
	if from == "" || to == "" || date == "" {
		writeError(c, http.StatusBadRequest, "missing required parameters: from, to, date")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}
	hhmm := c.Query("time")
	if hhmm != "" {
		if _, err := time.Parse("15:04", hhmm); err != nil {
			writeError(c, http.StatusBadRequest, "time must be HH:mm")
			return
		}
	}

	routes, err := h.transit.GetSchedule(c.Request.Context(), from, to, date, hhmm)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to fetch transit schedule")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"routes": routes})
}
