// README: Translation handler.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tabi/internal/modules/translate"
)

type TranslateHandler struct {
	translate *translate.Service
}

func NewTranslateHandler(svc *translate.Service) *TranslateHandler {
	return &TranslateHandler{translate: svc}
}

type translateReq struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

// Text handles POST /api/translate/text.
func (h *TranslateHandler) Text(c *gin.Context) {
	var req translateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(c, http.StatusBadRequest, "text must not be empty")
		return
	}

	translated, err := h.translate.Translate(c.Request.Context(), req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to translate text")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"translated": translated})
}
