package handler

import (
	"context"
	"net/http"
	"strconv"

	"tzlon-api/internal/models"

	"github.com/gin-gonic/gin"
)

const maxHistoryLimit = 200

// HistoryHandler handles conversion history requests
type HistoryHandler struct {
	service HistoryService
}

// Service interface for dependency injection
type HistoryService interface {
	Recent(context.Context, int) ([]models.HistoryEntry, error)
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(svc HistoryService) *HistoryHandler {
	return &HistoryHandler{service: svc}
}

// Recent handles GET /history requests
//
//	@Summary	Recently recorded conversions
//	@Param		limit	query	int	false	"max entries (default 20)"
//	@Success	200		{array}	models.HistoryEntry
//	@Router		/history [get]
func (h *HistoryHandler) Recent(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > maxHistoryLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit format"})
			return
		}
		limit = v
	}

	entries, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
