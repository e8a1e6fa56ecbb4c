package handler

import (
	"github.com/gin-gonic/gin"

	"airquote/internal/service"
)

// StatsHandler handles dashboard statistics endpoints.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// CatalogStats handles GET /api/v1/stats
func (h *StatsHandler) CatalogStats(c *gin.Context) {
	stats, err := h.statsService.CatalogStats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}
