package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skill-match-api/internal/response"
	"skill-match-api/internal/service"
)

// StatsHandler serves the dashboard rollup
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Counts godoc
// @Summary Record counts across all collections
// @Tags Stats
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /api/stats [get]
func (h *StatsHandler) Counts(c *gin.Context) {
	stats, err := h.statsService.Counts(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stats)
}
