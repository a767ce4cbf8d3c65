package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/services"
)

// InsightHandler handles AI-generated narrative insights
type InsightHandler struct {
	insightService services.InsightServicer
}

// NewInsightHandler creates a new InsightHandler
func NewInsightHandler(insightService services.InsightServicer) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// GetInsights handles the insight view
// @Summary     Get AI insights
// @Description Generate a narrative analysis of spending data via the external text-generation service
// @Tags        insights
// @Produce     json
// @Success     200 {object} services.InsightReport "Narrative insights with numeric summary"
// @Failure     500 {object} ErrorResponse "Insight generation failed"
// @Router      /insights [get]
func (h *InsightHandler) GetInsights(c *gin.Context) {
	report, err := h.insightService.GenerateInsights(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
