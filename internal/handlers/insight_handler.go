package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/app"
	"pocketledger/internal/services"
)

// InsightHandler runs and reports natural-language reviews of the window.
type InsightHandler struct {
	insightService services.InsightServicer
	state          *app.State
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightService services.InsightServicer, state *app.State) *InsightHandler {
	return &InsightHandler{insightService: insightService, state: state}
}

// RequestInsight handles a new review of the stored window
// @Summary     Request insight
// @Description Review the transactions of the stored window. Failures of the text-generation API are reported in the snapshot text, not as errors.
// @Tags        analysis
// @Produce     json
// @Success     200 {object} insight.Snapshot "Finished request"
// @Failure     400 {object} ErrorResponse "Invalid window"
// @Failure     409 {object} ErrorResponse "A request is already running"
// @Router      /analysis/insight [post]
func (h *InsightHandler) RequestInsight(c *gin.Context) {
	snapshot, err := h.insightService.RequestInsight(c.Request.Context(), h.state.Filter(), h.state.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// GetInsight handles the status of the latest review
// @Summary     Get insight
// @Description Get the state and text of the latest insight request
// @Tags        analysis
// @Produce     json
// @Success     200 {object} insight.Snapshot "Latest request"
// @Router      /analysis/insight [get]
func (h *InsightHandler) GetInsight(c *gin.Context) {
	c.JSON(http.StatusOK, h.insightService.Status())
}

// ResetInsight handles clearing the latest review
// @Summary     Reset insight
// @Description Clear the text of the latest insight request and return to idle
// @Tags        analysis
// @Produce     json
// @Success     200 {object} insight.Snapshot "Cleared"
// @Failure     409 {object} ErrorResponse "A request is already running"
// @Router      /analysis/insight [delete]
func (h *InsightHandler) ResetInsight(c *gin.Context) {
	snapshot, err := h.insightService.ResetInsight()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
