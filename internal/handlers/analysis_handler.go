package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/app"
	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/services"
)

// AnalysisHandler serves the windowed summary and the stored filter.
type AnalysisHandler struct {
	analysisService services.AnalysisServicer
	state           *app.State
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService services.AnalysisServicer, state *app.State) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService, state: state}
}

// UpdateFilterRequest represents the request payload for changing the analysis window.
// Omitted custom bounds keep their previous values.
type UpdateFilterRequest struct {
	Range       models.TimeRange `json:"range" binding:"required,time_range" example:"custom"`
	CustomStart string           `json:"custom_start" binding:"omitempty,iso_date" example:"2024-03-01"`
	CustomEnd   string           `json:"custom_end" binding:"omitempty,iso_date" example:"2024-03-31"`
}

// FilterResponse wraps the current analysis window.
type FilterResponse struct {
	Filter  models.FilterState `json:"filter"`
	Context string             `json:"context"`
}

// GetAnalysis handles the summary of the current window
// @Summary     Get analysis
// @Description Totals, balance and expense breakdown for the stored window. Query parameters override the stored window for this request only.
// @Tags        analysis
// @Produce     json
// @Param       range query string false "month, year or custom"
// @Param       start query string false "Custom window start (YYYY-MM-DD)"
// @Param       end   query string false "Custom window end (YYYY-MM-DD)"
// @Success     200 {object} services.Analysis "Analysis"
// @Failure     400 {object} ErrorResponse "Invalid window"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analysis [get]
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	filter, err := filterFromQuery(c, h.state.Filter())
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.analysisService.Analyze(filter, h.state.Now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetFilter handles the retrieval of the stored window
// @Summary     Get analysis filter
// @Description Get the stored analysis window
// @Tags        analysis
// @Produce     json
// @Success     200 {object} FilterResponse "Current filter"
// @Router      /analysis/filter [get]
func (h *AnalysisHandler) GetFilter(c *gin.Context) {
	filter := h.state.Filter()
	c.JSON(http.StatusOK, FilterResponse{Filter: filter, Context: filter.ContextLabel()})
}

// UpdateFilter handles changing the stored window
// @Summary     Update analysis filter
// @Description Replace the stored analysis window
// @Tags        analysis
// @Accept      json
// @Produce     json
// @Param       request body UpdateFilterRequest true "New window"
// @Success     200 {object} FilterResponse "Updated filter"
// @Failure     400 {object} ErrorResponse "Invalid window"
// @Router      /analysis/filter [put]
func (h *AnalysisHandler) UpdateFilter(c *gin.Context) {
	var req UpdateFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	start, err := parseDateParam("custom_start", req.CustomStart)
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := parseDateParam("custom_end", req.CustomEnd)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := h.state.SetFilter(models.FilterState{Range: req.Range, CustomStart: start, CustomEnd: end})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, FilterResponse{Filter: filter, Context: filter.ContextLabel()})
}

// filterFromQuery applies the range, start and end query parameters on top
// of base.
func filterFromQuery(c *gin.Context, base models.FilterState) (models.FilterState, error) {
	filter := base
	if v := c.Query("range"); v != "" {
		filter.Range = models.TimeRange(v)
		if !filter.Range.Valid() {
			return filter, apperrors.ErrInvalidTimeRange
		}
	}

	start, err := parseDateParam("start", c.Query("start"))
	if err != nil {
		return filter, err
	}
	if !start.IsZero() {
		filter.CustomStart = start
	}

	end, err := parseDateParam("end", c.Query("end"))
	if err != nil {
		return filter, err
	}
	if !end.IsZero() {
		filter.CustomEnd = end
	}
	return filter, nil
}
