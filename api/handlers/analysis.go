package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gridfit/gridfit/api/models"
	"github.com/gridfit/gridfit/config"
	"github.com/gridfit/gridfit/core/analysis"
)

// AnalysisHandler handles analysis requests
type AnalysisHandler struct {
	analyzer *analysis.Analyzer
	defaults config.AnalysisConfig
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analyzer *analysis.Analyzer, defaults config.AnalysisConfig) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer, defaults: defaults}
}

// RunAnalysis handles POST /api/v1/analyses
func (h *AnalysisHandler) RunAnalysis(c *gin.Context) {
	var req models.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	in := analysis.Input{
		Data:            req.ManualEnergyData,
		Year:            req.Year,
		PreferHT:        req.PreferHT || h.defaults.PreferHT,
		IntervalMinutes: req.IntervalMinutes,
		BufferKWh:       req.BufferKWh,
	}
	if in.Year == 0 {
		in.Year = h.defaults.Year
	}
	if in.IntervalMinutes == 0 {
		in.IntervalMinutes = h.defaults.IntervalMinutes
	}
	if in.BufferKWh == 0 {
		in.BufferKWh = h.defaults.BufferKWh
	}

	rep, err := h.analyzer.Run(in)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "ANALYSIS_FAILED",
				Message: err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusOK, rep)
}
