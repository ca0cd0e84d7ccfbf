package handlers

import (
	"net/http"

	"consav/internal/analysis"
	"consav/internal/api/models"
	"consav/internal/solver"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles simulation requests
type SimulateHandler struct{}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{}
}

// RunSimulate handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg := buildConfig(req.Config)
	engine, err := solver.New(cfg.Model.ToParams(), cfg.ToSolverOptions())
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	sims, err := engine.Simulate(req.InitialWealth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.SimulateResponse{
		Status:      "completed",
		Summary:     toConsumptionSummary(analysis.ComputeSummary(req.InitialWealth, sims)),
		Consumption: sims,
	})
}
