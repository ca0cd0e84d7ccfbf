package handlers

import (
	"log"
	"net/http"
	"path/filepath"

	"consav/internal/analysis"
	"consav/internal/api/models"
	"consav/internal/config"
	"consav/internal/model"
	"consav/internal/solver"

	"github.com/gin-gonic/gin"
)

// SolveHandler handles solve-related requests
type SolveHandler struct{}

// NewSolveHandler creates a new solve handler
func NewSolveHandler() *SolveHandler {
	return &SolveHandler{}
}

// RunSolve handles POST /api/v1/solve
func (h *SolveHandler) RunSolve(c *gin.Context) {
	var req models.SolveRequest
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

	result, err := engine.Solve()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SOLVE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, buildSolveResponse(result, req.Options.IncludeArrays))
}

// CompareSolves handles POST /api/v1/solve/compare
func (h *SolveHandler) CompareSolves(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	// Run each variation against the base config, simulating the same
	// wealth draws for every one.
	byName := make(map[string]analysis.ConsumptionSummary, len(req.Variations))
	for _, variation := range req.Variations {
		merged := mergeSolveConfig(req.BaseConfig, variation)
		cfg := buildConfig(merged)

		engine, err := solver.New(cfg.Model.ToParams(), cfg.ToSolverOptions())
		if err != nil {
			log.Printf("SolveHandler: skipping variation %q: %v", variation.Name, err)
			continue
		}
		sims, err := engine.Simulate(req.InitialWealth)
		if err != nil {
			log.Printf("SolveHandler: variation %q failed: %v", variation.Name, err)
			continue
		}
		byName[variation.Name] = analysis.ComputeSummary(req.InitialWealth, sims)
	}

	ranked := analysis.RankByMeanConsumption(byName)
	comparison := make([]models.ComparisonResult, 0, len(ranked))
	for i, r := range ranked {
		comparison = append(comparison, models.ComparisonResult{
			Rank:    i + 1,
			Name:    r.Name,
			Summary: toConsumptionSummary(r.ConsumptionSummary),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// Helper methods

// buildConfig converts a request config into a config.Config, resolving a
// preset file reference if one is given. Preset files are looked up by name
// in the presets directory (e.g. "baseline" -> examples/presets/baseline.yaml).
func buildConfig(req models.SolveConfig) *config.Config {
	cfg := &config.Config{
		PresetFile: req.PresetFile,
		Model:      toConfigModel(req.Model),
		Grids: config.GridsConfig{
			M2: config.GridConfig{Min: req.Grids.M2.Min, Max: req.Grids.M2.Max, Points: req.Grids.M2.Points},
			M1: config.GridConfig{Min: req.Grids.M1.Min, Max: req.Grids.M1.Max, Points: req.Grids.M1.Points},
		},
		Solver: config.SolverConfig{
			XTol:          req.Solver.XTol,
			MaxIterations: req.Solver.MaxIterations,
			Workers:       req.Solver.Workers,
			FloorC2:       req.Solver.FloorC2,
			FloorC1:       req.Solver.FloorC1,
		},
	}

	// If preset_file is set, load it and merge request overrides onto it.
	if cfg.PresetFile != "" {
		presetPath := filepath.Join(presetDir(), cfg.PresetFile+".yaml")
		loaded, err := config.LoadUnchecked(presetPath)
		if err == nil {
			// Merge: preset file is base, request config is override.
			cfg.Model = config.MergeModel(loaded.Model, cfg.Model)
		} else {
			log.Printf("SolveHandler: Failed to load preset file %s: %v", presetPath, err)
		}
	}

	// Apply default PHigh if not set (complement of PLow).
	if cfg.Model.PHigh == nil && cfg.Model.PLow != nil {
		cfg.Model.PHigh = config.Float64(1 - *cfg.Model.PLow)
	}

	return cfg
}

func mergeSolveConfig(base models.SolveConfig, v models.SolveVariation) models.SolveConfig {
	merged := base
	merged.Model = fromConfigModel(config.MergeModel(toConfigModel(base.Model), toConfigModel(v.Model)))
	return merged
}

// Both model shapes use pointer fields, so the converters carry presence
// through unchanged.
func toConfigModel(m models.ModelConfig) config.ModelConfig {
	return config.ModelConfig{
		Name:  m.Name,
		Rho:   m.Rho,
		Nu:    m.Nu,
		Kappa: m.Kappa,
		Beta:  m.Beta,
		R:     m.R,
		Delta: m.Delta,
		PLow:  m.PLow,
		PHigh: m.PHigh,
	}
}

func fromConfigModel(m config.ModelConfig) models.ModelConfig {
	return models.ModelConfig{
		Name:  m.Name,
		Rho:   m.Rho,
		Nu:    m.Nu,
		Kappa: m.Kappa,
		Beta:  m.Beta,
		R:     m.R,
		Delta: m.Delta,
		PLow:  m.PLow,
		PHigh: m.PHigh,
	}
}

func buildSolveResponse(result *solver.Result, includeArrays bool) models.SolveResponse {
	resp := models.SolveResponse{
		Status: "completed",
		Summary: models.SolveSummary{
			Period1: toPolicySummary(analysis.ComputePolicy(result.Period1)),
			Period2: toPolicySummary(analysis.ComputePolicy(result.Period2)),
		},
	}
	if includeArrays {
		resp.Period1 = toPeriodSolution(result.Period1)
		resp.Period2 = toPeriodSolution(result.Period2)
	}
	return resp
}

func toPolicySummary(s analysis.PolicySummary) models.PolicySummary {
	return models.PolicySummary{
		GridPoints:         s.GridPoints,
		MinConsumption:     s.MinC,
		MaxConsumption:     s.MaxC,
		MeanMPC:            s.MeanMPC,
		NonConvergedPoints: s.NonConverged,
	}
}

func toPeriodSolution(sol *model.Solution) *models.PeriodSolution {
	return &models.PeriodSolution{
		CashOnHand:          sol.M,
		Value:               sol.V,
		Consumption:         sol.C,
		NonConvergedIndices: sol.NonConverged(),
	}
}

func toConsumptionSummary(s analysis.ConsumptionSummary) models.ConsumptionSummary {
	return models.ConsumptionSummary{
		Count:           s.Count,
		MinC:            s.MinC,
		MaxC:            s.MaxC,
		MeanC:           s.MeanC,
		P05C:            s.P05C,
		P95C:            s.P95C,
		MeanSavingsRate: s.MeanSavingsRate,
	}
}
