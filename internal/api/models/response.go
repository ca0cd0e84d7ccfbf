package models

// SolveResponse represents the response from a solve run
type SolveResponse struct {
	Status  string          `json:"status"`
	Summary SolveSummary    `json:"summary"`
	Period1 *PeriodSolution `json:"period1,omitempty"`
	Period2 *PeriodSolution `json:"period2,omitempty"`
}

// SolveSummary contains per-period policy summaries
type SolveSummary struct {
	Period1 PolicySummary `json:"period1"`
	Period2 PolicySummary `json:"period2"`
}

// PolicySummary describes a solved consumption policy over its grid
type PolicySummary struct {
	GridPoints         int     `json:"grid_points"`
	MinConsumption     float64 `json:"min_consumption"`
	MaxConsumption     float64 `json:"max_consumption"`
	MeanMPC            float64 `json:"mean_mpc"` // average marginal propensity to consume
	NonConvergedPoints int     `json:"non_converged_points"`
}

// PeriodSolution is the full per-grid-point output of one period
type PeriodSolution struct {
	CashOnHand          []float64 `json:"cash_on_hand"`
	Value               []float64 `json:"value"`
	Consumption         []float64 `json:"consumption"`
	NonConvergedIndices []int     `json:"non_converged_indices,omitempty"`
}

// SimulateResponse represents the response from a simulate run
type SimulateResponse struct {
	Status      string             `json:"status"`
	Summary     ConsumptionSummary `json:"summary"`
	Consumption []float64          `json:"consumption"`
}

// ConsumptionSummary describes the simulated consumption distribution
type ConsumptionSummary struct {
	Count           int     `json:"count"`
	MinC            float64 `json:"min_c"`
	MaxC            float64 `json:"max_c"`
	MeanC           float64 `json:"mean_c"`
	P05C            float64 `json:"p05_c"`
	P95C            float64 `json:"p95_c"`
	MeanSavingsRate float64 `json:"mean_savings_rate"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation, ranked by mean
// simulated consumption
type ComparisonResult struct {
	Rank    int                `json:"rank"`
	Name    string             `json:"name"`
	Summary ConsumptionSummary `json:"summary"`
}

// PresetInfo represents information about a parameter preset
type PresetInfo struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	File  string      `json:"file"`
	Specs PresetSpecs `json:"specs"`
}

// PresetSpecs contains the headline parameters of a preset
type PresetSpecs struct {
	Rho   float64 `json:"rho"`
	Nu    float64 `json:"nu"`
	Beta  float64 `json:"beta"`
	Delta float64 `json:"delta"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
