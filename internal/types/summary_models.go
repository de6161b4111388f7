// internal/types/summary_models.go
package types

// --------------------------------------------
// Pipeline-wide aggregates
// --------------------------------------------

// PipelineKPIs holds the four scalar metrics shown at the top of the dashboard.
// Recomputed per batch; all fields are zero on empty input.
type PipelineKPIs struct {
	TotalOpportunities int     `json:"total_opportunities"`
	TotalPipeline      float64 `json:"total_pipeline"`
	WeightedPipeline   float64 `json:"weighted_pipeline"`
	AvgDaysInStage     float64 `json:"avg_days_in_stage"`
}

// StageSummary is one row of the pipeline-by-stage table.
type StageSummary struct {
	Stage       string  `json:"stage"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

// RiskDistribution maps a risk level to the number of opportunities at that
// level. Always carries Low/Medium/High keys even when their count is zero.
type RiskDistribution map[RiskLevel]int

// --------------------------------------------
// FINAL output delivered to the caller
// --------------------------------------------

// AnalysisResult is everything derived from one ingestion batch: the
// per-opportunity insights in input order plus the three aggregates.
type AnalysisResult struct {
	Insights         []OpportunityInsight `json:"insights"`
	KPIs             PipelineKPIs         `json:"kpis"`
	Stages           []StageSummary       `json:"stages"`
	RiskDistribution RiskDistribution     `json:"risk_distribution"`
}
