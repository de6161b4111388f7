// internal/pipeline/pipeline.go
package pipeline

import (
	"sales-insights-go/internal/analytics"
	"sales-insights-go/internal/rules"
	"sales-insights-go/internal/types"
)

// BuildInsights derives risk, action, and email for every opportunity,
// preserving input order.
func BuildInsights(engine *rules.Engine, opps []types.Opportunity) []types.OpportunityInsight {
	insights := make([]types.OpportunityInsight, 0, len(opps))
	for _, opp := range opps {
		risk := engine.AssessRisk(opp)
		action := engine.RecommendActions(opp, risk)
		email := engine.SuggestEmail(opp, risk, action)
		insights = append(insights, types.OpportunityInsight{
			Opportunity: opp,
			Risk:        risk,
			Action:      action,
			Email:       email,
		})
	}
	return insights
}

// Analyze runs the full per-record derivation plus all three aggregates for
// one ingestion batch. Everything is recomputed; nothing is cached between
// batches.
func Analyze(engine *rules.Engine, opps []types.Opportunity) types.AnalysisResult {
	insights := BuildInsights(engine, opps)

	risks := make([]types.RiskAssessment, 0, len(insights))
	for _, ins := range insights {
		risks = append(risks, ins.Risk)
	}

	return types.AnalysisResult{
		Insights:         insights,
		KPIs:             analytics.ComputeKPIs(opps),
		Stages:           analytics.SummarizeStages(opps),
		RiskDistribution: analytics.RiskDistributionOf(risks),
	}
}
