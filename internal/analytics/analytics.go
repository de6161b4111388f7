package analytics

import (
	"sort"

	"sales-insights-go/internal/types"
)

// ComputeKPIs reduces a batch to the four headline pipeline metrics.
// Empty input yields the zero value, never a division by zero.
func ComputeKPIs(opps []types.Opportunity) types.PipelineKPIs {
	if len(opps) == 0 {
		return types.PipelineKPIs{}
	}

	var total, weighted float64
	var days int
	for _, o := range opps {
		total += o.Amount
		weighted += o.Amount * o.Probability
		days += o.DaysInStage
	}

	return types.PipelineKPIs{
		TotalOpportunities: len(opps),
		TotalPipeline:      total,
		WeightedPipeline:   weighted,
		AvgDaysInStage:     float64(days) / float64(len(opps)),
	}
}

// SummarizeStages groups the batch by stage label and returns per-stage count
// and total amount, largest total first. Ties break on stage name so the
// output is stable across runs.
func SummarizeStages(opps []types.Opportunity) []types.StageSummary {
	counts := map[string]int{}
	totals := map[string]float64{}
	for _, o := range opps {
		counts[o.Stage]++
		totals[o.Stage] += o.Amount
	}

	out := make([]types.StageSummary, 0, len(counts))
	for stage, n := range counts {
		out = append(out, types.StageSummary{
			Stage:       stage,
			Count:       n,
			TotalAmount: totals[stage],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalAmount != out[j].TotalAmount {
			return out[i].TotalAmount > out[j].TotalAmount
		}
		return out[i].Stage < out[j].Stage
	})
	return out
}

// RiskDistributionOf counts assessments per level. The three base levels are
// always present even at zero; an assessment with an unknown level is still
// counted under its own key.
func RiskDistributionOf(risks []types.RiskAssessment) types.RiskDistribution {
	counts := types.RiskDistribution{
		types.RiskLow:    0,
		types.RiskMedium: 0,
		types.RiskHigh:   0,
	}
	for _, r := range risks {
		counts[r.Level]++
	}
	return counts
}
