package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-insights-go/internal/rules"
	"sales-insights-go/internal/types"
)

func testBatch() []types.Opportunity {
	return []types.Opportunity{
		{
			ID: "OPP-001", AccountName: "Acme Bank", Stage: "Discovery",
			Amount: 50000, Probability: 0.4, DaysInStage: 10, LastContactDaysAgo: 5,
			Notes: "Client interested but concerned about integration timeline.",
		},
		{
			ID: "OPP-002", AccountName: "NorthTel", Stage: "Negotiation",
			Amount: 80000, Probability: 0.25, DaysInStage: 45, LastContactDaysAgo: 20,
			Notes: "Budget constraints and competitor reference mentioned.",
		},
		{
			ID: "OPP-003", AccountName: "City Health", Stage: "Proposal",
			Amount: 120000, Probability: 0.6, DaysInStage: 20, LastContactDaysAgo: 3,
			Notes: "Positive response from stakeholders, waiting on internal approval.",
		},
	}
}

func TestBuildInsights_PreservesInputOrder(t *testing.T) {
	engine := rules.NewDefaultEngine()
	opps := testBatch()

	insights := BuildInsights(engine, opps)

	require.Len(t, insights, len(opps))
	for i, ins := range insights {
		assert.Equal(t, opps[i].ID, ins.Opportunity.ID)
	}
}

func TestBuildInsights_DerivationsAreConsistent(t *testing.T) {
	engine := rules.NewDefaultEngine()

	for _, ins := range BuildInsights(engine, testBatch()) {
		assert.Equal(t, ins.Risk.Level, ins.Action.Priority)
		assert.NotEmpty(t, ins.Risk.Reasons)
		assert.NotEmpty(t, ins.Action.NextSteps)
		assert.Contains(t, ins.Email.Subject, ins.Opportunity.AccountName)
	}
}

func TestAnalyze_AggregatesMatchBatch(t *testing.T) {
	engine := rules.NewDefaultEngine()
	opps := testBatch()

	res := Analyze(engine, opps)

	assert.Equal(t, len(opps), res.KPIs.TotalOpportunities)
	assert.Equal(t, 250000.0, res.KPIs.TotalPipeline)

	var stageTotal float64
	for _, s := range res.Stages {
		stageTotal += s.TotalAmount
	}
	assert.Equal(t, res.KPIs.TotalPipeline, stageTotal)

	distTotal := 0
	for _, n := range res.RiskDistribution {
		distTotal += n
	}
	assert.Equal(t, len(opps), distTotal)
}

func TestAnalyze_EmptyBatch(t *testing.T) {
	engine := rules.NewDefaultEngine()

	res := Analyze(engine, nil)

	assert.Empty(t, res.Insights)
	assert.Empty(t, res.Stages)
	assert.Equal(t, types.PipelineKPIs{}, res.KPIs)
	assert.Equal(t, 0, res.RiskDistribution[types.RiskHigh])
	assert.Contains(t, res.RiskDistribution, types.RiskLow)
}
