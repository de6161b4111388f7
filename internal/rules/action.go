package rules

import (
	"strings"

	"sales-insights-go/internal/types"
)

// RecommendActions turns a risk assessment into concrete next steps.
// Priority mirrors the risk level. Step order matters downstream: base steps
// first, then the stage-conditional one, then the staleness-conditional one,
// because the email composer bullets the first two.
func (e *Engine) RecommendActions(opp types.Opportunity, risk types.RiskAssessment) types.RecommendedAction {
	var steps []string

	switch risk.Level {
	case types.RiskHigh:
		steps = append(steps,
			"Schedule a call with the customer within 24-48 hours",
			"Escalate internally and align on win strategy",
		)
	case types.RiskMedium:
		steps = append(steps,
			"Book a follow-up meeting this week",
			"Clarify decision timeline and remaining blockers",
		)
	default:
		steps = append(steps,
			"Maintain regular touchpoints; confirm next milestone",
			"Explore potential upsell or cross-sell",
		)
	}

	switch strings.ToLower(opp.Stage) {
	case "negotiation", "proposal":
		steps = append(steps, "Review pricing and commercial terms for possible objections")
	}

	if opp.LastContactDaysAgo > e.cfg.ReengageContactDays {
		steps = append(steps, "Acknowledge delay in communication and re-engage with value")
	}

	return types.RecommendedAction{Priority: risk.Level, NextSteps: steps}
}
