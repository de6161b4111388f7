package rules

import (
	"fmt"
	"strings"

	"sales-insights-go/internal/config"
	"sales-insights-go/internal/types"
)

// Engine evaluates the heuristic rules. Construct once from config; all
// methods are deterministic and side-effect free.
type Engine struct {
	cfg     config.RulesConfig
	words   *wordMatcher
	phrases *phraseMatcher
}

func NewEngine(cfg config.RulesConfig) *Engine {
	return &Engine{
		cfg:     cfg,
		words:   newWordMatcher(cfg.NegativeWords),
		phrases: newPhraseMatcher(cfg.NegativePhrases),
	}
}

// NewDefaultEngine returns an Engine on the canonical rule set.
func NewDefaultEngine() *Engine {
	return NewEngine(config.DefaultRules())
}

// negativeSignals runs both matchers over the notes and merges their hits,
// words first, in configuration order.
func (e *Engine) negativeSignals(notes string) []string {
	hits := e.words.Match(notes)
	return append(hits, e.phrases.Match(notes)...)
}

// AssessRisk classifies one opportunity.
//
// A healthy deal (high probability, fresh stage, recent contact, clean notes)
// short-circuits to Low. Otherwise reasons accumulate per signal and the level
// follows from the reason count, with a hard escalation when very low
// probability coincides with stage or contact staleness.
func (e *Engine) AssessRisk(opp types.Opportunity) types.RiskAssessment {
	signals := e.negativeSignals(opp.Notes)

	if opp.Probability >= e.cfg.HealthyProbability &&
		opp.DaysInStage <= e.cfg.HealthyMaxDays &&
		opp.LastContactDaysAgo <= e.cfg.HealthyMaxDays &&
		len(signals) == 0 {
		return types.RiskAssessment{
			Level:   types.RiskLow,
			Reasons: []string{"Healthy deal: strong win probability and recent engagement"},
		}
	}

	var reasons []string

	switch {
	case opp.Probability < e.cfg.VeryLowProbability:
		reasons = append(reasons, fmt.Sprintf("Very low win probability (< %.0f%%)", e.cfg.VeryLowProbability*100))
	case opp.Probability < e.cfg.LowProbability:
		reasons = append(reasons, fmt.Sprintf("Low win probability (< %.0f%%)", e.cfg.LowProbability*100))
	}

	switch {
	case opp.DaysInStage > e.cfg.StuckDays:
		reasons = append(reasons, fmt.Sprintf("Stuck in stage (> %d days)", e.cfg.StuckDays))
	case opp.DaysInStage > e.cfg.SlowDays:
		reasons = append(reasons, fmt.Sprintf("In stage for more than %d days", e.cfg.SlowDays))
	}

	switch {
	case opp.LastContactDaysAgo > e.cfg.ColdContactDays:
		reasons = append(reasons, fmt.Sprintf("No contact in over %d days", e.cfg.ColdContactDays))
	case opp.LastContactDaysAgo > e.cfg.StaleContactDays:
		reasons = append(reasons, fmt.Sprintf("No recent contact (> %d days)", e.cfg.StaleContactDays))
	}

	if len(signals) > 0 {
		reasons = append(reasons, "Negative signals in notes: "+strings.Join(signals, ", "))
	}

	level := types.RiskLow
	veryLowAndStale := opp.Probability < e.cfg.VeryLowProbability &&
		(opp.DaysInStage > e.cfg.SlowDays || opp.LastContactDaysAgo > e.cfg.StaleContactDays)
	switch {
	case len(reasons) >= 3 || veryLowAndStale:
		level = types.RiskHigh
	case len(reasons) >= 1:
		level = types.RiskMedium
	}

	if len(reasons) == 0 {
		reasons = []string{"No major risk signals detected"}
	}

	return types.RiskAssessment{Level: level, Reasons: reasons}
}
