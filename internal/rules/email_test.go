package rules

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sales-insights-go/internal/config"
	"sales-insights-go/internal/types"
)

func TestSuggestEmail_SubjectHasAccountAndLowercaseStage(t *testing.T) {
	engine := NewDefaultEngine()
	opp := makeOpp(func(o *types.Opportunity) {
		o.Stage = "Proposal"
		o.AccountName = "Acme Corp"
	})
	risk := engine.AssessRisk(opp)
	action := engine.RecommendActions(opp, risk)

	email := engine.SuggestEmail(opp, risk, action)

	assert.Contains(t, email.Subject, "Acme Corp")
	assert.Contains(t, email.Subject, "proposal")
	assert.NotContains(t, email.Subject, "Proposal")
}

func TestSuggestEmail_BodyBulletsFirstTwoSteps(t *testing.T) {
	engine := NewDefaultEngine()
	opp := makeOpp(nil)
	risk := types.RiskAssessment{Level: types.RiskMedium}

	tests := []struct {
		name    string
		steps   []string
		bullets int
	}{
		{
			name:    "long step list bullets exactly two",
			steps:   []string{"step one", "step two", "step three", "step four"},
			bullets: 2,
		},
		{
			name:    "single step bullets one",
			steps:   []string{"only step"},
			bullets: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := types.RecommendedAction{Priority: risk.Level, NextSteps: tt.steps}
			email := engine.SuggestEmail(opp, risk, action)

			assert.Equal(t, tt.bullets, strings.Count(email.Body, "\n- "))
			for _, step := range tt.steps[:tt.bullets] {
				assert.Contains(t, email.Body, "- "+step)
			}
		})
	}
}

func TestSuggestEmail_MiddleParagraphVariesByRiskLevel(t *testing.T) {
	engine := NewDefaultEngine()
	opp := makeOpp(nil)
	action := types.RecommendedAction{NextSteps: []string{"a", "b"}}

	bodies := map[types.RiskLevel]string{}
	for _, level := range []types.RiskLevel{types.RiskLow, types.RiskMedium, types.RiskHigh} {
		email := engine.SuggestEmail(opp, types.RiskAssessment{Level: level}, action)
		bodies[level] = email.Body
	}

	assert.Contains(t, bodies[types.RiskHigh], "address directly")
	assert.Contains(t, bodies[types.RiskMedium], "confident decision")
	assert.Contains(t, bodies[types.RiskLow], "next milestone")
	assert.NotEqual(t, bodies[types.RiskHigh], bodies[types.RiskLow])
}

func TestSuggestEmail_SignatureComesFromConfig(t *testing.T) {
	cfg := config.DefaultRules()
	cfg.EmailSender = "Dana from Sales"
	engine := NewEngine(cfg)

	opp := makeOpp(nil)
	risk := engine.AssessRisk(opp)
	action := engine.RecommendActions(opp, risk)

	email := engine.SuggestEmail(opp, risk, action)
	assert.True(t, strings.HasSuffix(email.Body, "Best regards,\nDana from Sales"))
	assert.Contains(t, email.Body, "Hi TestCo team,")
}
