package rules

import (
	"fmt"
	"strings"

	"sales-insights-go/internal/types"
)

// SuggestEmail drafts a plain-text follow-up from the record, its risk, and
// the recommended action. Pure string interpolation, no template engine.
func (e *Engine) SuggestEmail(opp types.Opportunity, risk types.RiskAssessment, action types.RecommendedAction) types.EmailSuggestion {
	subject := fmt.Sprintf("Next steps on our %s for %s", strings.ToLower(opp.Stage), opp.AccountName)

	intro := fmt.Sprintf(
		"Hi %s team,\n\n"+
			"I hope you're doing well. I wanted to follow up on our recent discussions "+
			"about your interest in moving forward with our solution.",
		opp.AccountName,
	)

	var middle string
	switch risk.Level {
	case types.RiskHigh:
		middle = "\n\nFrom our last conversation, it sounds like there are a few open questions " +
			"or concerns that we should address directly."
	case types.RiskMedium:
		middle = "\n\nI know you're evaluating options, and I'd like to make sure you have " +
			"everything you need to make a confident decision."
	default:
		middle = "\n\nThanks again for the positive engagement so far. I'd like to keep your " +
			"project moving smoothly toward the next milestone."
	}

	// First two next steps become the bullet list.
	bulletSteps := action.NextSteps
	if len(bulletSteps) > 2 {
		bulletSteps = bulletSteps[:2]
	}
	var bullets []string
	for _, step := range bulletSteps {
		bullets = append(bullets, "- "+step)
	}

	closing := fmt.Sprintf(
		"\n\nHere are a couple of concrete next steps I'd propose:\n%s\n\n"+
			"Would any of these work for you this week? If there's someone else on your side "+
			"who should be involved, I'm happy to loop them in.\n\n"+
			"Best regards,\n%s",
		strings.Join(bullets, "\n"),
		e.cfg.EmailSender,
	)

	return types.EmailSuggestion{Subject: subject, Body: intro + middle + closing}
}
