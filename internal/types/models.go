package types

// RiskLevel is the qualitative classification of deal health.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Opportunity is one sales opportunity row from the input table.
// Built by the ingest package and treated as read-only afterwards.
type Opportunity struct {
	ID                 string  `json:"id"`
	AccountName        string  `json:"account_name"`
	Stage              string  `json:"stage"`
	Amount             float64 `json:"amount"`
	Probability        float64 `json:"probability"` // normalized to 0–1
	DaysInStage        int     `json:"days_in_stage"`
	LastContactDaysAgo int     `json:"last_contact_days_ago"`
	Notes              string  `json:"notes"`
}

type RiskAssessment struct {
	Level   RiskLevel `json:"level"`
	Reasons []string  `json:"reasons"`
}

type RecommendedAction struct {
	Priority  RiskLevel `json:"priority"`
	NextSteps []string  `json:"next_steps"`
}

type EmailSuggestion struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// OpportunityInsight bundles one opportunity with everything derived from it.
type OpportunityInsight struct {
	Opportunity Opportunity       `json:"opportunity"`
	Risk        RiskAssessment    `json:"risk"`
	Action      RecommendedAction `json:"action"`
	Email       EmailSuggestion   `json:"email"`
}
