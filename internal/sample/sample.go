package sample

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
)

// Header is the column order of generated CSVs, matching the ingest contract.
var Header = []string{
	"id",
	"account_name",
	"stage",
	"amount",
	"probability",
	"days_in_stage",
	"last_contact_days_ago",
	"notes",
}

var accountNames = []string{
	"Acme Bank", "NorthTel", "City Health", "FinPlus",
	"Macro Finance", "Prairie Telecom", "Evergreen Health", "Summit Insurance",
	"Velocity Capital", "Northern Grid", "Maple Retail", "Skyline Logistics",
}

// stages and their selection weights, biased toward the middle of the funnel.
var stages = []struct {
	name   string
	weight int
}{
	{"Prospecting", 1},
	{"Qualification", 2},
	{"Discovery", 3},
	{"Proposal", 3},
	{"Negotiation", 2},
	{"Closed Won", 1},
	{"Closed Lost", 1},
}

var stageProbRanges = map[string][2]float64{
	"Prospecting":   {0.05, 0.2},
	"Qualification": {0.1, 0.3},
	"Discovery":     {0.2, 0.4},
	"Proposal":      {0.3, 0.6},
	"Negotiation":   {0.4, 0.8},
	"Closed Won":    {0.8, 1.0},
	"Closed Lost":   {0.0, 0.15},
}

var positiveNotes = []string{
	"Client very engaged and sees strong value in the solution.",
	"Stakeholders aligned and interested in moving forward.",
	"Technical fit confirmed; next step is commercial review.",
	"Positive feedback from the last demo; awaiting internal approval.",
	"Customer sees us as preferred vendor pending contract review.",
}

var negativeNotes = []string{
	"Customer raised concern about integration timeline and complexity.",
	"Budget constraints mentioned; might delay decision.",
	"Competitor mentioned as alternative with lower price.",
	"Project on hold due to internal re-org; risk of delay.",
	"Client thinks current proposal is too expensive.",
	"Decision maker is blocked and wants to pause discussion for now.",
	"Risk of losing to competitor if we cannot improve proposal.",
}

var neutralNotes = []string{
	"Waiting for customer to confirm internal meeting date.",
	"Customer asked for additional documentation.",
	"Internal review ongoing; follow-up planned next week.",
	"Client requested a high-level summary for leadership.",
	"No major concerns raised; next demo is being scheduled.",
}

// WriteCSV writes n generated opportunity rows (plus header) to w. The same
// seed always yields the same file.
func WriteCSV(w io.Writer, n int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 1; i <= n; i++ {
		if err := cw.Write(generateRow(rng, i)); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func generateRow(rng *rand.Rand, idx int) []string {
	stage := randomStage(rng)
	return []string{
		fmt.Sprintf("OPP-%03d", idx),
		accountNames[rng.Intn(len(accountNames))],
		stage,
		fmt.Sprintf("%.0f", randomAmount(rng, stage)),
		fmt.Sprintf("%.2f", randomProbability(rng, stage)),
		fmt.Sprintf("%d", randomDaysInStage(rng, stage)),
		fmt.Sprintf("%d", randomLastContact(rng, stage)),
		randomNotes(rng, stage),
	}
}

func randomStage(rng *rand.Rand) string {
	total := 0
	for _, s := range stages {
		total += s.weight
	}
	pick := rng.Intn(total)
	for _, s := range stages {
		pick -= s.weight
		if pick < 0 {
			return s.name
		}
	}
	return stages[len(stages)-1].name
}

func randomProbability(rng *rand.Rand, stage string) float64 {
	r, ok := stageProbRanges[stage]
	if !ok {
		r = [2]float64{0.1, 0.5}
	}
	return r[0] + rng.Float64()*(r[1]-r[0])
}

// Mid and late stage deals skew a bit bigger, just for variety.
func randomAmount(rng *rand.Rand, stage string) float64 {
	switch stage {
	case "Prospecting", "Qualification":
		return float64(10000 + rng.Intn(50001))
	case "Discovery", "Proposal":
		return float64(20000 + rng.Intn(100001))
	default:
		return float64(30000 + rng.Intn(170001))
	}
}

func randomDaysInStage(rng *rand.Rand, stage string) int {
	switch stage {
	case "Prospecting", "Qualification":
		return 1 + rng.Intn(40)
	case "Discovery", "Proposal", "Negotiation":
		return 5 + rng.Intn(56)
	default:
		// closed deals may have sat in the last stage for a while
		return 10 + rng.Intn(81)
	}
}

func randomLastContact(rng *rand.Rand, stage string) int {
	switch stage {
	case "Prospecting", "Qualification":
		return 3 + rng.Intn(28)
	case "Discovery", "Proposal", "Negotiation":
		return rng.Intn(31)
	default:
		return 7 + rng.Intn(54)
	}
}

// randomNotes mixes positive, neutral, and negative pools so the risk rules
// have something to fire on, with an occasional stage-specific tail.
func randomNotes(rng *rand.Rand, stage string) string {
	var base string
	switch r := rng.Float64(); {
	case r < 0.3:
		base = positiveNotes[rng.Intn(len(positiveNotes))]
	case r < 0.6:
		base = neutralNotes[rng.Intn(len(neutralNotes))]
	default:
		base = negativeNotes[rng.Intn(len(negativeNotes))]
	}

	switch stage {
	case "Prospecting", "Qualification":
		if rng.Float64() < 0.3 {
			base += " Prospect is still defining scope and requirements."
		}
	case "Proposal", "Negotiation":
		if rng.Float64() < 0.3 {
			base += " Legal and procurement may add additional delays."
		}
	}
	return base
}

// DemoCSV is a tiny built-in batch for trying the pipeline without a file.
func DemoCSV() []byte {
	return []byte(`id,account_name,stage,amount,probability,days_in_stage,last_contact_days_ago,notes
OPP-001,Acme Bank,Discovery,50000,0.4,10,5,"Client interested but concerned about integration timeline."
OPP-002,NorthTel,Negotiation,80000,0.25,45,20,"Budget constraints and competitor reference mentioned."
OPP-003,City Health,Proposal,120000,0.6,20,3,"Positive response from stakeholders, waiting on internal approval."
OPP-004,FinPlus,Qualification,30000,0.15,35,30,"Project paused due to internal re-org; risk of delay."
`)
}
