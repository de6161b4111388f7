package ingest

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"sales-insights-go/internal/types"
)

// Required columns, by the exact header names of the opportunity export.
var requiredColumns = []string{
	"id",
	"account_name",
	"stage",
	"amount",
	"probability",
	"days_in_stage",
	"last_contact_days_ago",
	"notes",
}

// SchemaError reports required columns absent from the header row. The batch
// produces no records when this is returned.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// ParseError reports a cell that could not be converted to its numeric type.
// Row is 1-based and counts the header, matching what a user sees in a
// spreadsheet. The batch aborts on the first such cell.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: column %q: cannot parse %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// columnIndex maps each required column name to its position in the header.
func columnIndex(header []string) (map[string]int, error) {
	idx := map[string]int{}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if _, seen := idx[name]; !seen {
			idx[name] = i
		}
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &SchemaError{Missing: missing}
	}
	return idx, nil
}

// normalizeProbability maps percent-style values (e.g. 40) into 0–1.
// Values already at or below 1.0 pass through unchanged.
func normalizeProbability(p float64) float64 {
	if p > 1.0 {
		return p / 100.0
	}
	return p
}

// cell tolerates ragged rows: anything past the end of the row reads as empty.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parseRow converts one data row into an Opportunity. rowNum is the 1-based
// position in the source including the header, used only for error messages.
func parseRow(row []string, idx map[string]int, rowNum int) (types.Opportunity, error) {
	amount, err := parseFloat(cell(row, idx["amount"]), "amount", rowNum)
	if err != nil {
		return types.Opportunity{}, err
	}
	prob, err := parseFloat(cell(row, idx["probability"]), "probability", rowNum)
	if err != nil {
		return types.Opportunity{}, err
	}
	days, err := parseInt(cell(row, idx["days_in_stage"]), "days_in_stage", rowNum)
	if err != nil {
		return types.Opportunity{}, err
	}
	lastContact, err := parseInt(cell(row, idx["last_contact_days_ago"]), "last_contact_days_ago", rowNum)
	if err != nil {
		return types.Opportunity{}, err
	}

	return types.Opportunity{
		ID:                 strings.TrimSpace(cell(row, idx["id"])),
		AccountName:        strings.TrimSpace(cell(row, idx["account_name"])),
		Stage:              strings.TrimSpace(cell(row, idx["stage"])),
		Amount:             amount,
		Probability:        normalizeProbability(prob),
		DaysInStage:        days,
		LastContactDaysAgo: lastContact,
		Notes:              strings.TrimSpace(cell(row, idx["notes"])),
	}, nil
}

func parseFloat(raw, column string, rowNum int) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &ParseError{Row: rowNum, Column: column, Value: raw, Err: err}
	}
	return v, nil
}

func parseInt(raw, column string, rowNum int) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ParseError{Row: rowNum, Column: column, Value: raw, Err: err}
	}
	return v, nil
}
