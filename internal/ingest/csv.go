package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"sales-insights-go/internal/types"
)

// LoadCSV reads opportunities from a CSV stream with a header row. Row order
// is preserved. Returns a *SchemaError if required columns are missing and a
// *ParseError on the first unconvertible cell.
func LoadCSV(r io.Reader) ([]types.Opportunity, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows read as empty trailing cells

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var out []types.Opportunity
	rowNum := 1 // header
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", rowNum+1, err)
		}
		rowNum++
		opp, err := parseRow(row, idx, rowNum)
		if err != nil {
			return nil, err
		}
		out = append(out, opp)
	}
	return out, nil
}

// LoadCSVFile is LoadCSV over a file path.
func LoadCSVFile(path string) ([]types.Opportunity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return LoadCSV(f)
}
