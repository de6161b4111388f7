package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"sales-insights-go/internal/types"
)

// LoadXLSX reads opportunities from the first sheet of an XLSX stream. Same
// column contract and error behavior as LoadCSV.
func LoadXLSX(r io.Reader) ([]types.Opportunity, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return loadWorkbook(f)
}

// LoadXLSXFile is LoadXLSX over a file path.
func LoadXLSXFile(path string) ([]types.Opportunity, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return loadWorkbook(f)
}

func loadWorkbook(f *excelize.File) ([]types.Opportunity, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty input: no header row")
	}

	idx, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	var out []types.Opportunity
	for i, row := range rows {
		if i == 0 {
			continue
		}
		opp, err := parseRow(row, idx, i+1)
		if err != nil {
			return nil, err
		}
		out = append(out, opp)
	}
	return out, nil
}
