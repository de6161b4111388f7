package ingest

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestLoadXLSX_ParsesFirstSheet(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"id", "account_name", "stage", "amount", "probability", "days_in_stage", "last_contact_days_ago", "notes"},
		{"OPP-001", "Acme Bank", "Discovery", 50000, 0.4, 10, 5, "Interested, questions remain."},
		{"OPP-002", "NorthTel", "Negotiation", 80000, 40, 45, 20, "Budget constraints mentioned."},
	})

	opps, err := LoadXLSX(buf)
	require.NoError(t, err)
	require.Len(t, opps, 2)

	assert.Equal(t, "OPP-001", opps[0].ID)
	assert.Equal(t, 50000.0, opps[0].Amount)
	assert.Equal(t, 0.4, opps[0].Probability)
	assert.InDelta(t, 0.4, opps[1].Probability, 1e-9)
	assert.Equal(t, 45, opps[1].DaysInStage)
}

func TestLoadXLSX_MissingColumns(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"id", "stage", "amount"},
		{"OPP-001", "Discovery", 50000},
	})

	_, err := LoadXLSX(buf)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Missing, "account_name")
	assert.Contains(t, schemaErr.Missing, "probability")
}

func TestLoadXLSX_ParseErrorNamesRowAndColumn(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"id", "account_name", "stage", "amount", "probability", "days_in_stage", "last_contact_days_ago", "notes"},
		{"OPP-001", "Acme", "Discovery", "lots", 0.4, 10, 5, "ok"},
	})

	_, err := LoadXLSX(buf)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Row)
	assert.Equal(t, "amount", parseErr.Column)
}

func TestLoadXLSX_RejectsNonWorkbookInput(t *testing.T) {
	_, err := LoadXLSX(bytes.NewReader([]byte("this is not a workbook")))
	require.Error(t, err)
	assert.Contains(t, fmt.Sprint(err), "open workbook")
}
