package survey

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "responses.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"), "", nil)
	require.Error(t, err)
}

func TestLoadAndKeyColumns(t *testing.T) {
	path := writeTestWorkbook(t, [][]any{
		{"Timestamp", "What is your use case?", "Company", "What would you build with satellite data?"},
		{"2024-01-01", "NDVI monitoring for vineyards in the Central Valley region", "Acme", "short"},
	})

	wb, err := Load(path, "", nil)
	require.NoError(t, err)

	assert.Len(t, wb.Headers, 4)
	assert.Len(t, wb.Rows, 1)
	assert.Equal(t, []string{
		"What is your use case?",
		"What would you build with satellite data?",
	}, wb.KeyColumns())
}

func TestUseCasesExtraction(t *testing.T) {
	path := writeTestWorkbook(t, [][]any{
		{"Timestamp", "Use case", "Notes"},
		// long + geospatial keyword -> extracted
		{"2024-01-01", "Flood mapping for river basins using satellite imagery", "n/a"},
		// long but no geospatial keyword -> skipped
		{"2024-01-02", "We mostly care about invoice processing and accounting", "n/a"},
		// keyword but too short -> skipped
		{"2024-01-03", "ndvi", "n/a"},
		// second long answer in a non-key column still counts
		{"2024-01-04", "short", "Tracking deforestation across the Amazon over a decade"},
	})

	wb, err := Load(path, "", nil)
	require.NoError(t, err)

	useCases, stats := wb.UseCases(20)
	require.Len(t, useCases, 2)

	assert.Equal(t, 1, useCases[0].Respondent)
	assert.Equal(t, "Use case", useCases[0].Column)
	assert.Contains(t, useCases[0].Text, "Flood mapping")

	assert.Equal(t, 4, useCases[1].Respondent)
	assert.Equal(t, "Notes", useCases[1].Column)

	assert.Equal(t, 4, stats.Rows)
	assert.Equal(t, 2, stats.UseCases)
}

func TestUseCasesRaggedRows(t *testing.T) {
	path := writeTestWorkbook(t, [][]any{
		{"Timestamp", "Use case", "Extra"},
		{"2024-01-01", "Urban heat island analysis from thermal satellite bands"},
		{"2024-01-02"},
	})

	wb, err := Load(path, "", nil)
	require.NoError(t, err)

	useCases, _ := wb.UseCases(20)
	require.Len(t, useCases, 1)
	assert.Equal(t, 1, useCases[0].Respondent)
}

func TestLoadNamedSheetMissing(t *testing.T) {
	path := writeTestWorkbook(t, [][]any{{"A"}})
	_, err := Load(path, "DoesNotExist", nil)
	require.Error(t, err)
}
