package batch

import (
	"bytes"
	"testing"

	"Steelcheck/internal/calc/loads"
	"Steelcheck/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestFromRaw(t *testing.T) {
	res, err := FromRaw([]validate.Raw{
		{"combination": "normal", "dead_load": 100.0, "live_load": 50.0},
		{"combination": "wind", "dead_load": 100.0, "live_load": 50.0},
		{"combination": "wind", "dead_load": "100", "live_load": "50", "wind_load": "30"},
		{"dead_load": "-1", "live_load": "50"},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Count)
	assert.Equal(t, 2, res.Failed)
	require.NotNil(t, res.Rows[0].Result)
	assert.Equal(t, 225.0, res.Rows[0].Result.FactoredLoadKN)
	assert.Nil(t, res.Rows[1].Result)
	assert.Contains(t, res.Rows[1].Error, "wind_load")
	require.NotNil(t, res.Rows[2].Result)
	assert.Equal(t, loads.CombinationWind, res.Rows[2].Result.Combination)
	assert.Contains(t, res.Rows[3].Error, "dead_load")
}

func TestFromRawEmpty(t *testing.T) {
	_, err := FromRaw(nil)
	assert.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	buf := workbook(t, [][]any{
		{"combination", "dead_load", "live_load", "wind_load", "seismic_load"},
		{"normal", 100, 50},
		{"seismic", 100, 50, "", 40},
		{"wind", -1, 50, 10},
	})

	res, err := ReadXLSX(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, 1, res.Failed)

	require.NotNil(t, res.Rows[0].Result)
	assert.Equal(t, 2, res.Rows[0].Row)
	assert.Equal(t, 225.0, res.Rows[0].Result.FactoredLoadKN)

	require.NotNil(t, res.Rows[1].Result)
	assert.InDelta(t, 228.0, res.Rows[1].Result.FactoredLoadKN, 1e-9)

	assert.Equal(t, 4, res.Rows[2].Row)
	assert.Contains(t, res.Rows[2].Error, "dead_load")
}

func TestReadXLSXHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Template(&buf))
	_, err := ReadXLSX(&buf)
	assert.EqualError(t, err, "empty sheet")
}

func TestReadXLSXNotAWorkbook(t *testing.T) {
	_, err := ReadXLSX(bytes.NewReader([]byte("dead_load,live_load\n1,2\n")))
	assert.Error(t, err)
}
