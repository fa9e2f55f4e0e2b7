package workbook

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"skm_backend/internals/features/skm/report/engine"
)

func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	out, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = out.Close() })
	return out
}

func TestBuild_WithData(t *testing.T) {
	summary := engine.Compute([]engine.Tally{
		{QuestionID: 1, Acronim: "U1", Count: 2, Total: 7},
		{QuestionID: 2, Acronim: "U2", Count: 0, Total: 0},
	})
	rows := []ResponseRow{
		{CreatedAt: time.Date(2026, 9, 30, 18, 0, 0, 0, time.UTC), Responden: "Budi", Gender: "MALE", Age: 30, Acronim: "U1", SelectOption: 3, SelectOptionText: "Sesuai"},
		{CreatedAt: time.Date(2026, 9, 30, 18, 5, 0, 0, time.UTC), Responden: "Sari", Gender: "FEMALE", Age: 25, Acronim: "U1", SelectOption: 4, SelectOptionText: "Sangat sesuai"},
	}

	f, err := Build(rows, summary, time.FixedZone("WIB", 7*3600))
	require.NoError(t, err)
	defer f.Close()

	got := reopen(t, f)
	assert.Equal(t, []string{SheetResponses, SheetSummary, SheetChart}, got.GetSheetList())

	data, err := got.GetRows(SheetResponses)
	require.NoError(t, err)
	require.Len(t, data, 3)
	assert.Equal(t, "Nama Responden", data[0][2])
	assert.Equal(t, "2026-10-01 01:00", data[1][1])
	assert.Equal(t, "Sangat sesuai", data[2][10])

	recap, err := got.GetRows(SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Unsur", "U1", "U2"}, recap[0])
	assert.Equal(t, "Baik", recap[4][1])
	assert.Equal(t, engine.CategoryNoData, recap[4][2])
	assert.Equal(t, "-", recap[3][2])

	ikm, err := got.GetCellValue(SheetSummary, "A10")
	require.NoError(t, err)
	assert.Equal(t, "IKM", ikm)

	series, err := got.GetRows(SheetChart)
	require.NoError(t, err)
	assert.Equal(t, "U1", series[1][0])
	nrr, err := strconv.ParseFloat(series[1][1], 64)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, nrr, 1e-9)
}

func TestBuild_EmptyRendersPlaceholders(t *testing.T) {
	f, err := Build(nil, engine.Compute(nil), nil)
	require.NoError(t, err)
	defer f.Close()

	got := reopen(t, f)
	for _, sheet := range []string{SheetResponses, SheetChart} {
		v, err := got.GetCellValue(sheet, "A2")
		require.NoError(t, err)
		assert.Equal(t, EmptyPlaceholder, v, sheet)
	}
	v, err := got.GetCellValue(SheetSummary, "B1")
	require.NoError(t, err)
	assert.Equal(t, EmptyPlaceholder, v)
}
