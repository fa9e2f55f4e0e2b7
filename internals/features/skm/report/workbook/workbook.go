// Package workbook merender laporan SKM ke file xlsx.
package workbook

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"skm_backend/internals/features/skm/report/engine"
)

const (
	SheetResponses = "Data Responden"
	SheetSummary   = "Rekap SKM"
	SheetChart     = "Grafik"

	EmptyPlaceholder = "Belum ada data"
)

// ResponseRow: satu baris jawaban pada sheet data mentah.
type ResponseRow struct {
	CreatedAt        time.Time
	Responden        string
	Gender           string
	Age              int
	Education        string
	Profession       string
	ServiceType      string
	Acronim          string
	SelectOption     int
	SelectOptionText string
}

var responseHeader = []any{
	"No", "Tanggal", "Nama Responden", "Jenis Kelamin", "Umur", "Pendidikan",
	"Pekerjaan", "Jenis Layanan", "Unsur", "Nilai", "Jawaban",
}

// Build menyusun workbook tiga sheet. Data kosong menghasilkan baris placeholder.
func Build(rows []ResponseRow, summary engine.Summary, loc *time.Location) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetResponses); err != nil {
		_ = f.Close()
		return nil, err
	}
	for _, name := range []string{SheetSummary, SheetChart} {
		if _, err := f.NewSheet(name); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	steps := []func() error{
		func() error { return writeResponses(f, rows, loc, bold) },
		func() error { return writeSummary(f, summary, bold) },
		func() error { return writeChart(f, summary, bold) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	return f, nil
}

/* ===== Sheet 1: data mentah ===== */

func writeResponses(f *excelize.File, rows []ResponseRow, loc *time.Location, header int) error {
	if err := f.SetSheetRow(SheetResponses, "A1", &responseHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetResponses, "A1", "K1", header); err != nil {
		return err
	}
	if len(rows) == 0 {
		return f.SetCellValue(SheetResponses, "A2", EmptyPlaceholder)
	}
	if loc == nil {
		loc = time.UTC
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{
			i + 1,
			r.CreatedAt.In(loc).Format("2006-01-02 15:04"),
			r.Responden,
			r.Gender,
			r.Age,
			r.Education,
			r.Profession,
			r.ServiceType,
			r.Acronim,
			r.SelectOption,
			r.SelectOptionText,
		}
		if err := f.SetSheetRow(SheetResponses, cell, &values); err != nil {
			return err
		}
	}
	return f.SetColWidth(SheetResponses, "B", "K", 18)
}

/* ===== Sheet 2: rekap NRR / IKM ===== */

var summaryLabels = []string{
	"Unsur",
	"Total Nilai",
	"Jumlah Responden",
	"NRR",
	"Kategori",
	"NRR Tertimbang",
}

func writeSummary(f *excelize.File, s engine.Summary, header int) error {
	for i, label := range summaryLabels {
		if err := f.SetCellValue(SheetSummary, fmt.Sprintf("A%d", i+1), label); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetSummary, "A1", fmt.Sprintf("A%d", len(summaryLabels)), header); err != nil {
		return err
	}

	if len(s.Questions) == 0 {
		if err := f.SetCellValue(SheetSummary, "B1", EmptyPlaceholder); err != nil {
			return err
		}
	}

	for i, q := range s.Questions {
		col := i + 2
		set := func(row int, v any) error {
			cell, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return err
			}
			if fv, ok := v.(float64); ok {
				return f.SetCellFloat(SheetSummary, cell, fv, 3, 64)
			}
			return f.SetCellValue(SheetSummary, cell, v)
		}
		values := []any{q.Acronim, q.Total, q.Count, q.NRR, q.Category, q.WeightedNRR}
		if !q.HasData {
			values[3] = "-"
			values[5] = "-"
		}
		for row, v := range values {
			if err := set(row+1, v); err != nil {
				return err
			}
		}
	}

	base := len(summaryLabels) + 2
	trailer := [][2]any{
		{"Jumlah NRR Tertimbang", s.WeightedTotal},
		{"Bobot per Unsur", s.Weight},
		{"IKM", s.IKM},
		{"Mutu Pelayanan", fmt.Sprintf("%s (%s)", s.Grade, s.GradeLabel)},
	}
	for i, kv := range trailer {
		row := base + i
		if err := f.SetCellValue(SheetSummary, fmt.Sprintf("A%d", row), kv[0]); err != nil {
			return err
		}
		if fv, ok := kv[1].(float64); ok {
			if err := f.SetCellFloat(SheetSummary, fmt.Sprintf("B%d", row), fv, 3, 64); err != nil {
				return err
			}
			continue
		}
		if err := f.SetCellValue(SheetSummary, fmt.Sprintf("B%d", row), kv[1]); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(SheetSummary, fmt.Sprintf("A%d", base), fmt.Sprintf("A%d", base+len(trailer)-1), header); err != nil {
		return err
	}
	return f.SetColWidth(SheetSummary, "A", "A", 24)
}

/* ===== Sheet 3: seri grafik ===== */

func writeChart(f *excelize.File, s engine.Summary, header int) error {
	if err := f.SetSheetRow(SheetChart, "A1", &[]any{"Unsur", "Rata-rata"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetChart, "A1", "B1", header); err != nil {
		return err
	}
	if len(s.Questions) == 0 {
		return f.SetCellValue(SheetChart, "A2", EmptyPlaceholder)
	}

	for i, q := range s.Questions {
		row := i + 2
		if err := f.SetCellValue(SheetChart, fmt.Sprintf("A%d", row), q.Acronim); err != nil {
			return err
		}
		if err := f.SetCellFloat(SheetChart, fmt.Sprintf("B%d", row), q.NRR, 3, 64); err != nil {
			return err
		}
	}

	last := len(s.Questions) + 1
	return f.AddChart(SheetChart, "D2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$1", SheetChart),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", SheetChart, last),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", SheetChart, last),
		}},
		Title:  []excelize.RichTextRun{{Text: "NRR per Unsur"}},
		Legend: excelize.ChartLegend{Position: "none"},
	})
}
