package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"skm_backend/internals/configs"
	"skm_backend/internals/features/skm/model"
	"skm_backend/internals/features/skm/report/engine"
	"skm_backend/internals/features/skm/report/workbook"
)

type ReportService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db, Now: time.Now}
}

func (s *ReportService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type questionAggregate struct {
	QuestionID uint
	Count      int64
	Total      int64
}

// Tallies: satu entri per pertanyaan (urut id), termasuk yang belum punya jawaban.
func (s *ReportService) Tallies(ctx context.Context) ([]engine.Tally, error) {
	var questions []model.QuestionModel
	if err := s.DB.WithContext(ctx).
		Select("id", "acronim", "question").
		Order("id ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}

	var aggs []questionAggregate
	if err := s.DB.WithContext(ctx).
		Model(&model.ResponseModel{}).
		Select("question_id, COUNT(*) AS count, COALESCE(SUM(select_option), 0) AS total").
		Group("question_id").
		Scan(&aggs).Error; err != nil {
		return nil, err
	}
	byQuestion := make(map[uint]questionAggregate, len(aggs))
	for _, a := range aggs {
		byQuestion[a.QuestionID] = a
	}

	out := make([]engine.Tally, 0, len(questions))
	for _, q := range questions {
		a := byQuestion[q.ID]
		out = append(out, engine.Tally{
			QuestionID: q.ID,
			Acronim:    q.Acronim,
			Question:   q.Question,
			Count:      a.Count,
			Total:      a.Total,
		})
	}
	return out, nil
}

func (s *ReportService) Summary(ctx context.Context) (engine.Summary, error) {
	tallies, err := s.Tallies(ctx)
	if err != nil {
		return engine.Summary{}, err
	}
	return engine.Compute(tallies), nil
}

// Rows: data mentah per jawaban, terbaru di akhir.
func (s *ReportService) Rows(ctx context.Context) ([]workbook.ResponseRow, error) {
	var rows []workbook.ResponseRow
	err := s.DB.WithContext(ctx).
		Table("responses").
		Select(`responses.created_at AS created_at,
			responden.name AS responden,
			responden.gender AS gender,
			responden.age AS age,
			responden.education AS education,
			responden.profession AS profession,
			responden.service_type AS service_type,
			questions.acronim AS acronim,
			responses.select_option AS select_option,
			responses.select_option_text AS select_option_text`).
		Joins("JOIN responden ON responden.id = responses.responden_id").
		Joins("JOIN questions ON questions.id = responses.question_id").
		Order("responses.created_at ASC").
		Order("responses.id ASC").
		Scan(&rows).Error
	return rows, err
}

// Build memuat data secara paralel lalu merender workbook.
func (s *ReportService) Build(ctx context.Context) (*excelize.File, engine.Summary, error) {
	var (
		summary engine.Summary
		rows    []workbook.ResponseRow
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		summary, err = s.Summary(gctx)
		return err
	})
	g.Go(func() (err error) {
		rows, err = s.Rows(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, engine.Summary{}, err
	}

	f, err := workbook.Build(rows, summary, configs.Location())
	if err != nil {
		return nil, engine.Summary{}, err
	}
	return f, summary, nil
}

func (s *ReportService) FileName() string {
	return fmt.Sprintf("laporan-skm-%s.xlsx", s.now().In(configs.Location()).Format("2006-01-02"))
}

// Export mengembalikan isi workbook untuk diunduh.
func (s *ReportService) Export(ctx context.Context) (*bytes.Buffer, error) {
	f, _, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.WriteToBuffer()
}

// WriteFile menyimpan workbook ke dir dan mengembalikan path-nya.
func (s *ReportService) WriteFile(ctx context.Context, dir string) (string, error) {
	f, _, err := s.Build(ctx)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, s.FileName())
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}
