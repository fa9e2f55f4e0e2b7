package service

import (
	"context"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"skm_backend/internals/configs"
	"skm_backend/internals/constants"
	"skm_backend/internals/helpers/dbtime"
	"skm_backend/internals/helpers/mailer"
	"skm_backend/internals/log"
)

// RecipientFinder: sumber alamat email penerima laporan.
type RecipientFinder interface {
	FindEmailsByRole(ctx context.Context, role string) ([]string, error)
}

type ReportJob struct {
	Reports    *ReportService
	Recipients RecipientFinder
	Mailer     mailer.Sender
	TempDir    string
	Now        func() time.Time
}

func (j *ReportJob) Name() string { return "report" }

// Run membuat workbook, mengirimnya ke seluruh SUPER_ADMIN, dan selalu menghapus file sementara.
func (j *ReportJob) Run(ctx context.Context) error {
	now := time.Now
	if j.Now != nil {
		now = j.Now
	}

	var (
		recipients []string
		path       string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		recipients, err = j.Recipients.FindEmailsByRole(gctx, constants.RoleSuperAdmin)
		return err
	})
	g.Go(func() (err error) {
		path, err = j.Reports.WriteFile(gctx, j.TempDir)
		return err
	})
	err := g.Wait()
	if path != "" {
		defer func() {
			if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
				log.Printf("[REPORT] ⚠️ gagal hapus file sementara %s: %v", path, rmErr)
			}
		}()
	}
	if err != nil {
		return err
	}

	if len(recipients) == 0 {
		log.Printf("[REPORT] tidak ada SUPER_ADMIN, laporan tidak dikirim")
		return nil
	}

	date := dbtime.FormatLongID(now().In(configs.Location()))
	if err := j.Mailer.Send(ctx, mailer.ReportMessage(recipients, date, path)); err != nil {
		return err
	}
	log.Printf("[REPORT] ✅ laporan %s terkirim ke %d penerima", date, len(recipients))
	return nil
}
