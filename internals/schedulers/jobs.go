package schedulers

import (
	"time"

	"gorm.io/gorm"

	"skm_backend/internals/configs"
	reportService "skm_backend/internals/features/skm/report/service"
	backupService "skm_backend/internals/features/system/backup/service"
	userService "skm_backend/internals/features/users/service"
	"skm_backend/internals/helpers/mailer"
)

const jobTimeout = 30 * time.Minute

// StartMonthlyJobs mendaftarkan job backup & laporan lalu menjalankan scheduler.
func StartMonthlyJobs(db *gorm.DB, backup *backupService.BackupService, sender mailer.Sender) (*Scheduler, error) {
	s := New(jobTimeout)

	report := &reportService.ReportJob{
		Reports:    reportService.NewReportService(db),
		Recipients: userService.NewUserService(db),
		Mailer:     sender,
	}

	if _, err := s.Register(configs.BackupCron, backup); err != nil {
		return nil, err
	}
	if _, err := s.Register(configs.ReportCron, report); err != nil {
		return nil, err
	}
	s.Start()
	return s, nil
}
