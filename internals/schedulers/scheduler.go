package schedulers

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"skm_backend/internals/configs"
	"skm_backend/internals/log"
)

// Job adalah pekerjaan terjadwal; error dikembalikan, bukan di-log di dalam job.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
}

func New(timeout time.Duration) *Scheduler {
	logger := cron.PrintfLogger(log.Logger)
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(configs.Location()),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		timeout: timeout,
	}
}

func (s *Scheduler) Register(spec string, job Job) (cron.EntryID, error) {
	id, err := s.cron.AddFunc(spec, func() {
		ctx := context.Background()
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		RunJob(ctx, job)
	})
	if err != nil {
		return 0, fmt.Errorf("register %s (%q): %w", job.Name(), spec, err)
	}
	log.Printf("[CRON] %s dijadwalkan %q (%s)", job.Name(), spec, configs.AppTimezone)
	return id, nil
}

func (s *Scheduler) Entries() []cron.Entry { return s.cron.Entries() }

func (s *Scheduler) Start() { s.cron.Start() }

// Stop menunggu job yang sedang berjalan selesai atau ctx habis.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		log.Warnf("[CRON] stop timeout, job masih berjalan")
	}
}

// RunJob adalah batas kegagalan job: error dicatat dan proses tetap hidup.
func RunJob(ctx context.Context, job Job) bool {
	start := time.Now()
	entry := log.WithField("job", job.Name())
	entry.Infof("[CRON] mulai")
	if err := job.Run(ctx); err != nil {
		entry.Errorf("[CRON] ❌ gagal setelah %s: %v", time.Since(start).Round(time.Millisecond), err)
		return false
	}
	entry.Infof("[CRON] ✅ selesai dalam %s", time.Since(start).Round(time.Millisecond))
	return true
}
