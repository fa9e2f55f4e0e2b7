package schedulers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJob struct {
	name  string
	err   error
	calls atomic.Int32
	panic bool
}

func (j *stubJob) Name() string { return j.name }

func (j *stubJob) Run(context.Context) error {
	j.calls.Add(1)
	if j.panic {
		panic("boom")
	}
	return j.err
}

func TestRunJob_ReportsOutcomeWithoutPanicking(t *testing.T) {
	ok := &stubJob{name: "ok"}
	bad := &stubJob{name: "bad", err: errors.New("smtp down")}

	assert.True(t, RunJob(context.Background(), ok))
	assert.False(t, RunJob(context.Background(), bad))
	assert.EqualValues(t, 1, bad.calls.Load())
}

func TestRegister_RejectsInvalidCronExpr(t *testing.T) {
	s := New(time.Second)
	_, err := s.Register("bukan cron", &stubJob{name: "x"})
	assert.Error(t, err)
}

func TestRegister_MonthlySchedule(t *testing.T) {
	s := New(time.Second)
	_, err := s.Register("0 0 1 * *", &stubJob{name: "backup"})
	require.NoError(t, err)

	entries := s.Entries()
	require.Len(t, entries, 1)

	from := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	next := entries[0].Schedule.Next(from)
	assert.Equal(t, 1, next.Day())
	assert.Equal(t, time.November, next.Month())
}

func TestScheduler_RecoversFromPanickingJob(t *testing.T) {
	s := New(time.Second)
	job := &stubJob{name: "panic", panic: true}
	_, err := s.Register("@every 1s", job)
	require.NoError(t, err)

	s.Start()
	require.Eventually(t, func() bool { return job.calls.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
